package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost trades login latency against brute-force resistance; donor and
// recipient accounts share the same policy.
const hashCost = bcrypt.DefaultCost

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

// HashService hashes account passwords with bcrypt.
type HashService struct{}

func (b *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether the password matches the stored hash.
func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
