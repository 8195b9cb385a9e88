package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Identity is the authenticated caller as seen by the core: id, role and
// approval status, plus the donor attributes the notification layer keys
// its topics on.
type Identity struct {
	UserID     int
	Role       string
	BloodGroup string
	City       string
	Approved   bool
}

type JWTServiceInterface interface {
	GenerateJWT(identity Identity, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

type Claims struct {
	UserID     int    `json:"user_id"`
	Role       string `json:"role"`
	BloodGroup string `json:"blood_group,omitempty"`
	City       string `json:"city,omitempty"`
	Approved   bool   `json:"approved"`
	jwt.StandardClaims
}

func (c *Claims) Identity() Identity {
	return Identity{
		UserID:     c.UserID,
		Role:       c.Role,
		BloodGroup: c.BloodGroup,
		City:       c.City,
		Approved:   c.Approved,
	}
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(identity Identity, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:     identity.UserID,
		Role:       identity.Role,
		BloodGroup: identity.BloodGroup,
		City:       identity.City,
		Approved:   identity.Approved,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "bloodlink",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.Issuer != "bloodlink" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
