package validate

import (
	"crypto/rand"
	"math/big"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Response verification codes are Luhn-checked numerics so a typo at the
// clinic desk is caught before any lookup.
const verificationCodeLength = 10

// NewVerificationCode returns a random numeric code whose last digit is a
// Luhn check digit.
func NewVerificationCode() string {
	digits := make([]byte, verificationCodeLength-1)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			n = big.NewInt(int64(i % 10))
		}
		digits[i] = byte('0' + n.Int64())
	}
	base := string(digits)
	for c := byte('0'); c <= '9'; c++ {
		code := base + string(c)
		if goluhn.Validate(code) == nil {
			return code
		}
	}
	return base + "0"
}

func IsVerificationCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
