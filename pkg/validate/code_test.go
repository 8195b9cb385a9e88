package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerificationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewVerificationCode()
		assert.Len(t, code, verificationCodeLength)
		assert.True(t, IsVerificationCode(code), "generated code must pass the Luhn check: %s", code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 90, "codes should be near unique")
}

func TestIsVerificationCode(t *testing.T) {
	assert.False(t, IsVerificationCode("not-a-code"))
	assert.False(t, IsVerificationCode("1234567891"))
	assert.True(t, IsVerificationCode("79927398713"))
}
