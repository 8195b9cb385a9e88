package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func testIdentity() Identity {
	return Identity{
		UserID:     123,
		Role:       "donor",
		BloodGroup: "O-",
		City:       "Dhaka",
		Approved:   true,
	}
}

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		identity       Identity
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			identity:       testIdentity(),
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			identity:       testIdentity(),
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.identity, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(testIdentity(), time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(testIdentity(), time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "bloodlink",
				})
				signedToken, _ := token.SignedString([]byte("your-secret-key"))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: 123,
					Role:   "donor",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString([]byte("your-secret-key"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, testIdentity(), claims.Identity())
				assert.NotEmpty(t, claims.Id)
			}
		})
	}
}

func TestTokenTTL(t *testing.T) {
	now := time.Now()

	claims := &Claims{}
	claims.ExpiresAt = now.Add(10 * time.Minute).Unix()
	assert.InDelta(t, (10 * time.Minute).Seconds(), TokenTTL(claims, now).Seconds(), 1)

	expired := &Claims{}
	expired.ExpiresAt = now.Add(-time.Minute).Unix()
	assert.Equal(t, time.Duration(0), TokenTTL(expired, now))
}
