package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface, *MockTokenBlacklist) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	blacklist := NewMockTokenBlacklist(ctrl)

	service := New(repo, hashService, jwtService, blacklist)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService, blacklist
}

func donorDOB(age int) *time.Time {
	dob := time.Now().AddDate(-age, 0, -1)
	return &dob
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _, _ := NewMock(t)

	tests := []struct {
		name          string
		params        RegisterParams
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful recipient registration",
			params: RegisterParams{
				Login:    "recipient",
				Password: "testpassword",
				Role:     domain.RoleRecipient,
				FullName: "Test Recipient",
				City:     "Dhaka",
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "recipient").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "recipient",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleRecipient,
				FullName:     "Test Recipient",
				City:         "Dhaka",
			},
			expectedError: nil,
		},
		{
			name: "Successful donor registration",
			params: RegisterParams{
				Login:       "donor",
				Password:    "testpassword",
				Role:        domain.RoleDonor,
				BloodGroup:  "O-",
				DateOfBirth: donorDOB(30),
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "donor").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
			},
			expectedUser:  &domain.User{ID: 2, Login: "donor"},
			expectedError: nil,
		},
		{
			name: "User already exists",
			params: RegisterParams{
				Login:    "recipient",
				Password: "testpassword",
				Role:     domain.RoleRecipient,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "recipient").Return(&domain.User{Login: "recipient"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrLoginTaken,
		},
		{
			name: "Invalid role",
			params: RegisterParams{
				Login:    "stranger",
				Password: "testpassword",
				Role:     domain.Role("moderator"),
			},
			prepareMock:   func() {},
			expectedUser:  nil,
			expectedError: ErrInvalidRole,
		},
		{
			name: "Donor with invalid blood group",
			params: RegisterParams{
				Login:       "donor",
				Password:    "testpassword",
				Role:        domain.RoleDonor,
				BloodGroup:  "C+",
				DateOfBirth: donorDOB(30),
			},
			prepareMock:   func() {},
			expectedUser:  nil,
			expectedError: ErrInvalidBloodGroup,
		},
		{
			name: "Donor without date of birth",
			params: RegisterParams{
				Login:      "donor",
				Password:   "testpassword",
				Role:       domain.RoleDonor,
				BloodGroup: "O-",
			},
			prepareMock:   func() {},
			expectedUser:  nil,
			expectedError: ErrInvalidDateOfBirth,
		},
		{
			name: "Underage donor",
			params: RegisterParams{
				Login:       "donor",
				Password:    "testpassword",
				Role:        domain.RoleDonor,
				BloodGroup:  "O-",
				DateOfBirth: donorDOB(16),
			},
			prepareMock:   func() {},
			expectedUser:  nil,
			expectedError: ErrInvalidDateOfBirth,
		},
		{
			name: "Error finding user",
			params: RegisterParams{
				Login:    "recipient",
				Password: "testpassword",
				Role:     domain.RoleRecipient,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "recipient").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			params: RegisterParams{
				Login:    "recipient",
				Password: "testpassword",
				Role:     domain.RoleRecipient,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "recipient").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.params)

			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser.ID, user.ID)
				assert.Equal(t, tt.expectedUser.Login, user.Login)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser:  &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "nobody",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "nobody").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "testuser",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService, _ := NewMock(t)

	user := &domain.User{
		ID:         42,
		Login:      "donor",
		Role:       domain.RoleDonor,
		BloodGroup: "AB-",
		City:       "Chittagong",
		Approved:   true,
	}

	jwtService.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).DoAndReturn(func(identity auth.Identity, expirationTime time.Time) (string, error) {
		assert.Equal(t, 42, identity.UserID)
		assert.Equal(t, "donor", identity.Role)
		assert.Equal(t, "AB-", identity.BloodGroup)
		assert.Equal(t, "Chittagong", identity.City)
		assert.True(t, identity.Approved)
		assert.True(t, expirationTime.After(time.Now()))
		return "signed.token", nil
	})

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "signed.token", token)
}

func TestGenerateTokenError(t *testing.T) {
	service, _, _, jwtService, _ := NewMock(t)

	jwtService.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("", errors.New("signing error"))

	token, err := service.GenerateToken(&domain.User{ID: 1})
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestLogout(t *testing.T) {
	service, _, _, _, blacklist := NewMock(t)

	claims := &auth.Claims{}
	claims.Id = "token-jti"
	claims.ExpiresAt = time.Now().Add(10 * time.Minute).Unix()

	blacklist.EXPECT().BlacklistToken(context.Background(), "token-jti", gomock.Any()).DoAndReturn(func(ctx context.Context, jti string, ttl time.Duration) error {
		assert.Greater(t, ttl, 9*time.Minute)
		return nil
	})

	err := service.Logout(context.Background(), claims)
	assert.NoError(t, err)
}

func TestLogoutBlacklistError(t *testing.T) {
	service, _, _, _, blacklist := NewMock(t)

	claims := &auth.Claims{}
	claims.Id = "token-jti"
	claims.ExpiresAt = time.Now().Add(10 * time.Minute).Unix()

	blacklist.EXPECT().BlacklistToken(context.Background(), "token-jti", gomock.Any()).Return(errors.New("redis error"))

	err := service.Logout(context.Background(), claims)
	assert.Error(t, err)
}

func TestLogoutWithoutBlacklist(t *testing.T) {
	service := New(nil, nil, nil, nil)

	claims := &auth.Claims{}
	claims.Id = "token-jti"

	err := service.Logout(context.Background(), claims)
	assert.NoError(t, err)
}
