package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/service/authservice"
	pkgauth "github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/bloodlink/bloodlink/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful recipient registration",
			body: `{"login":"newuser","password":"password123","role":"recipient","full_name":"New User","city":"Dhaka"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, params authservice.RegisterParams) (*domain.User, error) {
						assert.Equal(t, "newuser", params.Login)
						assert.Equal(t, domain.RoleRecipient, params.Role)
						assert.Nil(t, params.DateOfBirth)
						return &domain.User{ID: 1, Login: "newuser", Role: domain.RoleRecipient}, nil
					})
				service.EXPECT().GenerateToken(gomock.Any()).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Successful donor registration",
			body: `{"login":"donor","password":"password123","role":"donor","blood_group":"O-","date_of_birth":"1995-04-01","city":"Dhaka"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, params authservice.RegisterParams) (*domain.User, error) {
						assert.NotNil(t, params.DateOfBirth)
						assert.Equal(t, 1995, params.DateOfBirth.Year())
						return &domain.User{ID: 2, Login: "donor", Role: domain.RoleDonor}, nil
					})
				service.EXPECT().GenerateToken(gomock.Any()).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123","role":"recipient"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Invalid role",
			body: `{"login":"newuser","password":"password123","role":"moderator"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(nil, authservice.ErrInvalidRole)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid role",
		},
		{
			name:          "Malformed date of birth",
			body:          `{"login":"donor","password":"password123","role":"donor","blood_group":"O-","date_of_birth":"01/04/1995"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid date of birth",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123","role":"recipient"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(&domain.User{ID: 1, Login: "newuser"}, nil)
				service.EXPECT().GenerateToken(gomock.Any()).Return("", assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser", "password123").Return(&domain.User{ID: 1, Login: "testuser"}, nil)
				service.EXPECT().GenerateToken(gomock.Any()).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser", "wrongpassword").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	jwtService := &pkgauth.JWTService{}

	validToken, err := jwtService.GenerateJWT(pkgauth.Identity{UserID: 1, Role: "donor"}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Successful logout",
			token: validToken,
			prepareMock: func() {
				service.EXPECT().Logout(context.Background(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid token",
			token:        "invalid.token.string",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:  "Blacklist failure",
			token: validToken,
			prepareMock: func() {
				service.EXPECT().Logout(context.Background(), gomock.Any()).Return(assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/logout", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rr := httptest.NewRecorder()

			handler.Logout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
