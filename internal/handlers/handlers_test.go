package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/bloodlink/bloodlink/docs"
	authhandlers "github.com/bloodlink/bloodlink/internal/handlers/auth"
	donationhandlers "github.com/bloodlink/bloodlink/internal/handlers/donations"
	donorhandlers "github.com/bloodlink/bloodlink/internal/handlers/donors"
	requesthandlers "github.com/bloodlink/bloodlink/internal/handlers/requests"
	"github.com/bloodlink/bloodlink/internal/service"
	"github.com/bloodlink/bloodlink/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		RequestService:  requesthandlers.NewMockService(ctrl),
		DonorService:    donorhandlers.NewMockService(ctrl),
		DonationService: donationhandlers.NewMockService(ctrl),
	}

	h := New(services, nil, nil)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockRequestHandler := NewMockRequestHandler(ctrl)
	mockDonorHandler := NewMockDonorHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		RequestHandler:  mockRequestHandler,
		DonorHandler:    mockDonorHandler,
		DonationHandler: mockDonationHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/logout", http.StatusUnauthorized},
		{"GET", "/api/requests", http.StatusUnauthorized},
		{"POST", "/api/requests", http.StatusUnauthorized},
		{"GET", "/api/requests/1", http.StatusUnauthorized},
		{"POST", "/api/requests/1/respond", http.StatusUnauthorized},
		{"POST", "/api/requests/1/select", http.StatusUnauthorized},
		{"PATCH", "/api/requests/1/urgency", http.StatusUnauthorized},
		{"GET", "/api/donors/1/stats", http.StatusUnauthorized},
		{"GET", "/api/donors/me/eligibility", http.StatusUnauthorized},
		{"POST", "/api/donors/1/approve", http.StatusUnauthorized},
		{"POST", "/api/donations", http.StatusUnauthorized},
		{"GET", "/api/donations/1", http.StatusUnauthorized},
		{"PATCH", "/api/donations/1/status", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesRoleGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockRequestHandler := NewMockRequestHandler(ctrl)
	mockDonorHandler := NewMockDonorHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)

	mockDonationHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().OverrideStatus(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		RequestHandler:  mockRequestHandler,
		DonorHandler:    mockDonorHandler,
		DonationHandler: mockDonationHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	tokenFor := func(role string) string {
		token, err := jwtService.GenerateJWT(auth.Identity{UserID: 42, Role: role, Approved: true}, time.Now().Add(time.Minute))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name   string
		method string
		url    string
		role   string
		status int
	}{
		{"Admin Updates Donation Status", "PATCH", "/api/donations/1/status", "admin", http.StatusOK},
		{"Donor Cannot Update Donation Status", "PATCH", "/api/donations/1/status", "donor", http.StatusForbidden},
		{"Recipient Cannot Update Donation Status", "PATCH", "/api/donations/1/status", "recipient", http.StatusForbidden},
		{"Admin Overrides Request Status", "PATCH", "/api/requests/1/status", "admin", http.StatusOK},
		{"Donor Cannot Override Request Status", "PATCH", "/api/requests/1/status", "donor", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(tt.role))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
