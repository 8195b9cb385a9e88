package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/pg"
)

var requestRowColumns = []string{
	"id", "recipient_id", "patient_name", "blood_group", "urgency", "units_required",
	"units_fulfilled", "required_by", "hospital_name", "hospital_address", "hospital_city",
	"status", "priority_score", "selected_donor_id", "expires_at", "created_at", "updated_at",
}

func requestRow(id int, status domain.RequestStatus, unitsFulfilled int, now time.Time) []any {
	return []any{
		id, 9, "Patient", "O-", domain.UrgencyCritical, 3,
		unitsFulfilled, now.Add(24 * time.Hour), "City Hospital", "12 Main Rd", "Dhaka",
		status, 90, nil, now.Add(domain.RequestTTL), now, now,
	}
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, txManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, txManager
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Request found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(requestRowColumns).AddRow(requestRow(1, domain.RequestActive, 0, now)...)
				mock.ExpectQuery("SELECT (.+) FROM emergency_requests").
					WithArgs(1).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Request not found",
			id:   2,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM emergency_requests").
					WithArgs(2).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM emergency_requests").
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, tt.id, result.ID)
				assert.Equal(t, domain.RequestActive, result.Status)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(requestRowColumns).
		AddRow(requestRow(1, domain.RequestActive, 0, now)...).
		AddRow(requestRow(2, domain.RequestPartiallyFulfilled, 1, now)...)
	mock.ExpectQuery("SELECT (.+) FROM emergency_requests").
		WithArgs(50, 0).
		WillReturnRows(rows)

	requests, err := repo.FindActive(context.Background(), 50, 0)
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, 1, requests[0].ID)
	assert.Equal(t, domain.RequestPartiallyFulfilled, requests[1].Status)
}

func TestRepository_UpsertResponse(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	resp := &domain.DonorResponse{
		RequestID:        1,
		DonorID:          7,
		ResponseType:     domain.ResponseConfirmed,
		Notes:            "after work",
		VerificationCode: "79927398713",
		RespondedAt:      now,
	}

	rows := pgxmock.NewRows([]string{"request_id", "donor_id", "response_type", "notes", "scheduled_time", "verification_code", "responded_at"}).
		AddRow(1, 7, domain.ResponseConfirmed, "after work", nil, "79927398713", now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donor_responses")).
		WithArgs(1, 7, domain.ResponseConfirmed, "after work", resp.ScheduledTime, "79927398713", now).
		WillReturnRows(rows)

	saved, err := repo.UpsertResponse(context.Background(), resp)
	assert.NoError(t, err)
	assert.Equal(t, 1, saved.RequestID)
	assert.Equal(t, 7, saved.DonorID)
	assert.Equal(t, "79927398713", saved.VerificationCode)
}

func TestRepository_SelectDonor(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		won       bool
	}{
		{
			name: "Selection wins",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			won: true,
		},
		{
			name: "Another donor already selected",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			won: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(7, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.SelectDonor(context.Background(), 1, 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.won, won)
			}
		})
	}
}

func TestRepository_ClearSelectedDonor(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Selection released",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(1, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Another donor holds the slot",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(1, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(1, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.ClearSelectedDonor(context.Background(), 1, 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ReconcileStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name       string
		mockSetup  func()
		reconciled bool
	}{
		{
			name: "Open request reconciled",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(domain.RequestExpired, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			reconciled: true,
		},
		{
			name: "Already in a terminal status",
			mockSetup: func() {
				mock.ExpectExec("UPDATE emergency_requests").
					WithArgs(domain.RequestExpired, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			reconciled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			reconciled, err := repo.ReconcileStatus(context.Background(), 1, domain.RequestExpired)
			assert.NoError(t, err)
			assert.Equal(t, tt.reconciled, reconciled)
		})
	}
}

func TestRepository_AddFulfilledUnits(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		units     int
		mockSetup func()
		expectErr bool
		status    domain.RequestStatus
	}{
		{
			name:  "Partial fulfillment",
			units: 1,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				rows := pgxmock.NewRows(requestRowColumns).AddRow(requestRow(1, domain.RequestPartiallyFulfilled, 1, now)...)
				mock.ExpectQuery("UPDATE emergency_requests").
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			status: domain.RequestPartiallyFulfilled,
		},
		{
			name:  "Full fulfillment",
			units: 3,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				rows := pgxmock.NewRows(requestRowColumns).AddRow(requestRow(1, domain.RequestFulfilled, 3, now)...)
				mock.ExpectQuery("UPDATE emergency_requests").
					WithArgs(3, 1).
					WillReturnRows(rows)
			},
			status: domain.RequestFulfilled,
		},
		{
			name:  "Request no longer open",
			units: 1,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery("UPDATE emergency_requests").
					WithArgs(1, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			status: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.AddFulfilledUnits(context.Background(), 1, tt.units)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.status == "" {
				assert.Nil(t, updated)
			} else {
				assert.Equal(t, tt.status, updated.Status)
			}
		})
	}
}
