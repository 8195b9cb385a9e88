package donationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bloodlink/bloodlink/internal/domain"
)

var donationRowColumns = []string{
	"id", "donor_id", "recipient_id", "request_id", "donation_type", "units", "volume_ml",
	"blood_group", "status", "scheduled_date", "actual_date", "completion_time", "verification_code", "created_at",
}

func donationRow(id int, status domain.DonationStatus, now time.Time) []any {
	return []any{
		id, 7, nil, nil, domain.DonationWholeBlood, 1, 450,
		"O-", status, now, nil, nil, "79927398713", now,
	}
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rec := &domain.DonationRecord{
		DonorID:          7,
		DonationType:     domain.DonationWholeBlood,
		Units:            1,
		VolumeML:         450,
		BloodGroup:       "O-",
		Status:           domain.DonationScheduled,
		ScheduledDate:    now,
		VerificationCode: "79927398713",
	}

	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now)
	mock.ExpectQuery("INSERT INTO donation_records").
		WithArgs(7, rec.RecipientID, rec.RequestID, domain.DonationWholeBlood,
			1, 450, "O-", domain.DonationScheduled, now, "79927398713").
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), rec)
	assert.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Donation found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(donationRowColumns).AddRow(donationRow(1, domain.DonationScheduled, now)...)
				mock.ExpectQuery("SELECT (.+) FROM donation_records").
					WithArgs(1).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Donation not found",
			id:   2,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM donation_records").
					WithArgs(2).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM donation_records").
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
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindByDonorID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(donationRowColumns).
		AddRow(donationRow(2, domain.DonationCompleted, now)...).
		AddRow(donationRow(1, domain.DonationScheduled, now)...)
	mock.ExpectQuery("SELECT (.+) FROM donation_records").
		WithArgs(7).
		WillReturnRows(rows)

	records, err := repo.FindByDonorID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, domain.DonationCompleted, records[0].Status)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rec := &domain.DonationRecord{
		ID:             1,
		Status:         domain.DonationCompleted,
		ActualDate:     &now,
		CompletionTime: &now,
	}

	mock.ExpectExec("UPDATE donation_records").
		WithArgs(domain.DonationCompleted, &now, &now, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), rec)
	assert.NoError(t, err)
}

func TestRepository_GetDonorStats(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		stats     *domain.DonorStats
	}{
		{
			name: "Stats aggregated",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"count", "completed", "units"}).AddRow(5, 3, 4)
				mock.ExpectQuery("SELECT (.+) FROM donation_records").
					WithArgs(7).
					WillReturnRows(rows)
			},
			stats: &domain.DonorStats{TotalDonations: 5, CompletedDonations: 3, TotalUnits: 4},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM donation_records").
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			stats, err := repo.GetDonorStats(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.stats, stats)
			}
		})
	}
}
