package donationservice

import (
	"context"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockDonorRepo, *MockRequestRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	donorRepo := NewMockDonorRepo(ctrl)
	requestRepo := NewMockRequestRepo(ctrl)
	service := New(repo, donorRepo, requestRepo)
	defer ctrl.Finish()
	return service, repo, donorRepo, requestRepo
}

func scheduled(id int, requestID *int) *domain.DonationRecord {
	return &domain.DonationRecord{
		ID:            id,
		DonorID:       2,
		RequestID:     requestID,
		DonationType:  domain.DonationWholeBlood,
		Units:         1,
		VolumeML:      450,
		BloodGroup:    "O-",
		Status:        domain.DonationScheduled,
		ScheduledDate: time.Now().Add(24 * time.Hour),
	}
}

func TestSchedule(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	t.Run("Invalid donation type", func(t *testing.T) {
		rec, err := service.Schedule(context.Background(), ScheduleParams{
			DonorID: 2, DonationType: "blood", Units: 1,
		})
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrInvalidDonationType)
	})

	t.Run("Units below one", func(t *testing.T) {
		rec, err := service.Schedule(context.Background(), ScheduleParams{
			DonorID: 2, DonationType: domain.DonationPlasma, Units: 0,
		})
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrInvalidUnits)
	})

	t.Run("Record starts scheduled with a fresh code", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error) {
				rec.ID = 7
				return rec, nil
			})
		rec, err := service.Schedule(context.Background(), ScheduleParams{
			DonorID: 2, DonationType: domain.DonationWholeBlood, Units: 1,
			VolumeML: 450, BloodGroup: "O-", ScheduledDate: time.Now().Add(24 * time.Hour),
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, rec.ID)
		assert.Equal(t, domain.DonationScheduled, rec.Status)
		assert.NotEmpty(t, rec.VerificationCode)
	})
}

func TestScheduleFromRequest(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	req := &domain.EmergencyRequest{
		ID: 1, RecipientID: 9, BloodGroup: "O-",
		RequiredBy: time.Now().Add(48 * time.Hour),
	}
	donor := &domain.User{ID: 2, Role: domain.RoleDonor, BloodGroup: "O-"}
	when := time.Now().Add(12 * time.Hour)
	resp := &domain.DonorResponse{RequestID: 1, DonorID: 2, ScheduledTime: &when}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error) {
			return rec, nil
		})

	rec, err := service.ScheduleFromRequest(context.Background(), req, donor, resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, rec.DonorID)
	assert.NotNil(t, rec.RequestID)
	assert.Equal(t, 1, *rec.RequestID)
	assert.NotNil(t, rec.RecipientID)
	assert.Equal(t, 9, *rec.RecipientID)
	assert.Equal(t, domain.DonationWholeBlood, rec.DonationType)
	assert.Equal(t, when, rec.ScheduledDate)
}

func TestUpdateStatus(t *testing.T) {
	service, repo, donorRepo, requestRepo := NewMock(t)

	t.Run("Donation not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationInProgress)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrDonationNotFound)
	})

	t.Run("Scheduled cannot jump to completed", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(scheduled(1, nil), nil)
		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationCompleted)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Completed cannot move again", func(t *testing.T) {
		done := scheduled(1, nil)
		done.Status = domain.DonationCompleted
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(done, nil)
		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationCancelled)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Scheduled moves to in_progress", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(scheduled(1, nil), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationInProgress)
		assert.NoError(t, err)
		assert.Equal(t, domain.DonationInProgress, rec.Status)
		assert.Nil(t, rec.ActualDate)
	})

	t.Run("Completion stamps times and credits donor and request", func(t *testing.T) {
		requestID := 3
		inProgress := scheduled(1, &requestID)
		inProgress.Status = domain.DonationInProgress
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(inProgress, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		donorRepo.EXPECT().RecordDonation(gomock.Any(), 2, 1, gomock.Any(), domain.DonationWholeBlood).Return(nil)
		requestRepo.EXPECT().AddFulfilledUnits(gomock.Any(), 3, 1).
			Return(&domain.EmergencyRequest{ID: 3, UnitsFulfilled: 1, Status: domain.RequestPartiallyFulfilled}, nil)

		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.DonationCompleted, rec.Status)
		assert.NotNil(t, rec.ActualDate)
		assert.NotNil(t, rec.CompletionTime)
	})

	t.Run("Walk-in completion skips request crediting", func(t *testing.T) {
		inProgress := scheduled(1, nil)
		inProgress.Status = domain.DonationInProgress
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(inProgress, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		donorRepo.EXPECT().RecordDonation(gomock.Any(), 2, 1, gomock.Any(), domain.DonationWholeBlood).Return(nil)

		rec, err := service.UpdateStatus(context.Background(), 1, domain.DonationCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.DonationCompleted, rec.Status)
	})
}

func TestVerify(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	t.Run("Unknown code", func(t *testing.T) {
		repo.EXPECT().FindByVerificationCode(gomock.Any(), "nope").Return(nil, nil)
		rec, err := service.Verify(context.Background(), "nope")
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrDonationNotFound)
	})

	t.Run("Known code resolves the record", func(t *testing.T) {
		repo.EXPECT().FindByVerificationCode(gomock.Any(), "abc").Return(scheduled(4, nil), nil)
		rec, err := service.Verify(context.Background(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, 4, rec.ID)
	})
}
