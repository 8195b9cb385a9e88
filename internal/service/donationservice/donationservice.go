package donationservice

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error)
	FindByID(ctx context.Context, id int) (*domain.DonationRecord, error)
	FindByVerificationCode(ctx context.Context, code string) (*domain.DonationRecord, error)
	FindByDonorID(ctx context.Context, donorID int) ([]domain.DonationRecord, error)
	UpdateStatus(ctx context.Context, rec *domain.DonationRecord) error
}

type DonorRepo interface {
	RecordDonation(ctx context.Context, donorID, units int, donatedAt time.Time, donationType domain.DonationType) error
}

type RequestRepo interface {
	AddFulfilledUnits(ctx context.Context, id, units int) (*domain.EmergencyRequest, error)
}

type Service struct {
	repo        Repo
	donorRepo   DonorRepo
	requestRepo RequestRepo
}

func New(repo Repo, donorRepo DonorRepo, requestRepo RequestRepo) *Service {
	return &Service{
		repo:        repo,
		donorRepo:   donorRepo,
		requestRepo: requestRepo,
	}
}

var (
	ErrInvalidDonationType = errors.New("invalid donation type")
	ErrInvalidUnits        = errors.New("units must be at least 1")
	ErrDonationNotFound    = errors.New("donation record not found")
	ErrInvalidTransition   = errors.New("illegal donation status transition")
)

// scheduled -> in_progress -> completed; cancelled and rejected only
// leave scheduled.
var transitions = map[domain.DonationStatus]map[domain.DonationStatus]struct{}{
	domain.DonationScheduled: {
		domain.DonationInProgress: {},
		domain.DonationCancelled:  {},
		domain.DonationRejected:   {},
	},
	domain.DonationInProgress: {
		domain.DonationCompleted: {},
	},
}

func canTransition(from, to domain.DonationStatus) bool {
	_, ok := transitions[from][to]
	return ok
}

type ScheduleParams struct {
	DonorID       int
	RecipientID   *int
	RequestID     *int
	DonationType  domain.DonationType
	Units         int
	VolumeML      int
	BloodGroup    string
	ScheduledDate time.Time
}

// Schedule creates a donation record in the scheduled state. The
// verification code is minted exactly once here and never rewritten.
func (s *Service) Schedule(ctx context.Context, params ScheduleParams) (*domain.DonationRecord, error) {
	if !domain.IsValidDonationType(params.DonationType) {
		return nil, ErrInvalidDonationType
	}
	if params.Units < 1 {
		return nil, ErrInvalidUnits
	}

	rec := &domain.DonationRecord{
		DonorID:          params.DonorID,
		RecipientID:      params.RecipientID,
		RequestID:        params.RequestID,
		DonationType:     params.DonationType,
		Units:            params.Units,
		VolumeML:         params.VolumeML,
		BloodGroup:       params.BloodGroup,
		Status:           domain.DonationScheduled,
		ScheduledDate:    params.ScheduledDate,
		VerificationCode: uuid.NewString(),
	}
	rec, err := s.repo.Create(ctx, rec)
	if err != nil {
		zap.L().Error("can't save donation record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ScheduleFromRequest creates the scheduled donation for a donor selected
// on an emergency request.
func (s *Service) ScheduleFromRequest(ctx context.Context, req *domain.EmergencyRequest, donor *domain.User, resp *domain.DonorResponse) (*domain.DonationRecord, error) {
	scheduledDate := req.RequiredBy
	if resp.ScheduledTime != nil {
		scheduledDate = *resp.ScheduledTime
	}
	requestID := req.ID
	recipientID := req.RecipientID
	return s.Schedule(ctx, ScheduleParams{
		DonorID:       donor.ID,
		RecipientID:   &recipientID,
		RequestID:     &requestID,
		DonationType:  domain.DonationWholeBlood,
		Units:         1,
		VolumeML:      450,
		BloodGroup:    req.BloodGroup,
		ScheduledDate: scheduledDate,
	})
}

// UpdateStatus moves a donation along its lifecycle. Entering completed
// stamps the actual date and completion time when unset, credits the
// donor's counters, and adds the units to the originating request.
func (s *Service) UpdateStatus(ctx context.Context, id int, newStatus domain.DonationStatus) (*domain.DonationRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrDonationNotFound
	}
	if !canTransition(rec.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	rec.Status = newStatus
	if newStatus == domain.DonationCompleted {
		now := time.Now()
		if rec.ActualDate == nil {
			rec.ActualDate = &now
		}
		if rec.CompletionTime == nil {
			rec.CompletionTime = &now
		}
	}

	if err := s.repo.UpdateStatus(ctx, rec); err != nil {
		zap.L().Error("can't update donation status", zap.Error(err))
		return nil, err
	}

	if newStatus == domain.DonationCompleted {
		s.applyCompletion(ctx, rec)
	}
	return rec, nil
}

// applyCompletion propagates a completed donation into donor statistics
// and request fulfillment. Failures are logged; the donation itself is
// already completed and stays so.
func (s *Service) applyCompletion(ctx context.Context, rec *domain.DonationRecord) {
	if err := s.donorRepo.RecordDonation(ctx, rec.DonorID, rec.Units, *rec.ActualDate, rec.DonationType); err != nil {
		zap.L().Error("can't update donor statistics", zap.Int("donor_id", rec.DonorID), zap.Error(err))
	}
	if rec.RequestID == nil {
		return
	}
	req, err := s.requestRepo.AddFulfilledUnits(ctx, *rec.RequestID, rec.Units)
	if err != nil {
		zap.L().Error("can't credit units to request", zap.Int("request_id", *rec.RequestID), zap.Error(err))
		return
	}
	if req != nil {
		zap.L().Info("request fulfillment updated",
			zap.Int("request_id", req.ID),
			zap.Int("units_fulfilled", req.UnitsFulfilled),
			zap.String("status", string(req.Status)))
	}
}

func (s *Service) Get(ctx context.Context, id int) (*domain.DonationRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrDonationNotFound
	}
	return rec, nil
}

func (s *Service) GetByDonor(ctx context.Context, donorID int) ([]domain.DonationRecord, error) {
	return s.repo.FindByDonorID(ctx, donorID)
}

// Verify resolves a donation by its verification code.
func (s *Service) Verify(ctx context.Context, code string) (*domain.DonationRecord, error) {
	rec, err := s.repo.FindByVerificationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrDonationNotFound
	}
	return rec, nil
}
