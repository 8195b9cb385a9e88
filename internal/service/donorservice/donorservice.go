package donorservice

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetAvailability(ctx context.Context, donorID int, available bool) error
	Approve(ctx context.Context, donorID int) error
}

type DonationRepo interface {
	GetDonorStats(ctx context.Context, donorID int) (*domain.DonorStats, error)
	FindByDonorID(ctx context.Context, donorID int) ([]domain.DonationRecord, error)
}

type Service struct {
	repo         Repo
	donationRepo DonationRepo
}

func New(repo Repo, donationRepo DonationRepo) *Service {
	return &Service{
		repo:         repo,
		donationRepo: donationRepo,
	}
}

var (
	ErrDonorNotFound       = errors.New("donor not found")
	ErrNotADonor           = errors.New("user is not a donor")
	ErrInvalidDonorProfile = errors.New("donor profile is incomplete or invalid")
)

const (
	minDonorAge = 18
	maxDonorAge = 65
)

// Eligibility is the donor's current standing plus, when the donor is in a
// waiting window, the day it ends.
type Eligibility struct {
	Eligible         bool
	NextEligibleDate *time.Time
}

func (s *Service) findDonor(ctx context.Context, donorID int) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrDonorNotFound
	}
	if user.Role != domain.RoleDonor {
		return nil, ErrNotADonor
	}
	return user, nil
}

func (s *Service) CheckEligibility(ctx context.Context, donorID int) (*Eligibility, error) {
	donor, err := s.findDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	e := &Eligibility{Eligible: domain.CanDonate(donor, time.Now())}
	if !e.Eligible {
		e.NextEligibleDate = domain.NextEligibleDate(donor)
	}
	return e, nil
}

func (s *Service) SetAvailability(ctx context.Context, donorID int, available bool) error {
	if _, err := s.findDonor(ctx, donorID); err != nil {
		return err
	}
	if err := s.repo.SetAvailability(ctx, donorID, available); err != nil {
		zap.L().Error("can't set donor availability", zap.Error(err))
		return err
	}
	return nil
}

// Age in whole years at the given moment.
func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	return age
}

// ApproveDonor marks a donor approved after checking the profile the
// donor registered with: valid blood group and age inside the donation
// window. Blood group and date of birth are frozen from here on.
func (s *Service) ApproveDonor(ctx context.Context, donorID int) error {
	donor, err := s.findDonor(ctx, donorID)
	if err != nil {
		return err
	}
	if !domain.IsValidBloodGroup(donor.BloodGroup) || donor.DateOfBirth == nil {
		return ErrInvalidDonorProfile
	}
	age := ageAt(*donor.DateOfBirth, time.Now())
	if age < minDonorAge || age > maxDonorAge {
		return ErrInvalidDonorProfile
	}
	if err := s.repo.Approve(ctx, donorID); err != nil {
		zap.L().Error("can't approve donor", zap.Error(err))
		return err
	}
	zap.L().Info("donor approved", zap.Int("donor_id", donorID))
	return nil
}

// DonorStats aggregates the donor's history and recomputes reward points
// from the completed records; points are never read from storage.
func (s *Service) DonorStats(ctx context.Context, donorID int) (*domain.DonorStats, error) {
	if _, err := s.findDonor(ctx, donorID); err != nil {
		return nil, err
	}
	stats, err := s.donationRepo.GetDonorStats(ctx, donorID)
	if err != nil {
		return nil, err
	}

	records, err := s.donationRepo.FindByDonorID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Status == domain.DonationCompleted {
			stats.TotalRewardPoints += domain.RewardPoints(&records[i])
		}
	}
	return stats, nil
}
