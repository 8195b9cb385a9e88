package requestservice

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, req *domain.EmergencyRequest) (*domain.EmergencyRequest, error)
	FindByID(ctx context.Context, id int) (*domain.EmergencyRequest, error)
	FindActive(ctx context.Context, limit, offset int) ([]domain.EmergencyRequest, error)
	UpsertResponse(ctx context.Context, resp *domain.DonorResponse) (*domain.DonorResponse, error)
	FindResponses(ctx context.Context, requestID int) ([]domain.DonorResponse, error)
	FindResponse(ctx context.Context, requestID, donorID int) (*domain.DonorResponse, error)
	FindResponseByCode(ctx context.Context, requestID int, code string) (*domain.DonorResponse, error)
	SelectDonor(ctx context.Context, requestID, donorID int) (bool, error)
	ClearSelectedDonor(ctx context.Context, requestID, donorID int) error
	UpdateUrgency(ctx context.Context, id int, urgency domain.Urgency, score int) error
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error
	ReconcileStatus(ctx context.Context, id int, status domain.RequestStatus) (bool, error)
}

type DonorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Dispatcher fans notifications out to subscribers. Best-effort: the
// service never inspects delivery results.
type Dispatcher interface {
	DispatchNewRequest(ctx context.Context, req *domain.EmergencyRequest) []string
	DispatchResponse(ctx context.Context, req *domain.EmergencyRequest, resp *domain.DonorResponse) []string
	DispatchSelection(ctx context.Context, req *domain.EmergencyRequest, donorID int) []string
}

// Donations schedules a donation record for a selected donor.
type Donations interface {
	ScheduleFromRequest(ctx context.Context, req *domain.EmergencyRequest, donor *domain.User, resp *domain.DonorResponse) (*domain.DonationRecord, error)
}

type Service struct {
	repo       Repo
	donorRepo  DonorRepo
	dispatcher Dispatcher
	donations  Donations
}

func New(repo Repo, donorRepo DonorRepo, dispatcher Dispatcher, donations Donations) *Service {
	return &Service{
		repo:       repo,
		donorRepo:  donorRepo,
		dispatcher: dispatcher,
		donations:  donations,
	}
}

var (
	ErrInvalidBloodGroup   = errors.New("invalid blood group")
	ErrInvalidUrgency      = errors.New("invalid urgency level")
	ErrInvalidUnits        = errors.New("units required must be at least 1")
	ErrDeadlineNotFuture   = errors.New("required-by must be in the future")
	ErrInvalidResponseType = errors.New("invalid response type")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrRequestNotFound     = errors.New("emergency request not found")
	ErrRequestNotActive    = errors.New("emergency request is not active")
	ErrRequestExpired      = errors.New("emergency request has expired")
	ErrDonorNotFound       = errors.New("donor not found")
	ErrDonorNotEligible    = errors.New("donor is not eligible to donate")
	ErrBloodGroupMismatch  = errors.New("donor blood group does not match the request")
	ErrDonorNeverResponded = errors.New("donor has not responded to the request")
	ErrSelectionConflict   = errors.New("a donor has already been selected")
	ErrNotRequestOwner     = errors.New("request belongs to another recipient")
	ErrResponseNotFound    = errors.New("donor response not found")
	ErrInvalidTransition   = errors.New("illegal status transition")
)

// Legal explicit transitions; terminal states have no exits.
var transitions = map[domain.RequestStatus]map[domain.RequestStatus]struct{}{
	domain.RequestActive: {
		domain.RequestPartiallyFulfilled: {},
		domain.RequestFulfilled:          {},
		domain.RequestExpired:            {},
		domain.RequestCancelled:          {},
	},
	domain.RequestPartiallyFulfilled: {
		domain.RequestFulfilled: {},
		domain.RequestExpired:   {},
		domain.RequestCancelled: {},
	},
}

func canTransition(from, to domain.RequestStatus) bool {
	_, ok := transitions[from][to]
	return ok
}

type CreateParams struct {
	RecipientID     int
	PatientName     string
	BloodGroup      string
	Urgency         domain.Urgency
	UnitsRequired   int
	RequiredBy      time.Time
	HospitalName    string
	HospitalAddress string
	HospitalCity    string
}

// CreateRequest validates and persists a new emergency request and kicks
// off the donor fan-out. The priority score is computed here and then only
// ever recomputed on an urgency change.
func (s *Service) CreateRequest(ctx context.Context, params CreateParams) (*domain.EmergencyRequest, error) {
	now := time.Now()
	if !domain.IsValidBloodGroup(params.BloodGroup) {
		return nil, ErrInvalidBloodGroup
	}
	if !domain.IsValidUrgency(params.Urgency) {
		return nil, ErrInvalidUrgency
	}
	if params.UnitsRequired < 1 {
		return nil, ErrInvalidUnits
	}
	if !params.RequiredBy.After(now) {
		return nil, ErrDeadlineNotFuture
	}

	req := &domain.EmergencyRequest{
		RecipientID:     params.RecipientID,
		PatientName:     params.PatientName,
		BloodGroup:      params.BloodGroup,
		Urgency:         params.Urgency,
		UnitsRequired:   params.UnitsRequired,
		RequiredBy:      params.RequiredBy,
		HospitalName:    params.HospitalName,
		HospitalAddress: params.HospitalAddress,
		HospitalCity:    params.HospitalCity,
		Status:          domain.RequestActive,
		PriorityScore:   domain.ScorePriority(params.Urgency, params.RequiredBy, params.UnitsRequired, params.BloodGroup, now),
		ExpiresAt:       now.Add(domain.RequestTTL),
	}

	req, err := s.repo.Create(ctx, req)
	if err != nil {
		zap.L().Error("can't save emergency request", zap.Error(err))
		return nil, err
	}

	s.dispatcher.DispatchNewRequest(ctx, req)

	zap.L().Info("emergency request created",
		zap.Int("request_id", req.ID),
		zap.String("blood_group", req.BloodGroup),
		zap.Int("priority_score", req.PriorityScore))
	return req, nil
}

// GetRequest loads a request and lazily reconciles its persisted status
// when the derived expiry predicate says it is over. Status remains the
// authoritative field; reconciliation is a conditional update that loses
// quietly to any explicit transition in flight.
func (s *Service) GetRequest(ctx context.Context, id int) (*domain.EmergencyRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return s.reconcile(ctx, req), nil
}

func (s *Service) reconcile(ctx context.Context, req *domain.EmergencyRequest) *domain.EmergencyRequest {
	if !req.IsOpen() || !req.IsExpired(time.Now()) {
		return req
	}
	ok, err := s.repo.ReconcileStatus(ctx, req.ID, domain.RequestExpired)
	if err != nil {
		zap.L().Warn("expiry reconciliation failed", zap.Int("request_id", req.ID), zap.Error(err))
		return req
	}
	if ok {
		req.Status = domain.RequestExpired
	}
	return req
}

// ListActive returns open requests ordered by priority. Requests whose
// deadline has passed are reconciled and dropped from the result.
func (s *Service) ListActive(ctx context.Context, limit, offset int) ([]domain.EmergencyRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	requests, err := s.repo.FindActive(ctx, limit, offset)
	if err != nil {
		zap.L().Error("can't list active requests", zap.Error(err))
		return nil, err
	}

	open := make([]domain.EmergencyRequest, 0, len(requests))
	for i := range requests {
		req := s.reconcile(ctx, &requests[i])
		if req.IsOpen() {
			open = append(open, *req)
		}
	}
	return open, nil
}

type RespondParams struct {
	RequestID     int
	DonorID       int
	ResponseType  domain.ResponseType
	Notes         string
	ScheduledTime *time.Time
}

// AddDonorResponse records a donor's response with upsert semantics: a
// second response from the same donor overwrites the first instead of
// appending. The request status is never changed here.
func (s *Service) AddDonorResponse(ctx context.Context, params RespondParams) (*domain.DonorResponse, error) {
	if !domain.IsValidResponseType(params.ResponseType) {
		return nil, ErrInvalidResponseType
	}

	req, err := s.GetRequest(ctx, params.RequestID)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.RequestExpired || req.IsExpired(time.Now()) {
		return nil, ErrRequestExpired
	}
	if !req.IsOpen() {
		return nil, ErrRequestNotActive
	}

	donor, err := s.donorRepo.FindByID(ctx, params.DonorID)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}
	if donor.BloodGroup != req.BloodGroup {
		return nil, ErrBloodGroupMismatch
	}
	if !donor.Approved || !domain.CanDonate(donor, time.Now()) {
		return nil, ErrDonorNotEligible
	}

	resp := &domain.DonorResponse{
		RequestID:        params.RequestID,
		DonorID:          params.DonorID,
		ResponseType:     params.ResponseType,
		Notes:            params.Notes,
		ScheduledTime:    params.ScheduledTime,
		VerificationCode: validate.NewVerificationCode(),
		RespondedAt:      time.Now(),
	}
	saved, err := s.repo.UpsertResponse(ctx, resp)
	if err != nil {
		zap.L().Error("can't record donor response", zap.Error(err))
		return nil, err
	}

	s.dispatcher.DispatchResponse(ctx, req, saved)

	return saved, nil
}

// SelectDonor picks a responding donor for the request and schedules the
// donation. Guarded by a compare-and-set on the unset selected donor, so
// of two concurrent selections exactly one wins; the loser gets
// ErrSelectionConflict. A win whose donation cannot be scheduled is
// released again.
func (s *Service) SelectDonor(ctx context.Context, requestID, donorID, recipientID int) (*domain.DonationRecord, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RecipientID != recipientID {
		return nil, ErrNotRequestOwner
	}
	if req.Status == domain.RequestExpired || req.IsExpired(time.Now()) {
		return nil, ErrRequestExpired
	}
	if !req.IsOpen() {
		return nil, ErrRequestNotActive
	}

	resp, err := s.repo.FindResponse(ctx, requestID, donorID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrDonorNeverResponded
	}

	won, err := s.repo.SelectDonor(ctx, requestID, donorID)
	if err != nil {
		zap.L().Error("can't select donor", zap.Error(err))
		return nil, err
	}
	if !won {
		return nil, ErrSelectionConflict
	}

	donor, err := s.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		s.unselect(ctx, requestID, donorID)
		return nil, err
	}
	if donor == nil {
		s.unselect(ctx, requestID, donorID)
		return nil, ErrDonorNotFound
	}

	rec, err := s.donations.ScheduleFromRequest(ctx, req, donor, resp)
	if err != nil {
		zap.L().Error("can't schedule donation for selected donor", zap.Error(err))
		s.unselect(ctx, requestID, donorID)
		return nil, err
	}

	s.dispatcher.DispatchSelection(ctx, req, donorID)

	zap.L().Info("donor selected",
		zap.Int("request_id", requestID),
		zap.Int("donor_id", donorID))
	return rec, nil
}

// unselect releases a won selection that could not be completed, so the
// recipient can retry instead of hitting the conflict error forever.
func (s *Service) unselect(ctx context.Context, requestID, donorID int) {
	if err := s.repo.ClearSelectedDonor(ctx, requestID, donorID); err != nil {
		zap.L().Error("can't roll back donor selection",
			zap.Int("request_id", requestID),
			zap.Int("donor_id", donorID),
			zap.Error(err))
	}
}

// UpdateUrgency changes the urgency level and recomputes the priority
// score in the same write. No other field change ever moves the score.
func (s *Service) UpdateUrgency(ctx context.Context, id int, urgency domain.Urgency) (*domain.EmergencyRequest, error) {
	if !domain.IsValidUrgency(urgency) {
		return nil, ErrInvalidUrgency
	}
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	score := domain.ScorePriority(urgency, req.RequiredBy, req.UnitsRequired, req.BloodGroup, time.Now())
	if err := s.repo.UpdateUrgency(ctx, id, urgency, score); err != nil {
		return nil, err
	}
	req.Urgency = urgency
	req.PriorityScore = score
	return req, nil
}

// CancelRequest is the recipient's explicit transition into cancelled.
func (s *Service) CancelRequest(ctx context.Context, id, recipientID int) error {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if req.RecipientID != recipientID {
		return ErrNotRequestOwner
	}
	if !canTransition(req.Status, domain.RequestCancelled) {
		return ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, domain.RequestCancelled)
}

// OverrideStatus is the admin's explicit transition, checked against the
// state machine; terminal states are immutable.
func (s *Service) OverrideStatus(ctx context.Context, id int, status domain.RequestStatus) error {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if !canTransition(req.Status, status) {
		return ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) GetResponses(ctx context.Context, requestID int) ([]domain.DonorResponse, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return s.repo.FindResponses(ctx, requestID)
}

// VerifyResponse resolves a response by its Luhn verification code.
func (s *Service) VerifyResponse(ctx context.Context, requestID int, code string) (*domain.DonorResponse, error) {
	if !validate.IsVerificationCode(code) {
		return nil, ErrInvalidCode
	}
	resp, err := s.repo.FindResponseByCode(ctx, requestID, code)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrResponseNotFound
	}
	return resp, nil
}
