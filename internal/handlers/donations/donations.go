package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/dto"
	"github.com/bloodlink/bloodlink/internal/service/donationservice"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/bloodlink/bloodlink/pkg/utils"
)

type Service interface {
	Schedule(ctx context.Context, params donationservice.ScheduleParams) (*domain.DonationRecord, error)
	UpdateStatus(ctx context.Context, id int, newStatus domain.DonationStatus) (*domain.DonationRecord, error)
	Get(ctx context.Context, id int) (*domain.DonationRecord, error)
	GetByDonor(ctx context.Context, donorID int) ([]domain.DonationRecord, error)
	Verify(ctx context.Context, code string) (*domain.DonationRecord, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func toDonationDTO(rec *domain.DonationRecord) dto.DonationResponseDTO {
	return dto.DonationResponseDTO{
		ID:               rec.ID,
		DonorID:          rec.DonorID,
		RequestID:        rec.RequestID,
		DonationType:     string(rec.DonationType),
		Units:            rec.Units,
		VolumeML:         rec.VolumeML,
		BloodGroup:       rec.BloodGroup,
		Status:           string(rec.Status),
		ScheduledDate:    rec.ScheduledDate,
		ActualDate:       rec.ActualDate,
		CompletionTime:   rec.CompletionTime,
		VerificationCode: rec.VerificationCode,
		RewardPoints:     domain.RewardPoints(rec),
		CreatedAt:        rec.CreatedAt,
	}
}

// Schedule godoc
//
//	@Summary		Schedule a walk-in donation
//	@Description	Create a donation record not tied to any emergency request
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ScheduleDonationRequestDTO	true	"Donation body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.DonationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [post]
func (h *DonationHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var req dto.ScheduleDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.donationService.Schedule(r.Context(), donationservice.ScheduleParams{
		DonorID:       identity.UserID,
		DonationType:  domain.DonationType(req.DonationType),
		Units:         req.Units,
		VolumeML:      req.VolumeML,
		BloodGroup:    identity.BloodGroup,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidDonationType),
			errors.Is(err, donationservice.ErrInvalidUnits):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDonationDTO(rec))
}

// Get godoc
//
//	@Summary		Get a donation record
//	@Tags			Donations
//	@Produce		json
//	@Param			id	path	int	true	"Donation id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationResponseDTO
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/{id} [get]
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donation id")
		return
	}
	rec, err := h.donationService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(rec))
}

// History godoc
//
//	@Summary		Own donation history
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DonationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [get]
func (h *DonationHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	list, err := h.donationService.GetByDonor(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DonationResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toDonationDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Advance a donation's status
//	@Description	Admin only. scheduled to in_progress to completed; cancelled and rejected only leave scheduled
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Donation id"
//	@Param			request	body	dto.UpdateDonationStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Caller is not an admin"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/{id}/status [patch]
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donation id")
		return
	}
	var req dto.UpdateDonationStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.donationService.UpdateStatus(r.Context(), id, domain.DonationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(rec))
}

// Verify godoc
//
//	@Summary		Verify a donation code
//	@Description	Look up the donation record carrying the given verification code
//	@Tags			Donations
//	@Produce		json
//	@Param			code	path	string	true	"Verification code"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationResponseDTO
//	@Failure		404	{object}	utils.Response	"No donation with this code"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/verify/{code} [get]
func (h *DonationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rec, err := h.donationService.Verify(r.Context(), code)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(rec))
}
