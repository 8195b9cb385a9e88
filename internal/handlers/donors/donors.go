package donors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/dto"
	"github.com/bloodlink/bloodlink/internal/service/donorservice"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/bloodlink/bloodlink/pkg/utils"
)

type Service interface {
	CheckEligibility(ctx context.Context, donorID int) (*donorservice.Eligibility, error)
	SetAvailability(ctx context.Context, donorID int, available bool) error
	ApproveDonor(ctx context.Context, donorID int) error
	DonorStats(ctx context.Context, donorID int) (*domain.DonorStats, error)
}

type DonorHandler struct {
	donorService Service
}

func New(donorService Service) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
	}
}

// Eligibility godoc
//
//	@Summary		Check own eligibility
//	@Description	Whether the calling donor can donate now and, if not, when
//	@Tags			Donors
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EligibilityResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Donor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donors/me/eligibility [get]
func (h *DonorHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	elig, err := h.donorService.CheckEligibility(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, donorservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donorservice.ErrNotADonor):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibilityResponseDTO{
		Eligible:         elig.Eligible,
		NextEligibleDate: elig.NextEligibleDate,
	})
}

// SetAvailability godoc
//
//	@Summary		Toggle own availability
//	@Tags			Donors
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AvailabilityRequestDTO	true	"Availability body"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Availability updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Donor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donors/me/availability [patch]
func (h *DonorHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var req dto.AvailabilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.donorService.SetAvailability(r.Context(), identity.UserID, req.Available)
	if err != nil {
		switch {
		case errors.Is(err, donorservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donorservice.ErrNotADonor):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Availability updated"})
}

// Approve godoc
//
//	@Summary		Approve a donor
//	@Description	Admin verification gate a donor must pass before matching
//	@Tags			Donors
//	@Produce		json
//	@Param			id	path	int	true	"Donor id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Donor approved"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Donor not found"
//	@Failure		422	{object}	utils.Response	"Profile incomplete"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donors/{id}/approve [post]
func (h *DonorHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donor id")
		return
	}
	err = h.donorService.ApproveDonor(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, donorservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donorservice.ErrNotADonor),
			errors.Is(err, donorservice.ErrInvalidDonorProfile):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Donor approved"})
}

// Stats godoc
//
//	@Summary		Donor statistics
//	@Description	Donation counts, units and accumulated reward points
//	@Tags			Donors
//	@Produce		json
//	@Param			id	path	int	true	"Donor id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonorStatsResponseDTO
//	@Failure		404	{object}	utils.Response	"Donor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donors/{id}/stats [get]
func (h *DonorHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donor id")
		return
	}
	stats, err := h.donorService.DonorStats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, donorservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donorservice.ErrNotADonor):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonorStatsResponseDTO{
		TotalDonations:     stats.TotalDonations,
		CompletedDonations: stats.CompletedDonations,
		TotalUnits:         stats.TotalUnits,
		TotalRewardPoints:  stats.TotalRewardPoints,
	})
}
