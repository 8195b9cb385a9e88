package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/dto"
	"github.com/bloodlink/bloodlink/internal/service/requestservice"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/bloodlink/bloodlink/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, params requestservice.CreateParams) (*domain.EmergencyRequest, error)
	GetRequest(ctx context.Context, id int) (*domain.EmergencyRequest, error)
	ListActive(ctx context.Context, limit, offset int) ([]domain.EmergencyRequest, error)
	AddDonorResponse(ctx context.Context, params requestservice.RespondParams) (*domain.DonorResponse, error)
	SelectDonor(ctx context.Context, requestID, donorID, recipientID int) (*domain.DonationRecord, error)
	UpdateUrgency(ctx context.Context, id int, urgency domain.Urgency) (*domain.EmergencyRequest, error)
	CancelRequest(ctx context.Context, id, recipientID int) error
	OverrideStatus(ctx context.Context, id int, status domain.RequestStatus) error
	GetResponses(ctx context.Context, requestID int) ([]domain.DonorResponse, error)
	VerifyResponse(ctx context.Context, requestID int, code string) (*domain.DonorResponse, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

func requestID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toRequestDTO(req *domain.EmergencyRequest) dto.RequestResponseDTO {
	return dto.RequestResponseDTO{
		ID:             req.ID,
		RecipientID:    req.RecipientID,
		PatientName:    req.PatientName,
		BloodGroup:     req.BloodGroup,
		Urgency:        string(req.Urgency),
		UnitsRequired:  req.UnitsRequired,
		UnitsFulfilled: req.UnitsFulfilled,
		RequiredBy:     req.RequiredBy,
		HospitalName:   req.HospitalName,
		HospitalCity:   req.HospitalCity,
		Status:         string(req.Status),
		PriorityScore:  req.PriorityScore,
		SelectedDonor:  req.SelectedDonorID,
		ExpiresAt:      req.ExpiresAt,
		CreatedAt:      req.CreatedAt,
	}
}

func toResponseDTO(resp *domain.DonorResponse) dto.DonorResponseDTO {
	return dto.DonorResponseDTO{
		RequestID:        resp.RequestID,
		DonorID:          resp.DonorID,
		ResponseType:     string(resp.ResponseType),
		ScheduledTime:    resp.ScheduledTime,
		Notes:            resp.Notes,
		VerificationCode: resp.VerificationCode,
		RespondedAt:      resp.RespondedAt,
	}
}

// Create godoc
//
//	@Summary		Create an emergency request
//	@Description	Open a blood request and fan notifications out to matching donors
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRequestDTO	true	"Request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), requestservice.CreateParams{
		RecipientID:     identity.UserID,
		PatientName:     req.PatientName,
		BloodGroup:      req.BloodGroup,
		Urgency:         domain.Urgency(req.Urgency),
		UnitsRequired:   req.UnitsRequired,
		RequiredBy:      req.RequiredBy,
		HospitalName:    req.HospitalName,
		HospitalAddress: req.HospitalAddress,
		HospitalCity:    req.HospitalCity,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidBloodGroup),
			errors.Is(err, requestservice.ErrInvalidUrgency),
			errors.Is(err, requestservice.ErrInvalidUnits),
			errors.Is(err, requestservice.ErrDeadlineNotFuture):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRequestDTO(created))
}

// List godoc
//
//	@Summary		List active requests
//	@Description	Active and partially fulfilled requests ordered by priority
//	@Tags			Requests
//	@Produce		json
//	@Param			limit	query	int	false	"Page size"
//	@Param			offset	query	int	false	"Page offset"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RequestResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.requestService.ListActive(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RequestResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toRequestDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a request by id
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path	int	true	"Request id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RequestResponseDTO
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id} [get]
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	req, err := h.requestService.GetRequest(r.Context(), id)
	if err != nil {
		if errors.Is(err, requestservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRequestDTO(req))
}

// Respond godoc
//
//	@Summary		Respond to a request
//	@Description	Record or overwrite this donor's response to a request
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Request id"
//	@Param			request	body	dto.RespondRequestDTO	true	"Response body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonorResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Request or donor not found"
//	@Failure		409	{object}	utils.Response	"Request no longer accepts responses"
//	@Failure		422	{object}	utils.Response	"Donor not eligible"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/respond [post]
func (h *RequestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.RespondRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.requestService.AddDonorResponse(r.Context(), requestservice.RespondParams{
		RequestID:     id,
		DonorID:       identity.UserID,
		ResponseType:  domain.ResponseType(req.ResponseType),
		Notes:         req.Notes,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidResponseType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotFound),
			errors.Is(err, requestservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrRequestExpired),
			errors.Is(err, requestservice.ErrRequestNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, requestservice.ErrDonorNotEligible),
			errors.Is(err, requestservice.ErrBloodGroupMismatch):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(resp))
}

// Select godoc
//
//	@Summary		Select a donor
//	@Description	Pick one responding donor for the request; exactly one selection wins
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Request id"
//	@Param			request	body	dto.SelectDonorRequestDTO	true	"Selection body"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Donor selected"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Not the request owner"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Donor already selected"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/select [post]
func (h *RequestHandler) Select(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.SelectDonorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = h.requestService.SelectDonor(r.Context(), id, req.DonorID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrNotRequestOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotFound),
			errors.Is(err, requestservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrSelectionConflict),
			errors.Is(err, requestservice.ErrDonorNeverResponded),
			errors.Is(err, requestservice.ErrRequestNotActive),
			errors.Is(err, requestservice.ErrRequestExpired):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Donor selected"})
}

// Responses godoc
//
//	@Summary		List responses for a request
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path	int	true	"Request id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DonorResponseDTO
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/responses [get]
func (h *RequestHandler) Responses(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	list, err := h.requestService.GetResponses(r.Context(), id)
	if err != nil {
		if errors.Is(err, requestservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DonorResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toResponseDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Verify godoc
//
//	@Summary		Verify a response code
//	@Description	Look up the donor response carrying the given verification code
//	@Tags			Requests
//	@Produce		json
//	@Param			id		path	int		true	"Request id"
//	@Param			code	path	string	true	"Verification code"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonorResponseDTO
//	@Failure		404	{object}	utils.Response	"No response with this code"
//	@Failure		422	{object}	utils.Response	"Malformed code"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/verify/{code} [get]
func (h *RequestHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	code := chi.URLParam(r, "code")

	resp, err := h.requestService.VerifyResponse(r.Context(), id, code)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, requestservice.ErrResponseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(resp))
}

// Cancel godoc
//
//	@Summary		Cancel a request
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path	int	true	"Request id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Request cancelled"
//	@Failure		403	{object}	utils.Response	"Not the request owner"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	err = h.requestService.CancelRequest(r.Context(), id, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrNotRequestOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request cancelled"})
}

// UpdateUrgency godoc
//
//	@Summary		Change request urgency
//	@Description	Admin override; the priority score is recomputed
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Request id"
//	@Param			request	body	dto.UpdateUrgencyRequestDTO	true	"New urgency"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid urgency"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/urgency [patch]
func (h *RequestHandler) UpdateUrgency(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.UpdateUrgencyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.requestService.UpdateUrgency(r.Context(), id, domain.Urgency(req.Urgency))
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidUrgency):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRequestDTO(updated))
}

// OverrideStatus godoc
//
//	@Summary		Override request status
//	@Description	Admin transition subject to the request state machine
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Request id"
//	@Param			request	body	dto.OverrideStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Status updated"
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/status [patch]
func (h *RequestHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.OverrideStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.requestService.OverrideStatus(r.Context(), id, domain.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Status updated"})
}
