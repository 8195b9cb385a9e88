package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/dto"
	"github.com/bloodlink/bloodlink/internal/service/authservice"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/bloodlink/bloodlink/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, params authservice.RegisterParams) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type AuthHandler struct {
	authService Service
	jwtService  auth.JWTServiceInterface
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  &auth.JWTService{},
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a donor, recipient or admin account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Login already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := authservice.RegisterParams{
		Login:      req.Login,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		FullName:   req.FullName,
		BloodGroup: req.BloodGroup,
		City:       req.City,
		Area:       req.Area,
		Phone:      req.Phone,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date of birth")
			return
		}
		params.DateOfBirth = &dob
	}

	user, err := h.authService.Register(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrLoginTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidRole),
			errors.Is(err, authservice.ErrInvalidBloodGroup),
			errors.Is(err, authservice.ErrInvalidDateOfBirth):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}

// Logout godoc
//
//	@Summary		Revoke the current token
//	@Description	Blacklist the presented JWT until it expires on its own
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Logged out"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.Logout(r.Context(), claims); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}
