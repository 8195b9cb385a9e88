package handlers

import (
	"net/http"

	_ "github.com/bloodlink/bloodlink/docs"
	authhandlers "github.com/bloodlink/bloodlink/internal/handlers/auth"
	donationhandlers "github.com/bloodlink/bloodlink/internal/handlers/donations"
	donorhandlers "github.com/bloodlink/bloodlink/internal/handlers/donors"
	requesthandlers "github.com/bloodlink/bloodlink/internal/handlers/requests"
	"github.com/bloodlink/bloodlink/internal/service"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	Responses(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	UpdateUrgency(w http.ResponseWriter, r *http.Request)
	OverrideStatus(w http.ResponseWriter, r *http.Request)
}

type DonorHandler interface {
	Eligibility(w http.ResponseWriter, r *http.Request)
	SetAvailability(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RequestHandler  RequestHandler
	DonorHandler    DonorHandler
	DonationHandler DonationHandler

	blacklist auth.TokenBlacklist
	ws        http.HandlerFunc
}

func New(s *service.Services, blacklist auth.TokenBlacklist, ws http.HandlerFunc) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		RequestHandler:  requesthandlers.New(s.RequestService),
		DonorHandler:    donorhandlers.New(s.DonorService),
		DonationHandler: donationhandlers.New(s.DonationService),
		blacklist:       blacklist,
		ws:              ws,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.blacklist))

			r.Post("/auth/logout", h.AuthHandler.Logout)

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.RequestHandler.List)
				r.Get("/{id}", h.RequestHandler.Get)
				r.Get("/{id}/responses", h.RequestHandler.Responses)
				r.Get("/{id}/verify/{code}", h.RequestHandler.Verify)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("recipient"))
					r.Post("/", h.RequestHandler.Create)
					r.Post("/{id}/select", h.RequestHandler.Select)
					r.Post("/{id}/cancel", h.RequestHandler.Cancel)
				})
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("donor"))
					r.Post("/{id}/respond", h.RequestHandler.Respond)
				})
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("admin"))
					r.Patch("/{id}/urgency", h.RequestHandler.UpdateUrgency)
					r.Patch("/{id}/status", h.RequestHandler.OverrideStatus)
				})
			})

			r.Route("/donors", func(r chi.Router) {
				r.Get("/{id}/stats", h.DonorHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("donor"))
					r.Get("/me/eligibility", h.DonorHandler.Eligibility)
					r.Patch("/me/availability", h.DonorHandler.SetAvailability)
				})
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("admin"))
					r.Post("/{id}/approve", h.DonorHandler.Approve)
				})
			})

			r.Route("/donations", func(r chi.Router) {
				r.Get("/{id}", h.DonationHandler.Get)
				r.Get("/verify/{code}", h.DonationHandler.Verify)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("donor"))
					r.Post("/", h.DonationHandler.Schedule)
					r.Get("/", h.DonationHandler.History)
				})
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole("admin"))
					r.Patch("/{id}/status", h.DonationHandler.UpdateStatus)
				})
			})

			if h.ws != nil {
				r.Get("/ws", h.ws)
			}
		})
	})

	return r
}
