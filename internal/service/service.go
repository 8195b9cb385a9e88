package service

import (
	"github.com/bloodlink/bloodlink/internal/handlers/auth"
	"github.com/bloodlink/bloodlink/internal/handlers/donations"
	"github.com/bloodlink/bloodlink/internal/handlers/donors"
	"github.com/bloodlink/bloodlink/internal/handlers/requests"

	pkgauth "github.com/bloodlink/bloodlink/pkg/auth"

	"github.com/bloodlink/bloodlink/internal/repo"
	authservice "github.com/bloodlink/bloodlink/internal/service/authservice"
	donationservice "github.com/bloodlink/bloodlink/internal/service/donationservice"
	donorservice "github.com/bloodlink/bloodlink/internal/service/donorservice"
	requestservice "github.com/bloodlink/bloodlink/internal/service/requestservice"
)

type Services struct {
	AuthService     auth.Service
	RequestService  requests.Service
	DonorService    donors.Service
	DonationService donations.Service
}

func New(repo *repo.Repositories, dispatcher requestservice.Dispatcher, blacklist authservice.TokenBlacklist) *Services {
	donationService := donationservice.New(repo.DonationRepo, repo.DonorRepo, repo.RequestRepo)
	requestService := requestservice.New(repo.RequestRepo, repo.DonorRepo, dispatcher, donationService)
	donorService := donorservice.New(repo.DonorRepo, repo.DonationRepo)
	authService := authservice.New(repo.DonorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, blacklist)

	return &Services{
		AuthService:     authService,
		RequestService:  requestService,
		DonorService:    donorService,
		DonationService: donationService,
	}
}
