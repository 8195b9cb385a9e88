package repo

import (
	"github.com/bloodlink/bloodlink/internal/pg"
	donationrepo "github.com/bloodlink/bloodlink/internal/repo/donation-repo"
	donorrepo "github.com/bloodlink/bloodlink/internal/repo/donor-repo"
	requestrepo "github.com/bloodlink/bloodlink/internal/repo/request-repo"
)

type Repositories struct {
	DonorRepo    *donorrepo.Repository
	RequestRepo  *requestrepo.Repository
	DonationRepo *donationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		DonorRepo:    donorrepo.New(conn),
		RequestRepo:  requestrepo.New(conn, txManager),
		DonationRepo: donationrepo.New(conn),
	}
}
