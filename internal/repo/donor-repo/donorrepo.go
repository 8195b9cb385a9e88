package donorrepo

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, login, password_hash, role, full_name, blood_group, date_of_birth,
		city, area, phone, available, approved, last_donation_date, last_donation_type,
		total_donations, total_units, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.FullName,
		&user.BloodGroup, &user.DateOfBirth, &user.City, &user.Area, &user.Phone,
		&user.Available, &user.Approved, &user.LastDonationDate, &user.LastDonationType,
		&user.TotalDonations, &user.TotalUnits, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE login = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role, full_name, blood_group, date_of_birth, city, area, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Role, user.FullName, user.BloodGroup,
		user.DateOfBirth, user.City, user.Area, user.Phone,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindMatchingDonors returns approved, available donors of the given blood
// group in the given city.
func (r *Repository) FindMatchingDonors(ctx context.Context, bloodGroup, city string) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE role = 'donor' AND approved = TRUE AND available = TRUE
          AND blood_group = $1 AND city = $2
    `
	rows, err := r.db.Query(ctx, query, bloodGroup, city)
	if err != nil {
		zap.L().Error("can't find matching donors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donors []domain.User
	for rows.Next() {
		donor, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan donor row", zap.Error(err))
			return nil, err
		}
		donors = append(donors, *donor)
	}
	return donors, nil
}

func (r *Repository) SetAvailability(ctx context.Context, donorID int, available bool) error {
	query := `
		UPDATE users
		SET available = $1
		WHERE id = $2 AND role = 'donor'
	`
	_, err := r.db.Exec(ctx, query, available, donorID)
	if err != nil {
		zap.L().Error("can't update donor availability", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Approve(ctx context.Context, donorID int) error {
	query := `
		UPDATE users
		SET approved = TRUE
		WHERE id = $1 AND role = 'donor'
	`
	_, err := r.db.Exec(ctx, query, donorID)
	if err != nil {
		zap.L().Error("can't approve donor", zap.Error(err))
		return err
	}
	return nil
}

// RecordDonation bumps the donor's lifetime counters and moves the
// eligibility window forward.
func (r *Repository) RecordDonation(ctx context.Context, donorID, units int, donatedAt time.Time, donationType domain.DonationType) error {
	query := `
		UPDATE users
		SET total_donations = total_donations + 1,
		    total_units = total_units + $1,
		    last_donation_date = $2,
		    last_donation_type = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, units, donatedAt, donationType, donorID)
	if err != nil {
		zap.L().Error("can't record donation for donor", zap.Error(err))
		return err
	}
	return nil
}
