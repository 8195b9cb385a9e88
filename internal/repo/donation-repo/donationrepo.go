package donationrepo

import (
	"context"
	"errors"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const donationColumns = `id, donor_id, recipient_id, request_id, donation_type, units, volume_ml,
		blood_group, status, scheduled_date, actual_date, completion_time, verification_code, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDonation(row pgx.Row) (*domain.DonationRecord, error) {
	var rec domain.DonationRecord
	err := row.Scan(
		&rec.ID, &rec.DonorID, &rec.RecipientID, &rec.RequestID, &rec.DonationType,
		&rec.Units, &rec.VolumeML, &rec.BloodGroup, &rec.Status, &rec.ScheduledDate,
		&rec.ActualDate, &rec.CompletionTime, &rec.VerificationCode, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) Create(ctx context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error) {
	query := `
        INSERT INTO donation_records (donor_id, recipient_id, request_id, donation_type,
            units, volume_ml, blood_group, status, scheduled_date, verification_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		rec.DonorID, rec.RecipientID, rec.RequestID, rec.DonationType,
		rec.Units, rec.VolumeML, rec.BloodGroup, rec.Status, rec.ScheduledDate,
		rec.VerificationCode,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		zap.L().Error("can't save donation record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.DonationRecord, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donation_records
        WHERE id = $1
    `
	rec, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) FindByVerificationCode(ctx context.Context, code string) (*domain.DonationRecord, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donation_records
        WHERE verification_code = $1
    `
	rec, err := scanDonation(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation by verification code", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) FindByDonorID(ctx context.Context, donorID int) ([]domain.DonationRecord, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donation_records
        WHERE donor_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, donorID)
	if err != nil {
		zap.L().Error("can't get donations for donor", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.DonationRecord
	for rows.Next() {
		rec, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, rec *domain.DonationRecord) error {
	query := `
        UPDATE donation_records
        SET status = $1, actual_date = $2, completion_time = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, rec.Status, rec.ActualDate, rec.CompletionTime, rec.ID)
	if err != nil {
		zap.L().Error("can't update donation status", zap.Error(err))
		return err
	}
	return nil
}

// GetDonorStats aggregates a donor's donation history in one query.
func (r *Repository) GetDonorStats(ctx context.Context, donorID int) (*domain.DonorStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'completed'),
               COALESCE(SUM(units) FILTER (WHERE status = 'completed'), 0)
        FROM donation_records
        WHERE donor_id = $1
    `
	var stats domain.DonorStats
	err := r.db.QueryRow(ctx, query, donorID).Scan(
		&stats.TotalDonations, &stats.CompletedDonations, &stats.TotalUnits,
	)
	if err != nil {
		zap.L().Error("can't get donor stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
