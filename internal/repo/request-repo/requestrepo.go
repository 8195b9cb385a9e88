package requestrepo

import (
	"context"
	"errors"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestColumns = `id, recipient_id, patient_name, blood_group, urgency, units_required,
		units_fulfilled, required_by, hospital_name, hospital_address, hospital_city,
		status, priority_score, selected_donor_id, expires_at, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanRequest(row pgx.Row) (*domain.EmergencyRequest, error) {
	var req domain.EmergencyRequest
	err := row.Scan(
		&req.ID, &req.RecipientID, &req.PatientName, &req.BloodGroup, &req.Urgency,
		&req.UnitsRequired, &req.UnitsFulfilled, &req.RequiredBy, &req.HospitalName,
		&req.HospitalAddress, &req.HospitalCity, &req.Status, &req.PriorityScore,
		&req.SelectedDonorID, &req.ExpiresAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func scanResponse(row pgx.Row) (*domain.DonorResponse, error) {
	var resp domain.DonorResponse
	err := row.Scan(
		&resp.RequestID, &resp.DonorID, &resp.ResponseType, &resp.Notes,
		&resp.ScheduledTime, &resp.VerificationCode, &resp.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.EmergencyRequest) (*domain.EmergencyRequest, error) {
	query := `
        INSERT INTO emergency_requests (recipient_id, patient_name, blood_group, urgency,
            units_required, required_by, hospital_name, hospital_address, hospital_city,
            status, priority_score, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		req.RecipientID, req.PatientName, req.BloodGroup, req.Urgency,
		req.UnitsRequired, req.RequiredBy, req.HospitalName, req.HospitalAddress,
		req.HospitalCity, req.Status, req.PriorityScore, req.ExpiresAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save emergency request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.EmergencyRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM emergency_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find emergency request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// FindActive lists open requests sorted by priority, most urgent first.
func (r *Repository) FindActive(ctx context.Context, limit, offset int) ([]domain.EmergencyRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM emergency_requests
        WHERE status IN ('active', 'partially_fulfilled')
        ORDER BY priority_score DESC, required_by ASC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't get active requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.EmergencyRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// UpsertResponse records a donor's response to a request. A repeated
// response from the same donor overwrites type, notes, schedule and
// timestamp in place; the verification code from the first response is
// kept. Single statement, so two donors responding concurrently cannot
// corrupt the collection.
func (r *Repository) UpsertResponse(ctx context.Context, resp *domain.DonorResponse) (*domain.DonorResponse, error) {
	query := `
        INSERT INTO donor_responses (request_id, donor_id, response_type, notes, scheduled_time, verification_code, responded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (request_id, donor_id) DO UPDATE
        SET response_type = EXCLUDED.response_type,
            notes = EXCLUDED.notes,
            scheduled_time = EXCLUDED.scheduled_time,
            responded_at = EXCLUDED.responded_at
        RETURNING request_id, donor_id, response_type, notes, scheduled_time, verification_code, responded_at
    `
	saved, err := scanResponse(r.db.QueryRow(ctx, query,
		resp.RequestID, resp.DonorID, resp.ResponseType, resp.Notes,
		resp.ScheduledTime, resp.VerificationCode, resp.RespondedAt,
	))
	if err != nil {
		zap.L().Error("can't upsert donor response", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindResponses(ctx context.Context, requestID int) ([]domain.DonorResponse, error) {
	query := `
        SELECT request_id, donor_id, response_type, notes, scheduled_time, verification_code, responded_at
        FROM donor_responses
        WHERE request_id = $1
        ORDER BY responded_at ASC
    `
	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		zap.L().Error("can't get donor responses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var responses []domain.DonorResponse
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			zap.L().Error("can't scan response row", zap.Error(err))
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (r *Repository) FindResponse(ctx context.Context, requestID, donorID int) (*domain.DonorResponse, error) {
	query := `
        SELECT request_id, donor_id, response_type, notes, scheduled_time, verification_code, responded_at
        FROM donor_responses
        WHERE request_id = $1 AND donor_id = $2
    `
	resp, err := scanResponse(r.db.QueryRow(ctx, query, requestID, donorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donor response", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (r *Repository) FindResponseByCode(ctx context.Context, requestID int, code string) (*domain.DonorResponse, error) {
	query := `
        SELECT request_id, donor_id, response_type, notes, scheduled_time, verification_code, responded_at
        FROM donor_responses
        WHERE request_id = $1 AND verification_code = $2
    `
	resp, err := scanResponse(r.db.QueryRow(ctx, query, requestID, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donor response by code", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// SelectDonor sets the selected donor only when none is set yet.
// Returns false when another selection won the race.
func (r *Repository) SelectDonor(ctx context.Context, requestID, donorID int) (bool, error) {
	query := `
        UPDATE emergency_requests
        SET selected_donor_id = $1, updated_at = NOW()
        WHERE id = $2 AND selected_donor_id IS NULL
    `
	tag, err := r.db.Exec(ctx, query, donorID, requestID)
	if err != nil {
		zap.L().Error("can't select donor", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClearSelectedDonor undoes a selection that could not be completed.
// Conditional on the given donor still holding the slot.
func (r *Repository) ClearSelectedDonor(ctx context.Context, requestID, donorID int) error {
	query := `
        UPDATE emergency_requests
        SET selected_donor_id = NULL, updated_at = NOW()
        WHERE id = $1 AND selected_donor_id = $2
    `
	_, err := r.db.Exec(ctx, query, requestID, donorID)
	if err != nil {
		zap.L().Error("can't clear selected donor", zap.Error(err))
		return err
	}
	return nil
}

// UpdateUrgency writes the new urgency level together with the recomputed
// priority score in one statement.
func (r *Repository) UpdateUrgency(ctx context.Context, id int, urgency domain.Urgency, score int) error {
	query := `
        UPDATE emergency_requests
        SET urgency = $1, priority_score = $2, updated_at = NOW()
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, urgency, score, id)
	if err != nil {
		zap.L().Error("can't update request urgency", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error {
	query := `
        UPDATE emergency_requests
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update request status", zap.Error(err))
		return err
	}
	return nil
}

// ReconcileStatus moves an open request into a derived terminal status.
// Conditional on the request still being open, so it never clobbers an
// explicit transition that happened in between.
func (r *Repository) ReconcileStatus(ctx context.Context, id int, status domain.RequestStatus) (bool, error) {
	query := `
        UPDATE emergency_requests
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status IN ('active', 'partially_fulfilled')
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't reconcile request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// AddFulfilledUnits credits completed donation units to the request and
// advances its status to partially_fulfilled or fulfilled in the same
// statement.
func (r *Repository) AddFulfilledUnits(ctx context.Context, id, units int) (*domain.EmergencyRequest, error) {
	query := `
        UPDATE emergency_requests
        SET units_fulfilled = units_fulfilled + $1,
            status = CASE WHEN units_fulfilled + $1 >= units_required THEN 'fulfilled' ELSE 'partially_fulfilled' END,
            updated_at = NOW()
        WHERE id = $2 AND status IN ('active', 'partially_fulfilled')
        RETURNING ` + requestColumns + `
    `
	var updated *domain.EmergencyRequest
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := scanRequest(r.db.QueryRow(ctx, query, units, id))
		if err != nil {
			zap.L().Error("can't add fulfilled units", zap.Error(err))
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}
