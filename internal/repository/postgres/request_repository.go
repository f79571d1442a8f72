package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

const requestColumns = `id, from_uid, to_uid, from_name, from_photo, status, explanation, icebreakers, created_at, updated_at`

type requestRow struct {
	domain.RoommateRequest
	Icebreakers pq.StringArray `db:"icebreakers"`
}

func (r *requestRow) toDomain() *domain.RoommateRequest {
	req := r.RoommateRequest
	req.Icebreakers = []string(r.Icebreakers)
	return &req
}

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Save(ctx context.Context, req *domain.RoommateRequest) error {
	query := `
		INSERT INTO roommate_requests (id, from_uid, to_uid, from_name, from_photo, status, explanation, icebreakers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			from_name = EXCLUDED.from_name,
			from_photo = EXCLUDED.from_photo,
			status = EXCLUDED.status,
			explanation = EXCLUDED.explanation,
			icebreakers = EXCLUDED.icebreakers,
			created_at = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		req.ID, req.FromUID, req.ToUID, req.FromName, req.FromPhoto, req.Status,
		req.Explanation, pq.Array(req.Icebreakers),
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.RoommateRequest, error) {
	var row requestRow
	query := `SELECT ` + requestColumns + ` FROM roommate_requests WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *requestRepository) GetBetween(ctx context.Context, uid1, uid2 string) (*domain.RoommateRequest, error) {
	var row requestRow
	query := `
		SELECT ` + requestColumns + `
		FROM roommate_requests
		WHERE id IN ($1, $2)
		ORDER BY
			CASE status WHEN 'accepted' THEN 0 WHEN 'pending' THEN 1 ELSE 2 END,
			(id = $1) DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &row, query, domain.RequestID(uid1, uid2), domain.RequestID(uid2, uid1))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *requestRepository) ListSent(ctx context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error) {
	return r.list(ctx, `from_uid = $1 AND status = $2`, uid, status)
}

func (r *requestRepository) ListReceived(ctx context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error) {
	return r.list(ctx, `to_uid = $1 AND status = $2`, uid, status)
}

func (r *requestRepository) list(ctx context.Context, where string, args ...interface{}) ([]*domain.RoommateRequest, error) {
	var rows []requestRow
	query := `SELECT ` + requestColumns + ` FROM roommate_requests WHERE ` + where + ` ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	reqs := make([]*domain.RoommateRequest, 0, len(rows))
	for i := range rows {
		reqs = append(reqs, rows[i].toDomain())
	}
	return reqs, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	query := `UPDATE roommate_requests SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) UpdateAIFields(ctx context.Context, id string, explanation string, icebreakers []string) error {
	query := `
		UPDATE roommate_requests
		SET explanation = $1, icebreakers = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, explanation, pq.Array(icebreakers), id)
	return err
}
