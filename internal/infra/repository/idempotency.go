package repository

import (
	"context"
	"time"

	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
	"space-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key atomically; the ON CONFLICT no-op makes the
// second concurrent request observe claimed == false instead of an error.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, endpoint, request_hash, status, result_reservation_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var record shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&record.Key, &record.UserID, &record.Endpoint, &record.RequestHash,
		&record.Status, &record.ResultReservationID, &record.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}

	return &record, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key uuid.UUID, userID int64, reservationID int64) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_reservation_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, key, userID, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}
