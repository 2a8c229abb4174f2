package readstore

import (
	"context"

	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
	"space-booking/internal/usecase/shared"
)

// CommandReadStore serves the minimal lookups the command side needs for
// precondition checks. It runs against the pool or an open transaction,
// whichever the caller hands it.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(db db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: db}
}

func (r *CommandReadStore) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, name, contact, role
		FROM users
		WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Contact, &snap.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &snap, nil
}

func (r *CommandReadStore) SpaceByID(ctx context.Context, id int64) (*shared.SpaceSnapshot, error) {
	const query = `
		SELECT id, name, location, category, price_cents, capacity, occupied, policy, active
		FROM spaces
		WHERE id = $1`

	var snap shared.SpaceSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Location, &snap.Category,
		&snap.PriceCents, &snap.Capacity, &snap.Occupied, &snap.Policy, &snap.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	return &snap, nil
}

func (r *CommandReadStore) ActiveSlotTaken(ctx context.Context, spaceID int64, date, startTime string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE space_id = $1 AND date = $2 AND start_time = $3 AND status = 'active'
		)`

	var taken bool
	if err := r.db.QueryRow(ctx, query, spaceID, date, startTime).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}

	return taken, nil
}
