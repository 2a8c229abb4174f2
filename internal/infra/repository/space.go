package repository

import (
	"context"

	"space-booking/internal/domain/space"
	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
)

type SpaceRepository struct {
	db db.DBTX
}

func NewSpaceRepository(db db.DBTX) *SpaceRepository {
	return &SpaceRepository{db: db}
}

func (r *SpaceRepository) Create(ctx context.Context, sp *space.Space) (int64, error) {
	const query = `
		INSERT INTO spaces (name, location, category, price_cents, capacity, policy, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		sp.Name(), sp.Location(), sp.Category(), sp.PriceCents(), sp.Capacity(), string(sp.Policy()), sp.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create space", err)
	}

	return id, nil
}

func (r *SpaceRepository) GetForUpdate(ctx context.Context, id int64) (*space.Space, error) {
	const query = `
		SELECT id, name, location, category, price_cents, capacity, occupied, policy, active
		FROM spaces
		WHERE id = $1
		FOR UPDATE`

	var (
		spaceID             int64
		name, loc, category string
		priceCents          int64
		capacity, occupied  int
		policy              string
		active              bool
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&spaceID, &name, &loc, &category, &priceCents, &capacity, &occupied, &policy, &active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock space", err)
	}

	return space.ReconstructSpace(spaceID, name, loc, category, priceCents, capacity, occupied, space.Policy(policy), active), nil
}

// OccupyOne increments the occupancy counter only while a seat remains;
// losing the guard means the space filled up under a concurrent booking.
func (r *SpaceRepository) OccupyOne(ctx context.Context, id int64) error {
	const query = `
		UPDATE spaces
		SET occupied = occupied + 1
		WHERE id = $1 AND active AND occupied < capacity`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to occupy space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space has no remaining capacity", nil, infra.KindConflict)
	}

	return nil
}

func (r *SpaceRepository) ReleaseOne(ctx context.Context, id int64) error {
	const query = `
		UPDATE spaces
		SET occupied = occupied - 1
		WHERE id = $1 AND occupied > 0`

	// A counter already at zero has nothing to release.
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to release space", err)
	}

	return nil
}

func (r *SpaceRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE spaces SET active = FALSE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}

	return nil
}
