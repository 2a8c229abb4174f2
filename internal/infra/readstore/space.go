package readstore

import (
	"context"

	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
	"space-booking/internal/usecase/queries"
)

type SpaceReadStore struct {
	db db.DBTX
}

func NewSpaceReadStore(db db.DBTX) *SpaceReadStore {
	return &SpaceReadStore{db: db}
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id int64) (*queries.SpaceView, error) {
	const query = `
		SELECT id, name, location, category, price_cents, capacity, occupied, policy, active
		FROM spaces
		WHERE id = $1`

	view, err := scanSpaceView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	return view, nil
}

func (r *SpaceReadStore) FindActive(ctx context.Context) ([]*queries.SpaceView, error) {
	const query = `
		SELECT id, name, location, category, price_cents, capacity, occupied, policy, active
		FROM spaces
		WHERE active
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active spaces", err)
	}
	defer rows.Close()

	views := make([]*queries.SpaceView, 0)
	for rows.Next() {
		view, err := scanSpaceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan space", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spaces", err)
	}

	return views, nil
}

func scanSpaceView(row rowScanner) (*queries.SpaceView, error) {
	var v queries.SpaceView
	err := row.Scan(&v.ID, &v.Name, &v.Location, &v.Category, &v.PriceCents, &v.Capacity, &v.Occupied, &v.Policy, &v.Active)
	if err != nil {
		return nil, err
	}
	v.Remaining = v.Capacity - v.Occupied
	return &v, nil
}
