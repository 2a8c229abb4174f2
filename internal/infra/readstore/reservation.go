package readstore

import (
	"context"

	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
	"space-booking/internal/usecase/queries"
)

const reservationColumns = `
	r.id, r.user_id, u.name, r.space_id, r.space_name,
	r.date, r.start_time, r.duration_hours,
	r.space_cost_cents, r.items_cost_cents, r.total_cents,
	r.status, r.created_at, r.updated_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	if err := r.attachLines(ctx, []*queries.ReservationView{view}); err != nil {
		return nil, err
	}

	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.id`

	return r.findMany(ctx, query)
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID int64) ([]*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.id`

	return r.findMany(ctx, query, userID)
}

func (r *ReservationReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}

	if err := r.attachLines(ctx, views); err != nil {
		return nil, err
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.SpaceID, &v.SpaceName,
		&v.Date, &v.StartTime, &v.DurationHours,
		&v.SpaceCostCents, &v.ItemsCostCents, &v.TotalCents,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Lines = []queries.ReservationLineView{}
	return &v, nil
}

// attachLines loads every line for the given reservations in one query and
// groups them in memory, avoiding a per-reservation round trip.
func (r *ReservationReadStore) attachLines(ctx context.Context, views []*queries.ReservationView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]int64, len(views))
	byID := make(map[int64]*queries.ReservationView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	const query = `
		SELECT reservation_id, item_id, item_name, quantity, unit_price_cents, subtotal_cents
		FROM reservation_items
		WHERE reservation_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load reservation lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservationID int64
			line          queries.ReservationLineView
		)
		if err := rows.Scan(&reservationID, &line.ItemID, &line.ItemName, &line.Quantity, &line.UnitPriceCents, &line.SubtotalCents); err != nil {
			return infra.WrapRepoErr("failed to scan reservation line", err)
		}
		if view, ok := byID[reservationID]; ok {
			view.Lines = append(view.Lines, line)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read reservation lines", err)
	}

	return nil
}
