package repository

import (
	"context"
	"time"

	"space-booking/internal/domain/reservation"
	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const insertReservation = `
		INSERT INTO reservations (
			user_id, space_id, space_name, date, start_time, duration_hours,
			space_cost_cents, items_cost_cents, total_cents, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	slot := res.Slot()
	var id int64
	err := r.db.QueryRow(ctx, insertReservation,
		res.UserID(), res.SpaceID(), res.SpaceName(),
		slot.Date(), slot.StartTime(), slot.DurationHours(),
		res.SpaceCost().Cents(), res.ItemsCost().Cents(), res.Total().Cents(),
		string(res.Status()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("reservation references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	const insertLine = `
		INSERT INTO reservation_items (
			reservation_id, item_id, item_name, quantity, unit_price_cents, subtotal_cents
		)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, line := range res.Lines() {
		_, err := r.db.Exec(ctx, insertLine,
			id, line.ItemID(), line.ItemName(), line.Quantity(),
			line.UnitPrice().Cents(), line.Subtotal().Cents(),
		)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to create reservation line", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	const query = `
		SELECT id, user_id, space_id, space_name, date, start_time, duration_hours,
		       space_cost_cents, items_cost_cents, total_cents, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	var (
		resID, userID, spaceID                  int64
		spaceName, date, startTime              string
		durationHours                           int
		spaceCostCents, itemsCostCents, totalCents int64
		status                                  string
		createdAt, updatedAt                    time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &userID, &spaceID, &spaceName, &date, &startTime, &durationHours,
		&spaceCostCents, &itemsCostCents, &totalCents, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	slot, err := reservation.NewSlot(date, startTime, durationHours)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot is corrupt", err)
	}

	lines, err := r.loadLines(ctx, resID)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		resID, userID, spaceID, spaceName, slot, lines,
		spaceCostCents, itemsCostCents, totalCents,
		reservation.Status(status), createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) MarkCancelled(ctx context.Context, id int64) error {
	const query = `
		UPDATE reservations
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) loadLines(ctx context.Context, reservationID int64) ([]reservation.Line, error) {
	const query = `
		SELECT item_id, item_name, quantity, unit_price_cents, subtotal_cents
		FROM reservation_items
		WHERE reservation_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation lines", err)
	}
	defer rows.Close()

	var lines []reservation.Line
	for rows.Next() {
		var (
			itemID                     int64
			itemName                   string
			quantity                   int
			unitPriceCents, subtotalCents int64
		)
		if err := rows.Scan(&itemID, &itemName, &quantity, &unitPriceCents, &subtotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation line", err)
		}
		lines = append(lines, reservation.ReconstructLine(itemID, itemName, quantity, unitPriceCents, subtotalCents))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation lines", err)
	}

	return lines, nil
}
