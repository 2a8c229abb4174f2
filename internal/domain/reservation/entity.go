package reservation

import (
	"time"

	"space-booking/internal/domain/space"
)

// Reservation is the aggregate created by a successful booking. Costs are
// computed once at creation and immutable thereafter; the only permitted
// mutation is the active -> cancelled transition.
type Reservation struct {
	id        int64
	userID    int64
	spaceID   int64
	spaceName string
	slot      Slot
	lines     []Line
	spaceCost Money
	itemsCost Money
	total     Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation assembles a booking against a space that already passed
// the availability gate. Lines must come from BuildLines so their prices
// and the items total were taken from the same stock snapshot.
func NewReservation(sp *space.Space, userID int64, slot Slot, lines []Line, itemsCost Money) *Reservation {
	spaceCost := NewMoney(sp.PriceCents())
	return &Reservation{
		userID:    userID,
		spaceID:   sp.ID(),
		spaceName: sp.Name(),
		slot:      slot,
		lines:     lines,
		spaceCost: spaceCost,
		itemsCost: itemsCost,
		total:     spaceCost.Add(itemsCost),
		status:    StatusActive,
	}
}

func ReconstructReservation(
	id, userID, spaceID int64,
	spaceName string,
	slot Slot,
	lines []Line,
	spaceCostCents, itemsCostCents, totalCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		spaceID:   spaceID,
		spaceName: spaceName,
		slot:      slot,
		lines:     lines,
		spaceCost: NewMoney(spaceCostCents),
		itemsCost: NewMoney(itemsCostCents),
		total:     NewMoney(totalCents),
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) UserID() int64       { return r.userID }
func (r *Reservation) SpaceID() int64      { return r.spaceID }
func (r *Reservation) SpaceName() string   { return r.spaceName }
func (r *Reservation) Slot() Slot          { return r.slot }
func (r *Reservation) Lines() []Line       { return r.lines }
func (r *Reservation) SpaceCost() Money    { return r.spaceCost }
func (r *Reservation) ItemsCost() Money    { return r.itemsCost }
func (r *Reservation) Total() Money        { return r.total }
func (r *Reservation) Status() Status      { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// Cancel flips the status and reports whether a transition happened.
// Cancelling an already-cancelled reservation is a no-op; callers use the
// return value to decide whether inventory must be restored, so a repeat
// cancellation can never restore twice.
func (r *Reservation) Cancel() bool {
	if r.status == StatusCancelled {
		return false
	}
	r.status = StatusCancelled
	return true
}
