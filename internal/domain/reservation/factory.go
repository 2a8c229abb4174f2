package reservation

import (
	"space-booking/internal/domain/catalog"
	"space-booking/internal/domain/space"
)

// Factory runs the full booking decision: availability gate, line pricing
// against one stock snapshot, cost computation. It is pure; the caller owns
// fetching the inputs and persisting the side effects atomically.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateReservation(
	sp *space.Space,
	userID int64,
	slot Slot,
	requests []ItemRequest,
	items map[int64]*catalog.Item,
	slotTaken bool,
) (*Reservation, error) {
	if err := CheckAvailability(sp, slotTaken); err != nil {
		return nil, err
	}

	lines, itemsCost, err := BuildLines(requests, items)
	if err != nil {
		return nil, err
	}

	return NewReservation(sp, userID, slot, lines, itemsCost), nil
}
