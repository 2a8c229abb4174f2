package reservation

import (
	"space-booking/internal/domain/space"

	"space-booking/internal/pkg/errs"
)

var ErrSlotTaken = errs.New("slot already reserved")

// CheckAvailability is the read-only booking gate. slotTaken reports
// whether an active reservation already holds the same (space, date,
// start time) triple; it is only consulted for slot-exclusive spaces.
func CheckAvailability(sp *space.Space, slotTaken bool) error {
	if err := sp.EnsureBookable(); err != nil {
		return err
	}
	if sp.Policy() == space.PolicySlotExclusive && slotTaken {
		return ErrSlotTaken
	}
	return nil
}
