package reservation

import (
	"time"

	"space-booking/internal/pkg/errs"
)

var (
	ErrInvalidDate      = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStartTime = errs.New("invalid start time, expected HH:MM")
	ErrInvalidDuration  = errs.New("duration must be a positive number of hours")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Slot is the requested occupation window: a calendar day, a start time
// and a whole-hour duration. Both fields keep their lexical form; they are
// the canonical wire and storage representation.
type Slot struct {
	date          string
	startTime     string
	durationHours int
}

func NewSlot(date, startTime string, durationHours int) (Slot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Slot{}, errs.Mark(err, ErrInvalidDate)
	}
	if _, err := time.Parse(timeLayout, startTime); err != nil {
		return Slot{}, errs.Mark(err, ErrInvalidStartTime)
	}
	if durationHours <= 0 {
		return Slot{}, ErrInvalidDuration
	}

	return Slot{
		date:          date,
		startTime:     startTime,
		durationHours: durationHours,
	}, nil
}

func (s Slot) Date() string       { return s.date }
func (s Slot) StartTime() string  { return s.startTime }
func (s Slot) DurationHours() int { return s.durationHours }

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Mul(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// Line is a priced quantity of a catalog item attached to one reservation.
// Name and unit price are snapshots taken at booking time; later catalog
// changes never alter historical cost data.
type Line struct {
	itemID    int64
	itemName  string
	quantity  int
	unitPrice Money
	subtotal  Money
}

func ReconstructLine(itemID int64, itemName string, quantity int, unitPriceCents, subtotalCents int64) Line {
	return Line{
		itemID:    itemID,
		itemName:  itemName,
		quantity:  quantity,
		unitPrice: NewMoney(unitPriceCents),
		subtotal:  NewMoney(subtotalCents),
	}
}

func (l Line) ItemID() int64    { return l.itemID }
func (l Line) ItemName() string { return l.itemName }
func (l Line) Quantity() int    { return l.quantity }
func (l Line) UnitPrice() Money { return l.unitPrice }
func (l Line) Subtotal() Money  { return l.subtotal }
