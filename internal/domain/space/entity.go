package space

import (
	"strings"

	"space-booking/internal/pkg/errs"
)

var (
	ErrEmptyName       = errs.New("space name cannot be empty")
	ErrNegativePrice   = errs.New("space price cannot be negative")
	ErrInvalidCapacity = errs.New("space capacity must be positive")
	ErrInvalidPolicy   = errs.New("invalid booking policy")
	ErrInactive        = errs.New("space is inactive")
	ErrFull            = errs.New("space has no remaining capacity")
)

// Space is a bookable venue. Occupancy is only meaningful for the
// capacity-shared policy; slot-exclusive spaces are gated by their active
// reservations instead.
type Space struct {
	id         int64
	name       string
	location   string
	category   string
	priceCents int64
	capacity   int
	occupied   int
	policy     Policy
	active     bool
}

func NewSpace(name, location, category string, priceCents int64, capacity int, policy Policy) (*Space, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !policy.IsValid() {
		return nil, ErrInvalidPolicy
	}

	return &Space{
		name:       name,
		location:   strings.TrimSpace(location),
		category:   strings.TrimSpace(category),
		priceCents: priceCents,
		capacity:   capacity,
		policy:     policy,
		active:     true,
	}, nil
}

func ReconstructSpace(id int64, name, location, category string, priceCents int64, capacity, occupied int, policy Policy, active bool) *Space {
	return &Space{
		id:         id,
		name:       name,
		location:   location,
		category:   category,
		priceCents: priceCents,
		capacity:   capacity,
		occupied:   occupied,
		policy:     policy,
		active:     active,
	}
}

func (s *Space) ID() int64         { return s.id }
func (s *Space) Name() string      { return s.name }
func (s *Space) Location() string  { return s.location }
func (s *Space) Category() string  { return s.category }
func (s *Space) PriceCents() int64 { return s.priceCents }
func (s *Space) Capacity() int     { return s.capacity }
func (s *Space) Occupied() int     { return s.occupied }
func (s *Space) Policy() Policy    { return s.policy }
func (s *Space) IsActive() bool    { return s.active }

func (s *Space) Remaining() int {
	return s.capacity - s.occupied
}

// EnsureBookable applies the policy-independent gates: the space must be
// active, and under the capacity policy it must have a free seat. Slot
// collisions are checked by the caller against existing reservations.
func (s *Space) EnsureBookable() error {
	if !s.active {
		return ErrInactive
	}
	if s.policy == PolicyCapacityShared && s.occupied >= s.capacity {
		return ErrFull
	}
	return nil
}
