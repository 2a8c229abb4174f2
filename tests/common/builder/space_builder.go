//go:build unit || e2e

package builder

import (
	domspace "space-booking/internal/domain/space"
	reqdto "space-booking/internal/handler/dto/request"
	"space-booking/internal/usecase/queries"
)

type SpaceBuilder struct {
	ID         int64
	Name       string
	Location   string
	Category   string
	PriceCents int64
	Capacity   int
	Occupied   int
	Policy     domspace.Policy
	Active     bool
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		ID:         1,
		Name:       "Main Hall",
		Location:   "Building A",
		Category:   "hall",
		PriceCents: 5000,
		Capacity:   10,
		Occupied:   0,
		Policy:     domspace.PolicyCapacityShared,
		Active:     true,
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(b)
	return b
}

func (b *SpaceBuilder) WithName(name string) *SpaceBuilder {
	b.Name = name
	return b
}

func (b *SpaceBuilder) WithPriceCents(cents int64) *SpaceBuilder {
	b.PriceCents = cents
	return b
}

func (b *SpaceBuilder) WithCapacity(capacity int) *SpaceBuilder {
	b.Capacity = capacity
	return b
}

func (b *SpaceBuilder) WithOccupied(occupied int) *SpaceBuilder {
	b.Occupied = occupied
	return b
}

func (b *SpaceBuilder) WithPolicy(policy domspace.Policy) *SpaceBuilder {
	b.Policy = policy
	return b
}

func (b *SpaceBuilder) AsInactive() *SpaceBuilder {
	b.Active = false
	return b
}

func (b *SpaceBuilder) AsFull() *SpaceBuilder {
	b.Occupied = b.Capacity
	return b
}

// BuildDomain validates through the constructor; occupied and active are
// ignored because a new space always starts empty and open.
func (b *SpaceBuilder) BuildDomain() (*domspace.Space, error) {
	return domspace.NewSpace(b.Name, b.Location, b.Category, b.PriceCents, b.Capacity, b.Policy)
}

// BuildStored reconstructs a persisted space with the builder's counters.
func (b *SpaceBuilder) BuildStored() *domspace.Space {
	return domspace.ReconstructSpace(b.ID, b.Name, b.Location, b.Category, b.PriceCents, b.Capacity, b.Occupied, b.Policy, b.Active)
}

func (b *SpaceBuilder) BuildCreateRequestDTO() reqdto.CreateSpaceRequest {
	return reqdto.CreateSpaceRequest{
		Name:       b.Name,
		Location:   b.Location,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Capacity:   b.Capacity,
		Policy:     string(b.Policy),
	}
}

func (b *SpaceBuilder) BuildView() *queries.SpaceView {
	return &queries.SpaceView{
		ID:         b.ID,
		Name:       b.Name,
		Location:   b.Location,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Capacity:   b.Capacity,
		Occupied:   b.Occupied,
		Remaining:  b.Capacity - b.Occupied,
		Policy:     string(b.Policy),
		Active:     b.Active,
	}
}
