//go:build unit || e2e

package builder

import (
	"time"

	domcatalog "space-booking/internal/domain/catalog"
	domreservation "space-booking/internal/domain/reservation"
	reqdto "space-booking/internal/handler/dto/request"
	"space-booking/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID            int64
	UserID        int64
	UserName      string
	Space         *SpaceBuilder
	Date          string
	StartTime     string
	DurationHours int
	Items         []domreservation.ItemRequest
	Catalog       []*ItemBuilder
	SlotTaken     bool
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            1,
		UserID:        1,
		UserName:      "Alice Example",
		Space:         NewSpaceBuilder(),
		Date:          "2026-10-01",
		StartTime:     "14:00",
		DurationHours: 2,
		Items:         []domreservation.ItemRequest{{ItemID: 1, Quantity: 3}},
		Catalog:       []*ItemBuilder{NewItemBuilder()},
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithStartTime(startTime string) *ReservationBuilder {
	b.StartTime = startTime
	return b
}

func (b *ReservationBuilder) WithDurationHours(hours int) *ReservationBuilder {
	b.DurationHours = hours
	return b
}

func (b *ReservationBuilder) WithItems(items ...domreservation.ItemRequest) *ReservationBuilder {
	b.Items = items
	return b
}

func (b *ReservationBuilder) WithCatalog(items ...*ItemBuilder) *ReservationBuilder {
	b.Catalog = items
	return b
}

func (b *ReservationBuilder) WithSlotTaken() *ReservationBuilder {
	b.SlotTaken = true
	return b
}

func (b *ReservationBuilder) CatalogMap() map[int64]*domcatalog.Item {
	items := make(map[int64]*domcatalog.Item, len(b.Catalog))
	for _, ib := range b.Catalog {
		items[ib.ID] = ib.BuildStored()
	}
	return items
}

// BuildDomain runs the whole booking decision through the factory.
func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	slot, err := domreservation.NewSlot(b.Date, b.StartTime, b.DurationHours)
	if err != nil {
		return nil, err
	}
	factory := domreservation.NewFactory()
	return factory.CreateReservation(b.Space.BuildStored(), b.UserID, slot, b.Items, b.CatalogMap(), b.SlotTaken)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	items := make([]reqdto.ReservationItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.ReservationItemRequest{ItemID: it.ItemID, Quantity: it.Quantity}
	}
	return reqdto.CreateReservationRequest{
		UserID:        b.UserID,
		SpaceID:       b.Space.ID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		Items:         items,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()

	lines := make([]queries.ReservationLineView, 0, len(b.Items))
	var itemsCost int64
	catalog := b.CatalogMap()
	for _, it := range b.Items {
		item, ok := catalog[it.ItemID]
		if !ok {
			continue
		}
		subtotal := item.PriceCents() * int64(it.Quantity)
		itemsCost += subtotal
		lines = append(lines, queries.ReservationLineView{
			ItemID:         it.ItemID,
			ItemName:       item.Name(),
			Quantity:       it.Quantity,
			UnitPriceCents: item.PriceCents(),
			SubtotalCents:  subtotal,
		})
	}

	return &queries.ReservationView{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       b.UserName,
		SpaceID:        b.Space.ID,
		SpaceName:      b.Space.Name,
		Date:           b.Date,
		StartTime:      b.StartTime,
		DurationHours:  b.DurationHours,
		Lines:          lines,
		SpaceCostCents: b.Space.PriceCents,
		ItemsCostCents: itemsCost,
		TotalCents:     b.Space.PriceCents + itemsCost,
		Status:         string(domreservation.StatusActive),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
