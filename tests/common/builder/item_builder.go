//go:build unit || e2e

package builder

import (
	domcatalog "space-booking/internal/domain/catalog"
	reqdto "space-booking/internal/handler/dto/request"
	"space-booking/internal/usecase/queries"
)

type ItemBuilder struct {
	ID         int64
	Name       string
	Category   string
	PriceCents int64
	Stock      int
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:         1,
		Name:       "Coffee",
		Category:   "drinks",
		PriceCents: 200,
		Stock:      20,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithCategory(category string) *ItemBuilder {
	b.Category = category
	return b
}

func (b *ItemBuilder) WithPriceCents(cents int64) *ItemBuilder {
	b.PriceCents = cents
	return b
}

func (b *ItemBuilder) WithStock(stock int) *ItemBuilder {
	b.Stock = stock
	return b
}

func (b *ItemBuilder) BuildDomain() (*domcatalog.Item, error) {
	return domcatalog.NewItem(b.Name, b.Category, b.PriceCents, b.Stock)
}

// BuildStored reconstructs a persisted item with the builder's id.
func (b *ItemBuilder) BuildStored() *domcatalog.Item {
	return domcatalog.ReconstructItem(b.ID, b.Name, b.Category, b.PriceCents, b.Stock)
}

func (b *ItemBuilder) BuildAddRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		Name:       b.Name,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Stock:      b.Stock,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:         b.ID,
		Name:       b.Name,
		Category:   b.Category,
		PriceCents: b.PriceCents,
		Stock:      b.Stock,
	}
}
