package catalog

import (
	"strings"

	"space-booking/internal/pkg/errs"
)

var (
	ErrEmptyName     = errs.New("item name cannot be empty")
	ErrNegativePrice = errs.New("item price cannot be negative")
	ErrNegativeStock = errs.New("item stock cannot be negative")
)

// Item is a consumable add-on (meal or resource) with a shared stock
// counter decremented by reservations.
type Item struct {
	id         int64
	name       string
	category   string
	priceCents int64
	stock      int
}

func NewItem(name, category string, priceCents int64, stock int) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Item{
		name:       name,
		category:   strings.ToLower(strings.TrimSpace(category)),
		priceCents: priceCents,
		stock:      stock,
	}, nil
}

func ReconstructItem(id int64, name, category string, priceCents int64, stock int) *Item {
	return &Item{
		id:         id,
		name:       name,
		category:   category,
		priceCents: priceCents,
		stock:      stock,
	}
}

func (i *Item) ID() int64         { return i.id }
func (i *Item) Name() string      { return i.name }
func (i *Item) Category() string  { return i.category }
func (i *Item) PriceCents() int64 { return i.priceCents }
func (i *Item) Stock() int        { return i.stock }

func (i *Item) CanFulfill(quantity int) bool {
	return quantity > 0 && quantity <= i.stock
}
