package reservation

import (
	"space-booking/internal/domain/catalog"

	"space-booking/internal/pkg/errs"
)

var (
	ErrInvalidQuantity   = errs.New("item quantity must be positive")
	ErrUnknownItem       = errs.New("unknown catalog item")
	ErrInsufficientStock = errs.New("insufficient stock")
)

// ItemRequest is one requested catalog line as it arrives from the caller.
type ItemRequest struct {
	ItemID   int64
	Quantity int
}

// ConsolidateRequests merges lines referencing the same item by summing
// their quantities, preserving first-appearance order. A request split
// across two lines must not be able to claim more stock than a single
// merged line would.
func ConsolidateRequests(requests []ItemRequest) []ItemRequest {
	merged := make([]ItemRequest, 0, len(requests))
	index := make(map[int64]int, len(requests))

	for _, req := range requests {
		if at, ok := index[req.ItemID]; ok {
			merged[at].Quantity += req.Quantity
			continue
		}
		index[req.ItemID] = len(merged)
		merged = append(merged, req)
	}
	return merged
}

// BuildLines validates the consolidated requests against one consistent
// stock snapshot and prices each line. First failure wins; no line is
// partially applied. Returns the priced lines and the items total.
func BuildLines(requests []ItemRequest, items map[int64]*catalog.Item) ([]Line, Money, error) {
	requests = ConsolidateRequests(requests)

	lines := make([]Line, 0, len(requests))
	total := NewMoney(0)

	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, Money{}, errs.Mark(
				errs.Newf("item %d: quantity %d", req.ItemID, req.Quantity),
				ErrInvalidQuantity,
			)
		}

		item, ok := items[req.ItemID]
		if !ok {
			return nil, Money{}, errs.Mark(errs.Newf("item %d", req.ItemID), ErrUnknownItem)
		}

		if !item.CanFulfill(req.Quantity) {
			return nil, Money{}, errs.Mark(
				errs.Newf("item %q: requested %d, stock %d", item.Name(), req.Quantity, item.Stock()),
				ErrInsufficientStock,
			)
		}

		unit := NewMoney(item.PriceCents())
		subtotal := unit.Mul(req.Quantity)
		lines = append(lines, Line{
			itemID:    item.ID(),
			itemName:  item.Name(),
			quantity:  req.Quantity,
			unitPrice: unit,
			subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return lines, total, nil
}
