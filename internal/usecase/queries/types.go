package queries

import "time"

// Read models (DTO for the read side). Cost fields mirror the stored
// snapshots; nothing here is ever recomputed from live prices.

type ReservationLineView struct {
	ItemID         int64  `json:"item_id"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

type ReservationView struct {
	ID             int64                 `json:"id"`
	UserID         int64                 `json:"user_id"`
	UserName       string                `json:"user_name"`
	SpaceID        int64                 `json:"space_id"`
	SpaceName      string                `json:"space_name"`
	Date           string                `json:"date"`
	StartTime      string                `json:"start_time"`
	DurationHours  int                   `json:"duration_hours"`
	Lines          []ReservationLineView `json:"lines"`
	SpaceCostCents int64                 `json:"space_cost_cents"`
	ItemsCostCents int64                 `json:"items_cost_cents"`
	TotalCents     int64                 `json:"total_cents"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type UserTotalsView struct {
	UserID          int64              `json:"user_id"`
	Reservations    []*ReservationView `json:"reservations"`
	GrandTotalCents int64              `json:"grand_total_cents"`
}

type SpaceView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Capacity   int    `json:"capacity"`
	Occupied   int    `json:"occupied"`
	Remaining  int    `json:"remaining"`
	Policy     string `json:"policy"`
	Active     bool   `json:"active"`
}

type ItemView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

type UserView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}
