package response

import (
	"time"

	"space-booking/internal/domain/reservation"
	"space-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationLineResponse struct {
	ItemID         int64  `json:"item_id"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

type ReservationResponse struct {
	ID             int64                     `json:"id"`
	UserID         int64                     `json:"user_id"`
	UserName       string                    `json:"user_name,omitempty"`
	SpaceID        int64                     `json:"space_id"`
	SpaceName      string                    `json:"space_name"`
	Date           string                    `json:"date"`
	StartTime      string                    `json:"start_time"`
	DurationHours  int                       `json:"duration_hours"`
	Lines          []ReservationLineResponse `json:"lines"`
	SpaceCostCents int64                     `json:"space_cost_cents"`
	ItemsCostCents int64                     `json:"items_cost_cents"`
	TotalCents     int64                     `json:"total_cents"`
	Status         string                    `json:"status"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

type UserTotalsResponse struct {
	UserID          int64                  `json:"user_id"`
	Reservations    []*ReservationResponse `json:"reservations"`
	GrandTotalCents int64                  `json:"grand_total_cents"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resps := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resps[i] = FromReservationView(v)
	}
	return resps
}

func FromUserTotalsView(view *queries.UserTotalsView) *UserTotalsResponse {
	return &UserTotalsResponse{
		UserID:          view.UserID,
		Reservations:    FromReservationViews(view.Reservations),
		GrandTotalCents: view.GrandTotalCents,
	}
}

// FromReservationEntity maps the write-side aggregate; the user name is
// not part of the aggregate, so the field stays empty.
func FromReservationEntity(res *reservation.Reservation) *ReservationResponse {
	lines := make([]ReservationLineResponse, 0, len(res.Lines()))
	for _, l := range res.Lines() {
		lines = append(lines, ReservationLineResponse{
			ItemID:         l.ItemID(),
			ItemName:       l.ItemName(),
			Quantity:       l.Quantity(),
			UnitPriceCents: l.UnitPrice().Cents(),
			SubtotalCents:  l.Subtotal().Cents(),
		})
	}

	return &ReservationResponse{
		ID:             res.ID(),
		UserID:         res.UserID(),
		SpaceID:        res.SpaceID(),
		SpaceName:      res.SpaceName(),
		Date:           res.Slot().Date(),
		StartTime:      res.Slot().StartTime(),
		DurationHours:  res.Slot().DurationHours(),
		Lines:          lines,
		SpaceCostCents: res.SpaceCost().Cents(),
		ItemsCostCents: res.ItemsCost().Cents(),
		TotalCents:     res.Total().Cents(),
		Status:         string(res.Status()),
		CreatedAt:      res.CreatedAt(),
		UpdatedAt:      res.UpdatedAt(),
	}
}
