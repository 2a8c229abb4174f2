package response

import (
	"space-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(views))
	for i, v := range views {
		resps[i] = FromItemView(v)
	}
	return resps
}
