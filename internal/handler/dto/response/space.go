package response

import (
	"space-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SpaceResponse struct {
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

func FromSpaceView(view *queries.SpaceView) *SpaceResponse {
	var resp SpaceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSpaceViews(views []*queries.SpaceView) []*SpaceResponse {
	resps := make([]*SpaceResponse, len(views))
	for i, v := range views {
		resps[i] = FromSpaceView(v)
	}
	return resps
}
