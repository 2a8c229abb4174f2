package response

import (
	"space-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	resps := make([]*UserResponse, len(views))
	for i, v := range views {
		resps[i] = FromUserView(v)
	}
	return resps
}
