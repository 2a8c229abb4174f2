package request

type ReservationItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}

type CreateReservationRequest struct {
	UserID        int64                    `json:"user_id" binding:"required"`
	SpaceID       int64                    `json:"space_id" binding:"required"`
	Date          string                   `json:"date" binding:"required"`
	StartTime     string                   `json:"start_time" binding:"required"`
	DurationHours int                      `json:"duration_hours" binding:"required"`
	Items         []ReservationItemRequest `json:"items,omitempty"`
}
