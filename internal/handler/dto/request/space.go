package request

type CreateSpaceRequest struct {
	Name       string `json:"name" binding:"required"`
	Location   string `json:"location,omitempty"`
	Category   string `json:"category,omitempty"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	// Zero means "use the configured default capacity".
	Capacity int    `json:"capacity,omitempty" binding:"min=0"`
	Policy   string `json:"policy,omitempty"`
}
