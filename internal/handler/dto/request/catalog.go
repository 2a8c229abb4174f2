package request

type AddItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category,omitempty"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Stock      int    `json:"stock" binding:"min=0"`
}

type RestockItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
