package request

type RegisterUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Role    string `json:"role,omitempty"`
}
