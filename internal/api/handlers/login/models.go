package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// SuccessResponse HTTP response model
type SuccessResponse struct {
	Success bool `json:"success"`
}
