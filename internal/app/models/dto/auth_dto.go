package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the caller's role so the
// front-end can route to the matching panel.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role" example:"teacher"`
}
