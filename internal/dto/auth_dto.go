package dto

// LoginRequest carries credentials for local login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// RegisterUserRequest defines the data required to register a local user.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// GoogleExchangeCodeRequest carries the authorization code from the OAuth
// redirect for server-side exchange.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
