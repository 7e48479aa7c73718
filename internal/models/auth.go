package models

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

const TokenTypeBearer = "bearer"

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"token_type"`
}

// TokenPair is what the auth service hands back after a successful
// register or login. The refresh token never leaves via the body.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type MessageResponse struct {
	Message string `json:"message"`
}
