package dto

// RegisterRequest is the request body for local registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the request body for local login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// ResetPasswordRequest is the request body for a password reset.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// UserResponse is the public view of a credential.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}

// AuthResponse is returned on every successful authentication event.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// SessionResponse reports whether a token is currently authenticated.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// MessageResponse is a generic detail message.
type MessageResponse struct {
	Detail string `json:"detail"`
}
