package dto

// AuthUserRequest is the body of POST /auth/create-access-token.
type AuthUserRequest struct {
	ID          string            `json:"id" binding:"required" validate:"required"`
	Type        string            `json:"type" binding:"required" validate:"required,oneof=user organization"`
	Name        string            `json:"name,omitempty"`
	IsUserValid *bool             `json:"is_user_valid,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}

// TokenResponse carries the issued tokens. RefreshToken is empty when the
// caller is not a verified user.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// RefreshTokenRequest is the body of POST /auth/refresh-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
