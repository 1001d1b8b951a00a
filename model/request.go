// file: model/request.go

package model

// EmailLoginRequest defines the payload for email/password authentication.
type EmailLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest defines the payload for refreshing an access token.
type TokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
