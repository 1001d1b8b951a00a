package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the access-token payload. The member id travels in the
// registered subject claim as a decimal string.
type AppClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
