package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity encoded in an access token.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
