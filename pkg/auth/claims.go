package auth

import (
	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID string
	Tier   enums.Tier
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID string     `json:"user_id"`
	Tier   enums.Tier `json:"tier"`
	jwt.RegisteredClaims
}
