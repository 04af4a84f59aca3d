package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPayload is the user-derived data signed into both tokens of a pair.
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
	Login  string
}

// TokenPair is a short-lived access token plus a longer-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Email string `json:"email"`
	Login string `json:"login"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for generating and validating JWTs.
// Access and refresh tokens are signed with distinct secrets and lifetimes,
// so a token of one type never validates as the other.
type TokenService interface {
	// CreateTokenPair signs an access token and a refresh token for payload.
	CreateTokenPair(payload TokenPayload) (TokenPair, error)

	// ValidateAccessToken verifies signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
