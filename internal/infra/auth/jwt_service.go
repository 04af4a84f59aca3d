package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"account/config"
	"account/internal/domain/service"
	"account/internal/errors"
)

var (
	// ErrInvalidTokenType is returned when a well-signed token carries the wrong "typ" claim.
	ErrInvalidTokenType = errors.New("invalid token type")
	// ErrMissingSubject is returned for tokens without a parseable user id.
	ErrMissingSubject = errors.New("token subject is not a user id")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte           // Secret key for signing access tokens.
	refreshSecret []byte           // Secret key for signing refresh tokens.
	accessTTL     time.Duration    // Time-to-live for access tokens.
	refreshTTL    time.Duration    // Time-to-live for refresh tokens.
	now           func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	jwtCfg := cfg.JWT
	if jwtCfg.AccessSecret == "" || jwtCfg.RefreshSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if jwtCfg.AccessSecret == jwtCfg.RefreshSecret {
		return nil, errors.New("jwt access and refresh secrets must differ")
	}
	if jwtCfg.AccessTokenTTL <= 0 || jwtCfg.RefreshTokenTTL <= 0 {
		return nil, errors.New("jwt token lifetimes must be positive")
	}

	return &jwtService{
		accessSecret:  []byte(jwtCfg.AccessSecret),
		refreshSecret: []byte(jwtCfg.RefreshSecret),
		accessTTL:     jwtCfg.AccessTokenTTL,
		refreshTTL:    jwtCfg.RefreshTokenTTL,
		now:           time.Now,
	}, nil
}

// CreateTokenPair signs an access token and a refresh token with the same payload.
func (s *jwtService) CreateTokenPair(payload service.TokenPayload) (service.TokenPair, error) {
	accessToken, err := s.generateToken(payload, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return service.TokenPair{}, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.generateToken(payload, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return service.TokenPair{}, errors.Wrap(err, "sign refresh token")
	}

	return service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(payload service.TokenPayload, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now().UTC()
	claims := service.Claims{
		Email: payload.Email,
		Login: payload.Login,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

func (s *jwtService) validate(tokenString, tokenType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != tokenType {
		return nil, errors.WithStack(ErrInvalidTokenType)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, errors.WithStack(ErrMissingSubject)
	}

	return claims, nil
}
