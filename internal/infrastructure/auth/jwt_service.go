// Package auth implements the token service with signed JWTs. The
// token replaces the original's server-side session: it carries the
// acting user's id and level between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
)

// Claims are the JWT claims carried by a session token.
type Claims struct {
	UserID string             `json:"user_id"`
	Level  entities.UserLevel `json:"user_level"`
	jwt.RegisteredClaims
}

// JWTService implements ports.TokenService with HMAC-SHA256 signing.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a token service. The expiry string is a Go
// duration such as "24h"; anything unparsable falls back to 24h.
func NewJWTService(secret, expiry string) *JWTService {
	d, err := time.ParseDuration(expiry)
	if err != nil || d <= 0 {
		d = 24 * time.Hour
	}
	return &JWTService{secret: []byte(secret), expiry: d}
}

// Issue signs a token for the actor.
func (s *JWTService) Issue(actor domain.Actor) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: actor.UserID,
		Level:  actor.Level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the actor it carries.
func (s *JWTService) Parse(tokenString string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Actor{}, errors.Join(domainerrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return domain.Actor{}, domainerrors.ErrUnauthorized
	}

	return domain.Actor{UserID: claims.UserID, Level: claims.Level}, nil
}
