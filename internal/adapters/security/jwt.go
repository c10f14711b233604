package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

// JWTSigner implements HS256 token signing/parsing for admin sessions.
// The key is held here so the application layer stays crypto-library
// agnostic; a missing key is rejected at construction, which makes an
// unconfigured signing secret a startup failure rather than a runtime one.
type JWTSigner struct {
	secret []byte
}

// NewJWTSigner builds a signer from the configured process-wide secret.
func NewJWTSigner(secret string) (*JWTSigner, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is required")
	}
	return &JWTSigner{secret: []byte(secret)}, nil
}

type adminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Sign(claims ports.AuthClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminJWTClaims{
		AdminID: claims.AdminID.String(),
		Email:   claims.Email,
		Role:    claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	return token.SignedString(s.secret)
}

func (s *JWTSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &adminJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.AuthClaims{}, domain.ErrTokenExpired
		}
		return ports.AuthClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*adminJWTClaims)
	if !ok || !parsed.Valid {
		return ports.AuthClaims{}, domain.ErrInvalidToken
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: parse admin_id", domain.ErrInvalidToken)
	}

	return ports.AuthClaims{
		AdminID:   adminID,
		Email:     claims.Email,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
