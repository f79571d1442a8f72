package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// TokenService signs and verifies the HS256 bearer tokens shared with the
// hosted sign-in provider. The subject claim carries the user ID.
type TokenService struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		expiry: time.Duration(cfg.ExpiryMin) * time.Minute,
	}
}

// Issue mints a token for uid. Used by tooling and tests; production
// tokens come from the sign-in provider.
func (s *TokenService) Issue(uid string) (string, time.Time, error) {
	if uid == "" {
		return "", time.Time{}, domain.ErrInvalidInput
	}
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uid,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, expiry and issuer and returns the user ID.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
