package auth

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTLSeconds = 3600

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenIssuer signs HS256 access tokens.
//
// Env vars:
//   - JWT_SECRET (required)
//   - JWT_TTL_SECONDS (default: 3600)

type JWTTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenIssuer = (*JWTTokenIssuer)(nil)

func NewJWTTokenIssuerFromEnv() (*JWTTokenIssuer, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[auth][issuer] missing JWT_SECRET")
		return nil, ErrMissingJWTSecret
	}

	ttlSeconds := defaultTokenTTLSeconds
	if v := os.Getenv("JWT_TTL_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_TTL_SECONDS %q", v)
		}
		ttlSeconds = parsed
	}
	return NewJWTTokenIssuer([]byte(secret), time.Duration(ttlSeconds)*time.Second), nil
}

func NewJWTTokenIssuer(secret []byte, ttl time.Duration) *JWTTokenIssuer {
	return &JWTTokenIssuer{secret: secret, ttl: ttl}
}

func (i *JWTTokenIssuer) Issue(user entities.User) (string, int64, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", 0, err
	}
	return token, int64(i.ttl.Seconds()), nil
}

func (i *JWTTokenIssuer) Verify(token string) (interfaces.TokenClaims, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return interfaces.TokenClaims{
		UserID: claims.Subject,
		Role:   entities.UserRole(claims.Role),
	}, nil
}
