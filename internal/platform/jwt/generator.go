package jwtmw

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims are the JWT claims issued by this service. Subject holds the user id.
type Claims struct {
	Kind TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// Generator signs tokens of one kind with a fixed lifetime.
type Generator struct {
	secret     []byte
	expiration time.Duration
	kind       TokenKind
}

// NewGenerator creates an access token generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{secret: []byte(secret), expiration: expiration, kind: KindAccess}
}

// NewRefreshGenerator creates a generator for long-lived refresh tokens.
func NewRefreshGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{secret: []byte(secret), expiration: expiration, kind: KindRefresh}
}

// GenerateToken creates a signed HS256 token whose subject is userID.
func (g *Generator) GenerateToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty subject")
	}

	now := time.Now()
	claims := Claims{
		Kind: g.kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Expiration returns the lifetime of generated tokens.
func (g *Generator) Expiration() time.Duration {
	return g.expiration
}

// Parse verifies tokenStr with secret and returns its claims.
// Only HMAC-signed tokens with a subject are accepted.
func Parse(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// LoadSecretFromEnv reads the signing secret, failing when it is unset.
func LoadSecretFromEnv() (string, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return "", fmt.Errorf("%s is not set", EnvKeyJWTSecret)
	}
	return secret, nil
}

// Config holds the signing secret and token lifetimes.
type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// LoadConfigFromEnv reads JWT_SECRET, JWT_ACCESS_TTL and JWT_REFRESH_TTL.
// Lifetimes use time.ParseDuration syntax and default to 15m and 168h.
func LoadConfigFromEnv() (Config, error) {
	secret, err := LoadSecretFromEnv()
	if err != nil {
		return Config{}, err
	}
	access, err := durationFromEnv("JWT_ACCESS_TTL", defaultAccessTTL)
	if err != nil {
		return Config{}, err
	}
	refresh, err := durationFromEnv("JWT_REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return Config{}, err
	}
	return Config{Secret: secret, AccessTTL: access, RefreshTTL: refresh}, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}
