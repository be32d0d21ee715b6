package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenInvalid  = errors.New("invalid token")
	ErrSecretMissing = errors.New("jwt secret is not configured")
)

// TokenClaims are carried by both access and refresh tokens; Type tells them apart.
type TokenClaims struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a UUID.
func (c *TokenClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg JWTConfig) *TokenIssuer {
	accessTTL := time.Duration(cfg.AccessTTLMinutes) * time.Minute
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := time.Duration(cfg.RefreshTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenIssuer{
		secret:     []byte(cfg.Secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (t *TokenIssuer) RefreshTTL() time.Duration {
	return t.refreshTTL
}

func (t *TokenIssuer) AccessTTL() time.Duration {
	return t.accessTTL
}

// IssueAccess signs a short-lived access token for the user.
func (t *TokenIssuer) IssueAccess(userID uuid.UUID, email, username string) (string, error) {
	now := t.now()
	claims := TokenClaims{
		Email:    email,
		Username: username,
		Type:     TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.accessTTL)),
		},
	}
	return t.sign(claims)
}

// IssueRefresh signs a refresh token whose jti is the stored session token.
func (t *TokenIssuer) IssueRefresh(userID uuid.UUID, sessionToken string, expiresAt time.Time) (string, error) {
	claims := TokenClaims{
		Type: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionToken,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(t.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return t.sign(claims)
}

func (t *TokenIssuer) sign(claims TokenClaims) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrSecretMissing
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and checks the token type.
// An issuer without a secret rejects everything; an empty HMAC key is forgeable.
func (t *TokenIssuer) Parse(raw, wantType string) (*TokenClaims, error) {
	if len(t.secret) == 0 {
		return nil, ErrTokenInvalid
	}
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type != wantType {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
