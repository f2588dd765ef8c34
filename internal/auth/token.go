package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultTokenTTL   = 30 * time.Minute
	userSubjectPrefix = "user:"
)

// Claims is the claim set embedded into a bearer token. UserID is present
// only on user-class tokens.
type Claims struct {
	UserID int64 `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// Issuer mints and validates signed time-bounded bearer tokens using HS256.
// The signing secret and validity window are fixed at construction; changing
// the secret invalidates everything issued before.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// IssuerOption configures Issuer behavior.
type IssuerOption func(*Issuer)

// WithTTL overrides the token validity window.
func WithTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) {
		if ttl > 0 {
			i.ttl = ttl
		}
	}
}

// WithIssuer sets the issuer claim stamped into minted tokens.
func WithIssuer(name string) IssuerOption {
	return func(i *Issuer) {
		i.issuer = strings.TrimSpace(name)
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) IssuerOption {
	return func(i *Issuer) {
		if fn != nil {
			i.now = fn
		}
	}
}

// NewIssuer constructs an Issuer with the server signing secret.
func NewIssuer(secret []byte, opts ...IssuerOption) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: signing secret is required")
	}
	iss := &Issuer{
		secret: secret,
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(iss)
	}
	return iss, nil
}

// TTL returns the configured validity window.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// MintUser signs a token for an end-user account. The subject is namespaced
// and the numeric account id travels as a separate claim.
func (i *Issuer) MintUser(username string, userID int64) (string, time.Time, error) {
	return i.mint(userSubjectPrefix+username, userID)
}

// MintAdmin signs a token for the administrator account; the subject is the
// bare username.
func (i *Issuer) MintAdmin(username string) (string, time.Time, error) {
	return i.mint(username, 0)
}

func (i *Issuer) mint(subject string, userID int64) (string, time.Time, error) {
	if strings.TrimSpace(strings.TrimPrefix(subject, userSubjectPrefix)) == "" {
		return "", time.Time{}, ErrInvalidInput
	}
	now := i.now().UTC()
	exp := now.Add(i.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate verifies the signature and required claims. Malformed encodings,
// signature mismatches and expired tokens all collapse to ErrInvalidToken.
func (i *Issuer) Validate(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if err := i.validateClaims(claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (i *Issuer) validateClaims(claims *Claims) error {
	if i.issuer != "" && claims.Issuer != i.issuer {
		return fmt.Errorf("unexpected issuer: %s", claims.Issuer)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return errors.New("subject missing")
	}
	if claims.ExpiresAt == nil {
		return errors.New("expiry missing")
	}
	// Expiry is absolute: a token presented at exactly exp is already stale.
	if !i.now().UTC().Before(claims.ExpiresAt.Time) {
		return errors.New("token expired")
	}
	return nil
}
