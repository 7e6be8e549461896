package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformedToken = errors.New("token is malformed")
)

// ValidationCause explains why Validate rejected a token.
type ValidationCause int

const (
	CauseNone ValidationCause = iota
	CauseMissingPrefix
	CauseMalformed
	CauseBadSignature
	CauseExpired
)

// ValidationResult is the outcome of Validate. It never carries an error;
// every failure mode is folded into a cause.
type ValidationResult struct {
	Cause ValidationCause
}

// OK reports whether the token passed validation.
func (r ValidationResult) OK() bool {
	return r.Cause == CauseNone
}

const bearerPrefix = "Bearer "

// Provider issues and inspects signed bearer tokens.
type Provider struct {
	secret      []byte
	issuer      string
	accessTTL   time.Duration
	refreshDays int
}

// NewProvider creates a token provider.
func NewProvider(secret, issuer string, accessTTL time.Duration, refreshDays int) *Provider {
	return &Provider{
		secret:      []byte(secret),
		issuer:      issuer,
		accessTTL:   accessTTL,
		refreshDays: refreshDays,
	}
}

// GenerateAccessToken generates a short-lived access token for the username.
func (p *Provider) GenerateAccessToken(username string) (string, error) {
	return p.generate(username, p.accessTTL)
}

// GenerateRefreshToken generates a refresh token for the username.
func (p *Provider) GenerateRefreshToken(username string) (string, error) {
	return p.generate(username, time.Duration(p.refreshDays)*24*time.Hour)
}

func (p *Provider) generate(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		// jti keeps two tokens minted in the same second distinct,
		// which string-equality rotation checks depend on
		ID: uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(p.secret)
}

// Validate checks a presented "Bearer <token>" string. The prefix match is
// case-insensitive. Expiration must be strictly after the current time.
func (p *Provider) Validate(presented string) ValidationResult {
	if len(presented) < len(bearerPrefix) || !strings.EqualFold(presented[:len(bearerPrefix)], bearerPrefix) {
		return ValidationResult{Cause: CauseMissingPrefix}
	}
	raw := strings.TrimSpace(presented[len(bearerPrefix):])

	_, err := p.parse(raw)
	switch {
	case err == nil:
		return ValidationResult{Cause: CauseNone}
	case errors.Is(err, jwt.ErrTokenExpired):
		return ValidationResult{Cause: CauseExpired}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ValidationResult{Cause: CauseBadSignature}
	default:
		return ValidationResult{Cause: CauseMalformed}
	}
}

// ExtractUsername returns the subject claim of an already-validated token.
func (p *Provider) ExtractUsername(token string) (string, error) {
	claims, err := p.parse(token)
	if err != nil {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}

// ExtractIssuedAt returns the issued-at claim in local time.
func (p *Provider) ExtractIssuedAt(token string) (time.Time, error) {
	claims, err := p.parse(token)
	if err != nil {
		return time.Time{}, ErrMalformedToken
	}
	if claims.IssuedAt == nil {
		return time.Time{}, ErrMalformedToken
	}
	return claims.IssuedAt.Time.Local(), nil
}

func (p *Provider) parse(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
