package jwt

import (
	"errors"
	"time"

	"movielobby/auth"

	"github.com/golang-jwt/jwt"
)

var (
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken            = errors.New("invalid token")
)

// tokenClaims accepts the user id under user_id, userId or sub, in that order.
type tokenClaims struct {
	UserID      string `json:"user_id"`
	CamelUserID string `json:"userId,omitempty"`
	Role        string `json:"role"`
	jwt.StandardClaims
}

// JWTProvider signs and verifies HS256 tokens with a single shared secret.
// A zero TTL issues tokens that never expire.
type JWTProvider struct {
	Secret string
	TTL    time.Duration
	now    func() time.Time
}

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{
		Secret: secret,
		TTL:    ttl,
		now:    time.Now,
	}
}

func (p *JWTProvider) HasSecret() bool {
	return p.Secret != ""
}

func (p *JWTProvider) GenerateToken(c auth.Claims) (string, error) {
	if !p.HasSecret() {
		return "", auth.ErrMissingSecret
	}

	now := p.clock()
	claims := tokenClaims{
		UserID: c.UserID,
		Role:   string(c.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:  c.UserID,
			IssuedAt: now.Unix(),
		},
	}
	if p.TTL > 0 {
		claims.ExpiresAt = now.Add(p.TTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

func (p *JWTProvider) ParseToken(token string) (auth.Claims, error) {
	if !p.HasSecret() {
		return auth.Claims{}, auth.ErrMissingSecret
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.CamelUserID
	}
	if userID == "" {
		userID = claims.Subject
	}

	return auth.Claims{
		UserID: userID,
		Role:   auth.Role(claims.Role),
	}, nil
}

func (p *JWTProvider) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}
