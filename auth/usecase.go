package auth

import (
	"context"
	"strings"

	"movielobby/errs"
)

const bearerScheme = "Bearer"

var (
	ErrMissingSecret        = errs.Errorf(errs.EMISCONFIGURED, "Internal Server Error. Missing jwt key")
	ErrMissingCredentials   = errs.Errorf(errs.EUNAUTHORIZED, "Missing auth credentials")
	ErrMalformedCredentials = errs.Errorf(errs.EINVALID, "Malformed credentials")
	ErrForbidden            = errs.Errorf(errs.EFORBIDDEN, "Forbidden")
	ErrUnknownRole          = errs.Errorf(errs.EINVALID, "Unknown role")
	ErrMissingSubject       = errs.Errorf(errs.EINVALID, "Missing user id")
)

type Service interface {
	AuthorizeAdmin(ctx context.Context, authorization string) (Claims, error)
	IssueToken(ctx context.Context, c Claims) (string, error)
}

type TokenProvider interface {
	// HasSecret reports whether a signing secret is configured.
	HasSecret() bool
	GenerateToken(c Claims) (string, error)
	ParseToken(token string) (Claims, error)
}

type Usecase struct {
	tokens TokenProvider
}

func NewUsecase(tokens TokenProvider) *Usecase {
	return &Usecase{tokens: tokens}
}

// AuthorizeAdmin verifies the raw Authorization header value and returns the
// claims when they carry the ADMIN role. It has no side effects.
func (uc *Usecase) AuthorizeAdmin(_ context.Context, authorization string) (Claims, error) {
	if !uc.tokens.HasSecret() {
		return Claims{}, ErrMissingSecret
	}

	if strings.TrimSpace(authorization) == "" {
		return Claims{}, ErrMissingCredentials
	}

	token, ok := bearerToken(authorization)
	if !ok {
		return Claims{}, ErrMalformedCredentials
	}

	claims, err := uc.tokens.ParseToken(token)
	if err != nil {
		return Claims{}, ErrMalformedCredentials
	}

	if !claims.IsAdmin() {
		return Claims{}, ErrForbidden
	}

	return claims, nil
}

// IssueToken signs c. Used by operators to mint credentials.
func (uc *Usecase) IssueToken(_ context.Context, c Claims) (string, error) {
	if !uc.tokens.HasSecret() {
		return "", ErrMissingSecret
	}
	if strings.TrimSpace(c.UserID) == "" {
		return "", ErrMissingSubject
	}
	if c.Role != RoleUser && c.Role != RoleAdmin {
		return "", ErrUnknownRole
	}
	return uc.tokens.GenerateToken(c)
}

func bearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
