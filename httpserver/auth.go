package httpserver

import (
	"movielobby/auth"
	"movielobby/errs"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// requireAdmin lets the request through only when the Authorization header
// carries a valid token with the ADMIN role.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.AuthService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "auth service not configured")
		}

		claims, err := s.AuthService.AuthorizeAdmin(
			c.Request().Context(),
			c.Request().Header.Get(echo.HeaderAuthorization),
		)
		if err != nil {
			return err
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// claimsFrom returns the claims stored by requireAdmin.
func claimsFrom(c echo.Context) (auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}
