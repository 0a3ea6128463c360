package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/authclient"
	"github.com/mobilecarebd/off-white/internal/handler"
	"github.com/mobilecarebd/off-white/internal/service"
)

// loadUser resolves the session cookie into a fresh user record and stores
// it on the request context. The JWT guard has already checked the signature;
// this adds revocation and deactivation checks against current data.
func loadUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(authclient.TokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			user, err := authService.CurrentUser(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(handler.ContextUserKey, user)
			return next(c)
		}
	}
}

// loadUserIfPresent resolves the session cookie when one is carried but lets
// anonymous requests through untouched. Handlers serving both a public and an
// admin view of the same resource branch on the resolved user.
func loadUserIfPresent(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(authclient.TokenCookie); err == nil && cookie.Value != "" {
				if user, err := authService.CurrentUser(c.Request().Context(), cookie.Value); err == nil {
					c.Set(handler.ContextUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// adminOnly rejects non-admin sessions. Must run after loadUser.
func adminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := handler.CurrentUser(c)
			if user == nil || !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
