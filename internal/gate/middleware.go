package gate

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/authclient"
)

// Middleware adapts the gate to Echo. It runs before the page handlers so
// none of them ever sees a request the gate rejected.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			token := ""
			if cookie, err := req.Cookie(authclient.TokenCookie); err == nil {
				token = cookie.Value
			}

			d := g.Decide(req.Context(), requestURL(c), token)
			if d.Allow {
				return next(c)
			}
			return c.Redirect(http.StatusSeeOther, d.Location)
		}
	}
}

func requestURL(c echo.Context) string {
	req := c.Request()
	return c.Scheme() + "://" + req.Host + req.RequestURI
}
