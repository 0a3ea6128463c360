package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/model"
)

// ContextUserKey is where the authenticated user is stored on the request
// context by the router's session middleware.
const ContextUserKey = "currentUser"

// CurrentUser returns the authenticated user for the request, nil when the
// route is not behind the session middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
