package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mobilecarebd/off-white/internal/config"
	"github.com/mobilecarebd/off-white/internal/gate"
	"github.com/mobilecarebd/off-white/internal/handler"
	"github.com/mobilecarebd/off-white/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	requestGate *gate.Gate,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	packageHandler *handler.PackageHandler,
	teamHandler *handler.TeamHandler,
	photoHandler *handler.PhotoHandler,
	bookingHandler *handler.BookingHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// The gate sees every request; its public short-circuit keeps API and
	// asset traffic out of the decision logic.
	e.Use(requestGate.Middleware())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Static("/static", "static")
	e.Static("/images", "images")

	// Pages (protected by the gate, not by API auth)
	e.GET("/", pageHandler.Home)
	e.GET("/packages", pageHandler.Packages)
	e.GET("/login", pageHandler.Login)
	e.GET("/register", pageHandler.Register)
	e.GET("/profile", pageHandler.Profile)
	e.GET("/admin", pageHandler.Admin)
	e.GET("/admin/*", pageHandler.Admin)

	api := e.Group("/api")

	// Auth API (the contract the gate and the client store consume)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)

	// Public read API and booking submission. Package and team listings
	// resolve the session when one is carried: admins see inactive rows.
	api.GET("/packages", packageHandler.List, loadUserIfPresent(authService))
	api.GET("/team", teamHandler.List, loadUserIfPresent(authService))
	api.GET("/photos", photoHandler.List)
	api.POST("/bookings", bookingHandler.Create)

	// Authenticated routes (session cookie JWT + fresh user load)
	sessionGuard := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:token",
	})

	authed := api.Group("", sessionGuard, loadUser(authService))
	authed.GET("/users/files", userHandler.MyFiles)
	authed.GET("/users/admin-assigned-files", userHandler.AdminAssignedFiles)

	admin := api.Group("", sessionGuard, loadUser(authService), adminOnly())

	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PATCH("/users/:id/toggle-status", userHandler.ToggleStatus)
	admin.POST("/users/:id/files", userHandler.AssignFile)
	admin.DELETE("/users/:id/files/:fileId", userHandler.RemoveFile)

	admin.POST("/packages", packageHandler.Create)
	admin.PUT("/packages/:id", packageHandler.Update)
	admin.DELETE("/packages/:id", packageHandler.Delete)

	admin.POST("/team", teamHandler.Create)
	admin.PUT("/team/:id", teamHandler.Update)
	admin.DELETE("/team/:id", teamHandler.Delete)

	admin.POST("/photos/upload", photoHandler.Upload)
	admin.DELETE("/photos/:id", photoHandler.Delete)

	admin.GET("/bookings", bookingHandler.List)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	admin.DELETE("/bookings/:id", bookingHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
