package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/mobilecarebd/off-white/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mobilecarebd/off-white/internal/auth"
	"github.com/mobilecarebd/off-white/internal/authclient"
	"github.com/mobilecarebd/off-white/internal/cache"
	"github.com/mobilecarebd/off-white/internal/config"
	"github.com/mobilecarebd/off-white/internal/db"
	"github.com/mobilecarebd/off-white/internal/gate"
	"github.com/mobilecarebd/off-white/internal/handler"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
	"github.com/mobilecarebd/off-white/internal/router"
	"github.com/mobilecarebd/off-white/internal/service"
	"github.com/mobilecarebd/off-white/internal/storage"
)

// @title Off White Photography API
// @version 1.0
// @description Booking and back-office API for the Off White event-photography site, with cookie-session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.Photo{},
			&model.TeamMember{},
			&model.Package{},
			&model.FileRef{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FileRef{},
		&model.Package{},
		&model.TeamMember{},
		&model.Photo{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	teamRepo := repository.NewTeamRepository(gormDB)
	photoRepo := repository.NewPhotoRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionExpiry)
	revocationStore := auth.NewRevocationStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, revocationStore)
	userService := service.NewUserService(userRepo)
	packageService := service.NewPackageService(packageRepo, cacheClient)
	teamService := service.NewTeamService(teamRepo)
	uploader := storage.NewHTTPUploader(cfg.StorageAPIURL, cfg.StorageAPIKey, 30*time.Second)
	photoService := service.NewPhotoService(photoRepo, uploader)
	bookingService := service.NewBookingService(bookingRepo, packageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionExpiry)
	userHandler := handler.NewUserHandler(userService)
	packageHandler := handler.NewPackageHandler(packageService)
	teamHandler := handler.NewTeamHandler(teamService)
	photoHandler := handler.NewPhotoHandler(photoService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	pageHandler := handler.NewPageHandler()

	// The request gate validates admin sessions through the auth API, the
	// same contract browser clients use.
	gateClient := authclient.New(cfg.AuthAPIURL, cfg.AuthAPITimeout)
	requestGate := gate.New(gate.DefaultConfig(), gateClient)

	// Register routes
	router.Register(
		e,
		cfg,
		requestGate,
		authService,
		authHandler,
		userHandler,
		packageHandler,
		teamHandler,
		photoHandler,
		bookingHandler,
		pageHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
