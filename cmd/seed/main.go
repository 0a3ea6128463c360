package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/config"
	"github.com/mobilecarebd/off-white/internal/db"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/phone"
	"github.com/mobilecarebd/off-white/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FileRef{},
		&model.Package{},
		&model.TeamMember{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	adminPhone := phone.Normalize(getEnv("ADMIN_PHONE", "01700000000"))
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")

	if _, err := userRepo.FindByPhone(ctx, adminPhone); err == nil {
		log.Printf("Admin user %s already exists, skipping", adminPhone)
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Name:         "Site Admin",
			Phone:        adminPhone,
			PasswordHash: string(hash),
			IsAdmin:      true,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminPhone)
	} else {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	packageRepo := repository.NewPackageRepository(gormDB)
	existing, err := packageRepo.List(ctx, false)
	if err != nil {
		log.Fatalf("Failed to list packages: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Found %d packages, skipping package seed", len(existing))
		return
	}

	for _, pkg := range defaultPackages() {
		p := pkg
		if err := packageRepo.Create(ctx, &p); err != nil {
			log.Fatalf("Failed to seed package %q: %v", p.Name, err)
		}
		log.Printf("Seeded package %q", p.Name)
	}

	log.Println("Seed completed")
}

func defaultPackages() []model.Package {
	return []model.Package{
		{
			Name:         "Essential",
			Description:  "Single photographer coverage for small events.",
			RegularPrice: 12000,
			OfferPrice:   10000,
			Features:     model.StringList{"4 hours coverage", "150 edited photos", "Online gallery"},
			IsActive:     true,
		},
		{
			Name:         "Signature",
			Description:  "Two photographers for full-day wedding coverage.",
			RegularPrice: 28000,
			OfferPrice:   24000,
			Features:     model.StringList{"Full day coverage", "400 edited photos", "Photo album", "Online gallery"},
			IsActive:     true,
		},
		{
			Name:         "Premium",
			Description:  "Complete coverage with cinematography and prints.",
			RegularPrice: 45000,
			Features:     model.StringList{"Two day coverage", "Unlimited edited photos", "Cinematic highlight film", "Premium album"},
			IsActive:     true,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
