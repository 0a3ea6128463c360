package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/cache"
	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
)

const (
	packageCacheKey = "packages:active"
	packageCacheTTL = 5 * time.Minute
)

// PackageService handles package operations.
type PackageService interface {
	ListPublic(ctx context.Context) ([]model.Package, error)
	ListAll(ctx context.Context) ([]model.Package, error)
	Get(ctx context.Context, id uint) (*model.Package, error)
	Create(ctx context.Context, pkg *model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id uint) error
}

type packageService struct {
	repo  repository.PackageRepository
	cache *cache.Client
}

// NewPackageService creates a new package service.
func NewPackageService(repo repository.PackageRepository, cache *cache.Client) PackageService {
	return &packageService{repo: repo, cache: cache}
}

// ListPublic returns active packages for the public site, cached briefly
// since this backs the busiest page.
func (s *packageService) ListPublic(ctx context.Context) ([]model.Package, error) {
	if data, _ := s.cache.Get(ctx, packageCacheKey); data != nil {
		var cached []model.Package
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	pkgs, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(pkgs); err == nil {
		_ = s.cache.Set(ctx, packageCacheKey, payload, packageCacheTTL)
	}
	return pkgs, nil
}

// ListAll returns every package, including inactive ones, for the admin UI.
func (s *packageService) ListAll(ctx context.Context) ([]model.Package, error) {
	return s.repo.List(ctx, false)
}

func (s *packageService) Get(ctx context.Context, id uint) (*model.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) Create(ctx context.Context, pkg *model.Package) error {
	if err := s.repo.Create(ctx, pkg); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *packageService) Update(ctx context.Context, pkg *model.Package) error {
	if err := s.repo.Update(ctx, pkg); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *packageService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *packageService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, packageCacheKey)
}
