package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/model"
)

// PackageRepository defines persistence operations for packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Package, error)
	List(ctx context.Context, activeOnly bool) ([]model.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository builds a GORM-backed repository.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Package{}, id).Error
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	var pkg model.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	q := r.db.WithContext(ctx).Order("regular_price ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var pkgs []model.Package
	if err := q.Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}
