package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/model"
)

// PhotoRepository defines persistence operations for gallery photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository builds a GORM-backed repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Photo{}, id).Error
}

func (r *photoRepository) List(ctx context.Context) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
