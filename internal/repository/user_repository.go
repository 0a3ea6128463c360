package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/mobilecarebd/off-white/internal/model"
)

// UserRepository defines persistence operations for users and their files.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	AddFile(ctx context.Context, file *model.FileRef) error
	DeleteFile(ctx context.Context, userID uint, fileID uuid.UUID) error
	ListFiles(ctx context.Context, userID uint, assignedByAdmin bool) ([]model.FileRef, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Files").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Files").Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AddFile(ctx context.Context, file *model.FileRef) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *userRepository) DeleteFile(ctx context.Context, userID uint, fileID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, fileID).
		Delete(&model.FileRef{}).Error
}

func (r *userRepository) ListFiles(ctx context.Context, userID uint, assignedByAdmin bool) ([]model.FileRef, error) {
	var files []model.FileRef
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND assigned_by_admin = ?", userID, assignedByAdmin).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
