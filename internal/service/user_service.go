package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/google/uuid"
	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
)

// UserUpdate carries the admin-editable user fields. Nil pointers leave the
// stored value alone.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsAdmin  *bool
	IsActive *bool
}

// UserService handles the admin and self-service user operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, name, phone, email, password string, isAdmin bool) (*model.User, error)
	Update(ctx context.Context, id uint, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	ToggleStatus(ctx context.Context, id uint) (*model.User, error)
	AssignFile(ctx context.Context, userID uint, name, url, fileType string, byAdmin bool) (*model.FileRef, error)
	RemoveFile(ctx context.Context, userID uint, fileID uuid.UUID) error
	ListFiles(ctx context.Context, userID uint, assignedByAdmin bool) ([]model.FileRef, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, name, phone, email, password string, isAdmin bool) (*model.User, error) {
	existing, err := s.repo.FindByPhone(ctx, phone)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if update.IsAdmin != nil {
		user.IsAdmin = *update.IsAdmin
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ToggleStatus flips IsActive. Deactivation takes effect on the user's next
// session check.
func (s *userService) ToggleStatus(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AssignFile(ctx context.Context, userID uint, name, url, fileType string, byAdmin bool) (*model.FileRef, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	if fileType != "file" && fileType != "link" {
		fileType = "link"
	}

	file := &model.FileRef{
		UserID:          userID,
		Name:            name,
		URL:             url,
		Type:            fileType,
		AssignedByAdmin: byAdmin,
	}
	if err := s.repo.AddFile(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *userService) RemoveFile(ctx context.Context, userID uint, fileID uuid.UUID) error {
	return s.repo.DeleteFile(ctx, userID, fileID)
}

func (s *userService) ListFiles(ctx context.Context, userID uint, assignedByAdmin bool) ([]model.FileRef, error) {
	return s.repo.ListFiles(ctx, userID, assignedByAdmin)
}
