package service

import (
	"context"
	"fmt"
	"io"

	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
	"github.com/mobilecarebd/off-white/internal/storage"
)

// PhotoService handles gallery photos. Image bytes never touch the local
// disk; they are forwarded to the external storage API and only the hosted
// URL is persisted.
type PhotoService interface {
	List(ctx context.Context) ([]model.Photo, error)
	Upload(ctx context.Context, title, filename string, content io.Reader, uploadedBy uint) (*model.Photo, error)
	Delete(ctx context.Context, id uint) error
}

type photoService struct {
	repo     repository.PhotoRepository
	uploader storage.Uploader
}

// NewPhotoService creates a new photo service.
func NewPhotoService(repo repository.PhotoRepository, uploader storage.Uploader) PhotoService {
	return &photoService{repo: repo, uploader: uploader}
}

func (s *photoService) List(ctx context.Context) ([]model.Photo, error) {
	return s.repo.List(ctx)
}

func (s *photoService) Upload(ctx context.Context, title, filename string, content io.Reader, uploadedBy uint) (*model.Photo, error) {
	url, err := s.uploader.Upload(ctx, filename, content)
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	photo := &model.Photo{
		Title:      title,
		URL:        url,
		UploadedBy: uploadedBy,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
