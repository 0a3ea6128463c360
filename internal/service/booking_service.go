package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
)

// BookingService handles booking operations.
type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	List(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Booking, error)
	Delete(ctx context.Context, id uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, packageRepo repository.PackageRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

// Create validates the package and records the booking as pending. Package
// name and price are snapshotted from the package row, not trusted from the
// request.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	pkg, err := s.packageRepo.FindByID(ctx, booking.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domerr.ErrPackageNotFound
		}
		return err
	}
	if !pkg.IsActive {
		return domerr.ErrPackageInactive
	}

	booking.PackageName = pkg.Name
	booking.PackagePrice = pkg.RegularPrice
	if pkg.OfferPrice > 0 {
		booking.PackagePrice = pkg.OfferPrice
	}
	booking.Status = model.BookingPending

	return s.bookingRepo.Create(ctx, booking)
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// UpdateStatus moves a booking to confirmed or cancelled.
func (s *bookingService) UpdateStatus(ctx context.Context, id uint, status string) (*model.Booking, error) {
	if status != model.BookingConfirmed && status != model.BookingCancelled && status != model.BookingPending {
		return nil, domerr.ErrInvalidStatus
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrBookingNotFound
		}
		return nil, err
	}

	booking.Status = status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domerr.ErrBookingNotFound
		}
		return err
	}
	return s.bookingRepo.Delete(ctx, id)
}
