package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
)

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockBookingRepository, *MockPackageRepository)
		expectedError error
		expectedPrice float64
	}{
		{
			name: "snapshots regular price and pending status",
			setupMocks: func(b *MockBookingRepository, p *MockPackageRepository) {
				p.On("FindByID", mock.Anything, uint(3)).Return(&model.Package{
					ID:           3,
					Name:         "Wedding Premium",
					RegularPrice: 45000,
					IsActive:     true,
				}, nil)
				b.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedPrice: 45000,
		},
		{
			name: "offer price wins over regular price",
			setupMocks: func(b *MockBookingRepository, p *MockPackageRepository) {
				p.On("FindByID", mock.Anything, uint(3)).Return(&model.Package{
					ID:           3,
					Name:         "Wedding Premium",
					RegularPrice: 45000,
					OfferPrice:   39000,
					IsActive:     true,
				}, nil)
				b.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedPrice: 39000,
		},
		{
			name: "unknown package",
			setupMocks: func(b *MockBookingRepository, p *MockPackageRepository) {
				p.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domerr.ErrPackageNotFound,
		},
		{
			name: "inactive package is not bookable",
			setupMocks: func(b *MockBookingRepository, p *MockPackageRepository) {
				p.On("FindByID", mock.Anything, uint(3)).Return(&model.Package{
					ID:       3,
					Name:     "Retired Package",
					IsActive: false,
				}, nil)
			},
			expectedError: domerr.ErrPackageInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			mockPackages := new(MockPackageRepository)
			tt.setupMocks(mockBookings, mockPackages)

			service := NewBookingService(mockBookings, mockPackages)
			booking := &model.Booking{
				CustomerName: "Client",
				Phone:        "+8801712345678",
				PackageID:    3,
				// Client-supplied values must be overwritten by the snapshot.
				PackageName:  "spoofed",
				PackagePrice: 1,
				Status:       model.BookingConfirmed,
			}
			err := service.Create(context.Background(), booking)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Wedding Premium", booking.PackageName)
				assert.Equal(t, tt.expectedPrice, booking.PackagePrice)
				assert.Equal(t, model.BookingPending, booking.Status)
			}

			mockBookings.AssertExpectations(t)
			mockPackages.AssertExpectations(t)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("confirms a pending booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByID", mock.Anything, uint(7)).Return(&model.Booking{
			ID:     7,
			Status: model.BookingPending,
		}, nil)
		mockBookings.On("Update", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

		service := NewBookingService(mockBookings, new(MockPackageRepository))
		booking, err := service.UpdateStatus(context.Background(), 7, model.BookingConfirmed)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingConfirmed, booking.Status)
		mockBookings.AssertExpectations(t)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		service := NewBookingService(new(MockBookingRepository), new(MockPackageRepository))

		_, err := service.UpdateStatus(context.Background(), 7, "shipped")
		assert.Equal(t, domerr.ErrInvalidStatus, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewBookingService(mockBookings, new(MockPackageRepository))
		_, err := service.UpdateStatus(context.Background(), 99, model.BookingCancelled)
		assert.Equal(t, domerr.ErrBookingNotFound, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deletes an existing booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByID", mock.Anything, uint(7)).Return(&model.Booking{ID: 7}, nil)
		mockBookings.On("Delete", mock.Anything, uint(7)).Return(nil)

		service := NewBookingService(mockBookings, new(MockPackageRepository))
		assert.NoError(t, service.Delete(context.Background(), 7))
		mockBookings.AssertExpectations(t)
	})

	t.Run("missing booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewBookingService(mockBookings, new(MockPackageRepository))
		assert.Equal(t, domerr.ErrBookingNotFound, service.Delete(context.Background(), 99))
	})
}
