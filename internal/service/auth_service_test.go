package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/auth"
	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) AddFile(ctx context.Context, file *model.FileRef) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteFile(ctx context.Context, userID uint, fileID uuid.UUID) error {
	args := m.Called(ctx, userID, fileID)
	return args.Error(0)
}

func (m *MockUserRepository) ListFiles(ctx context.Context, userID uint, assignedByAdmin bool) ([]model.FileRef, error) {
	args := m.Called(ctx, userID, assignedByAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileRef), args.Error(1)
}

// MockRevocationStore is a mock implementation of RevocationStoreInterface.
type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository, revoked *MockRevocationStore) AuthService {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService, revoked)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		phone         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			phone: "+8801712345678",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801712345678").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "phone already registered",
			phone: "+8801700000000",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801700000000").Return(&model.User{Phone: "+8801700000000"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockRevocationStore))
			user, token, err := service.Register(context.Background(), "Test User", tt.phone, "", "password123")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.phone, user.Phone)
				assert.NotEmpty(t, user.PasswordHash)
				assert.True(t, user.IsActive)
				assert.False(t, user.IsAdmin)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801712345678").Return(&model.User{
					ID:           1,
					Phone:        "+8801712345678",
					PasswordHash: string(hashedPassword),
					IsActive:     true,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			password: "nope",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801712345678").Return(&model.User{
					ID:           1,
					Phone:        "+8801712345678",
					PasswordHash: string(hashedPassword),
					IsActive:     true,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown phone",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801712345678").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByPhone", mock.Anything, "+8801712345678").Return(&model.User{
					ID:           1,
					Phone:        "+8801712345678",
					PasswordHash: string(hashedPassword),
					IsActive:     false,
				}, nil)
			},
			expectedError: domerr.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockRevocationStore))
			user, token, err := service.Login(context.Background(), "+8801712345678", tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	t.Run("valid session loads fresh user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRevoked := new(MockRevocationStore)
		service := NewAuthService(mockRepo, jwtService, mockRevoked)

		token, err := jwtService.GenerateSessionToken(42, "+8801712345678")
		assert.NoError(t, err)

		mockRevoked.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(&model.User{
			ID:       42,
			Phone:    "+8801712345678",
			IsAdmin:  true,
			IsActive: true,
		}, nil)

		user, err := service.CurrentUser(context.Background(), token)
		assert.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("revoked session is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRevoked := new(MockRevocationStore)
		service := NewAuthService(mockRepo, jwtService, mockRevoked)

		token, err := jwtService.GenerateSessionToken(42, "+8801712345678")
		assert.NoError(t, err)

		mockRevoked.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

		_, err = service.CurrentUser(context.Background(), token)
		assert.Equal(t, ErrInvalidSession, err)
	})

	t.Run("deactivated user is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRevoked := new(MockRevocationStore)
		service := NewAuthService(mockRepo, jwtService, mockRevoked)

		token, err := jwtService.GenerateSessionToken(42, "+8801712345678")
		assert.NoError(t, err)

		mockRevoked.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(&model.User{ID: 42, IsActive: false}, nil)

		_, err = service.CurrentUser(context.Background(), token)
		assert.Equal(t, ErrInvalidSession, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockRevocationStore))

		_, err := service.CurrentUser(context.Background(), "not-a-jwt")
		assert.Equal(t, ErrInvalidSession, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	mockRevoked := new(MockRevocationStore)
	service := NewAuthService(new(MockUserRepository), jwtService, mockRevoked)

	token, err := jwtService.GenerateSessionToken(1, "+8801712345678")
	assert.NoError(t, err)

	mockRevoked.On("Revoke", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

	assert.NoError(t, service.Logout(context.Background(), token))
	mockRevoked.AssertExpectations(t)

	assert.Equal(t, ErrInvalidSession, service.Logout(context.Background(), "garbage"))
}
