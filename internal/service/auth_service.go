package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mobilecarebd/off-white/internal/auth"
	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when phone or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid phone or password")
	// ErrUserAlreadyExists is returned when trying to register an existing phone.
	ErrUserAlreadyExists = errors.New("an account with this phone already exists")
	// ErrInvalidSession is returned when the session token is missing, bad,
	// expired, or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// AuthService handles registration, login and session resolution. It is the
// server side of the auth API contract the gate and the client store consume.
type AuthService interface {
	Register(ctx context.Context, name, phone, email, password string) (*model.User, string, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	revoked    auth.RevocationStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, revoked auth.RevocationStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoked:    revoked,
	}
}

// Register creates a user with a hashed password and opens a session.
// The phone must arrive already normalized; uniqueness is checked on the
// normalized value.
func (s *authService) Register(ctx context.Context, name, phone, email, password string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByPhone(ctx, phone)
	if err == nil && existing != nil {
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and opens a session. Deactivated users are
// rejected even with a correct password.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", domerr.ErrUserInactive
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	return user, token, nil
}

// CurrentUser resolves a session token to a fresh user record. The record is
// re-read from the database on every call so revoked admin bits or
// deactivations take effect immediately.
func (s *authService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	if revoked, _ := s.revoked.IsRevoked(ctx, claims.ID); revoked {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if !user.IsActive {
		return nil, ErrInvalidSession
	}

	return user, nil
}

// Logout revokes the session token for its remaining lifetime.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return ErrInvalidSession
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}
