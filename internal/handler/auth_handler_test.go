package handler

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mobilecarebd/off-white/internal/authclient"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, phone, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, name, phone, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newLogoutContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: authclient.TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == authclient.TokenCookie {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", authclient.TokenCookie)
	return nil
}

func TestLogout_RevokeFailureIsLogged(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Logout", mock.Anything, "session-token").Return(errors.New("redis unreachable"))

	logged := captureLog(t)
	c, rec := newLogoutContext("session-token")

	h := NewAuthHandler(mockAuth, time.Hour)
	require.NoError(t, h.Logout(c))

	// The client still logs out either way, but the failed revoke must
	// leave a trace for operators.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logged.String(), "session revoke failed")

	cleared := sessionCookie(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	mockAuth.AssertExpectations(t)
}

func TestLogout_InvalidTokenStaysQuiet(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Logout", mock.Anything, "expired-token").Return(service.ErrInvalidSession)

	logged := captureLog(t)
	c, rec := newLogoutContext("expired-token")

	h := NewAuthHandler(mockAuth, time.Hour)
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logged.String(), "session revoke failed")
	mockAuth.AssertExpectations(t)
}

func TestLogout_NoCookieSkipsRevocation(t *testing.T) {
	mockAuth := new(MockAuthService)

	c, rec := newLogoutContext("")

	h := NewAuthHandler(mockAuth, time.Hour)
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockAuth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}
