package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilecarebd/off-white/internal/model"
)

func TestMeWithTokenForwardsCookie(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(TokenCookie); err == nil {
			gotToken = cookie.Value
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user": &model.User{ID: 9, IsAdmin: true},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	user, err := client.MeWithToken(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", gotToken)
	assert.Equal(t, uint(9), user.ID)
	assert.True(t, user.IsAdmin)
}

func TestMeSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired session"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.MeWithToken(context.Background(), "revoked")

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid or expired session", apiErr.Error())
}

func TestMeRejectsMissingUserField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.MeWithToken(context.Background(), "tok")
	assert.Error(t, err)
}

func TestTimeoutIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, 20*time.Millisecond)
	_, err := client.MeWithToken(context.Background(), "tok")
	assert.Error(t, err)
}
