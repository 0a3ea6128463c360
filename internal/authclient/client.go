package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/mobilecarebd/off-white/internal/model"
)

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// AuthAPI is the surface consumed by the request gate and the client
// session store.
type AuthAPI interface {
	Me(ctx context.Context) (*model.User, error)
	MeWithToken(ctx context.Context, token string) (*model.User, error)
	Login(ctx context.Context, phone, password string) (*model.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, name, phone, email, password string) (*model.User, error)
}

// APIError is a non-2xx response from the auth API, carrying the server's
// message when one was returned.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("auth api: unexpected status %d", e.Status)
}

// Client talks to the auth API over HTTP. When built with NewWithJar it keeps
// session cookies across calls, so a Login is visible to subsequent Me and
// Logout calls, mirroring a browser.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ AuthAPI = (*Client)(nil)

// New builds a client without cookie persistence. Suitable for the request
// gate, which forwards an explicit token on every call.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewWithJar builds a client that retains session cookies between calls.
func NewWithJar(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout, Jar: jar},
	}, nil
}

type userEnvelope struct {
	User *model.User `json:"user"`
}

// Me returns the current user for the ambient session cookie.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	return c.me(ctx, "")
}

// MeWithToken returns the user for an explicit session token, forwarded as a
// cookie header. The client's jar, if any, is bypassed.
func (c *Client) MeWithToken(ctx context.Context, token string) (*model.User, error) {
	return c.me(ctx, token)
}

func (c *Client) me(ctx context.Context, token string) (*model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, readAPIError(res)
	}

	var env userEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode me response: %w", err)
	}
	if env.User == nil {
		return nil, fmt.Errorf("me response missing user")
	}
	return env.User, nil
}

// Login authenticates with phone and password. The phone must already be in
// normalized form; this client never rewrites it.
func (c *Client) Login(ctx context.Context, phone, password string) (*model.User, error) {
	return c.postUser(ctx, "/api/auth/login", map[string]string{
		"phone":    phone,
		"password": password,
	})
}

// Register creates an account. Email may be empty.
func (c *Client) Register(ctx context.Context, name, phone, email, password string) (*model.User, error) {
	body := map[string]string{
		"name":     name,
		"phone":    phone,
		"password": password,
	}
	if email != "" {
		body["email"] = email
	}
	return c.postUser(ctx, "/api/auth/register", body)
}

// Logout revokes the current session. A non-2xx status is an error: the
// session must be assumed still live.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return readAPIError(res)
	}
	return nil
}

func (c *Client) postUser(ctx context.Context, path string, body map[string]string) (*model.User, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, readAPIError(res)
	}

	var env userEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	if env.User == nil {
		return nil, fmt.Errorf("%s response missing user", path)
	}
	return env.User, nil
}

func readAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
