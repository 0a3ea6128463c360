package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader pushes a file to wherever images are hosted and returns the
// public URL. Hosting mechanics live entirely behind this interface.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// HTTPUploader forwards uploads to an external image-hosting API as
// multipart form data and reads the hosted URL back from the response.
type HTTPUploader struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ Uploader = (*HTTPUploader)(nil)

// NewHTTPUploader builds an uploader against the given API endpoint.
func NewHTTPUploader(endpoint, apiKey string, timeout time.Duration) *HTTPUploader {
	return &HTTPUploader{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// Upload sends the file and returns the hosted URL.
func (u *HTTPUploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if u.apiKey != "" {
		if err := form.WriteField("key", u.apiKey); err != nil {
			return "", err
		}
	}
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := u.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("storage api: unexpected status %d", res.StatusCode)
	}

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode storage response: %w", err)
	}
	if body.Data.URL == "" {
		return "", fmt.Errorf("storage response missing url")
	}
	return body.Data.URL, nil
}
