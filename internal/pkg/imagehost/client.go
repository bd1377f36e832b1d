package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/luvitbd/attendance-app-go/internal/config"
)

// Client uploads images to a cloudinary-style host. The HTTP client
// carries no timeout of its own; the capture pipeline races the upload
// against its soft deadline instead.
type Client struct {
	uploadURL string
	uploadKey string
	http      *http.Client
}

func NewClient(cfg config.EvidenceConfig) *Client {
	return &Client{
		uploadURL: cfg.UploadURL,
		uploadKey: cfg.UploadKey,
		http:      &http.Client{},
	}
}

// Upload implements Uploader.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := form.WriteField("upload_preset", c.uploadKey); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode image host response: %w", err)
	}

	if payload.SecureURL != "" {
		return payload.SecureURL, nil
	}
	if payload.URL != "" {
		return payload.URL, nil
	}
	return "", fmt.Errorf("image host response carried no URL")
}
