package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aouyang1/photogallery/api/models"
)

type GalleryClient struct {
	baseURL string
	client  *http.Client
}

func NewGalleryClient(baseURL string) *GalleryClient {
	return &GalleryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ListImages returns the server's current image set in display order.
func (gc *GalleryClient) ListImages(ctx context.Context) (*models.ImageListResponse, error) {
	var resp models.ImageListResponse
	if err := gc.get(ctx, "/api/images", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Metadata fetches the display metadata and neighbours of one image.
func (gc *GalleryClient) Metadata(ctx context.Context, name string) (*models.MetadataResponse, error) {
	var resp models.MetadataResponse
	path := fmt.Sprintf("/api/images/%s/metadata", url.PathEscape(name))
	if err := gc.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (gc *GalleryClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gc.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := gc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error: %s", errResp.Error)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
