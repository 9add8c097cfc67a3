package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

// GallerySize is the number of thumbnails one search shows.
const GallerySize = 9

var ErrImageSearchDisabled = errors.New("image search is not configured")

type ImageSearchService interface {
	Search(ctx context.Context, term string) ([]models.Image, error)
}

type unsplashService struct {
	baseURL   string
	accessKey string
	client    *http.Client
}

func NewImageSearchService(baseURL, accessKey string, client *http.Client) ImageSearchService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &unsplashService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
		client:    client,
	}
}

func (s *unsplashService) Search(ctx context.Context, term string) ([]models.Image, error) {
	if s.accessKey == "" {
		return nil, ErrImageSearchDisabled
	}

	params := url.Values{}
	params.Add("query", term)
	params.Add("client_id", s.accessKey)
	params.Add("per_page", fmt.Sprintf("%d", GallerySize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/search/photos?%s", s.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr transfer.UnsplashErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("image search returned status %d: %s", resp.StatusCode, strings.Join(apiErr.Errors, "; "))
	}

	var result transfer.UnsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode image search response: %w", err)
	}

	images := make([]models.Image, 0, GallerySize)
	for _, photo := range result.Results {
		if len(images) == GallerySize {
			break
		}
		thumb := photo.URLs.Thumb
		if thumb == "" {
			thumb = photo.URLs.Small
		}
		images = append(images, models.Image{
			ID:           photo.ID,
			ThumbnailURL: thumb,
			URL:          photo.URLs.Regular,
			Description:  photo.AltDescription,
		})
	}
	return images, nil
}
