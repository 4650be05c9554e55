package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// Invidious queries one instance of the community-hosted Invidious API.
type Invidious struct {
	instance   string
	httpClient *http.Client
}

// NewInvidious creates a provider for a single Invidious instance base URL.
func NewInvidious(instance string, client *http.Client) *Invidious {
	if client == nil {
		client = http.DefaultClient
	}
	return &Invidious{instance: strings.TrimRight(instance, "/"), httpClient: client}
}

// Name returns the provider name including the instance host.
func (i *Invidious) Name() string {
	return "invidious:" + i.instance
}

// Search calls /api/v1/search restricted to videos.
func (i *Invidious) Search(ctx context.Context, query string) ([]models.Track, error) {
	endpoint := fmt.Sprintf("%s/api/v1/search?q=%s&type=video", i.instance, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", shared.ErrProviderFailed, resp.StatusCode, i.instance)
	}

	var items []struct {
		Type            string `json:"type"`
		VideoID         string `json:"videoId"`
		Title           string `json:"title"`
		Author          string `json:"author"`
		VideoThumbnails []struct {
			Quality string `json:"quality"`
			URL     string `json:"url"`
		} `json:"videoThumbnails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	var tracks []models.Track
	for _, item := range items {
		if item.Type != "video" {
			continue
		}
		var thumb string
		for _, t := range item.VideoThumbnails {
			if t.Quality == "default" {
				thumb = t.URL
				break
			}
		}
		tracks = append(tracks, normalize(item.VideoID, item.Title, item.Author, thumb))
	}
	return tracks, nil
}
