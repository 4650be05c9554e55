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

// Piped queries one instance of the Piped scraping proxy network. Each
// configured instance is its own link in the resolver chain so a dead
// mirror costs exactly one attempt.
type Piped struct {
	instance   string
	httpClient *http.Client
}

// NewPiped creates a provider for a single Piped instance base URL.
func NewPiped(instance string, client *http.Client) *Piped {
	if client == nil {
		client = http.DefaultClient
	}
	return &Piped{instance: strings.TrimRight(instance, "/"), httpClient: client}
}

// Name returns the provider name including the instance host.
func (p *Piped) Name() string {
	return "piped:" + p.instance
}

// Search calls /search with the music_songs filter and normalizes stream
// items into tracks.
func (p *Piped) Search(ctx context.Context, query string) ([]models.Track, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&filter=music_songs", p.instance, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", shared.ErrProviderFailed, resp.StatusCode, p.instance)
	}

	var body struct {
		Items []struct {
			URL          string `json:"url"`
			Type         string `json:"type"`
			Title        string `json:"title"`
			UploaderName string `json:"uploaderName"`
			Thumbnail    string `json:"thumbnail"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	var tracks []models.Track
	for _, item := range body.Items {
		if item.Type != "stream" {
			continue
		}
		id := strings.TrimPrefix(item.URL, "/watch?v=")
		tracks = append(tracks, normalize(id, item.Title, item.UploaderName, item.Thumbnail))
	}
	return tracks, nil
}
