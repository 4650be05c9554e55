package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

const dataAPIBase = "https://www.googleapis.com/youtube/v3/search"

// musicCategory is the YouTube video category for music.
const musicCategory = "10"

// DataAPI queries the official YouTube Data API v3. It needs an API key
// and sits at the end of the provider chain for accounts that have one.
type DataAPI struct {
	key        string
	base       string
	httpClient *http.Client
}

// NewDataAPI creates a provider backed by the YouTube Data API.
func NewDataAPI(key string, client *http.Client) *DataAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &DataAPI{key: key, base: dataAPIBase, httpClient: client}
}

func (d *DataAPI) Name() string {
	return "youtube-data-api"
}

// Search issues a snippet search restricted to music videos.
func (d *DataAPI) Search(ctx context.Context, query string) ([]models.Track, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", DefaultMaxResults))
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoCategoryId", musicCategory)
	params.Set("key", d.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from data api", shared.ErrProviderFailed, resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				ChannelTitle string `json:"channelTitle"`
				Thumbnails   struct {
					Default struct {
						URL string `json:"url"`
					} `json:"default"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	var tracks []models.Track
	for _, item := range payload.Items {
		tracks = append(tracks, normalize(
			item.ID.VideoID,
			item.Snippet.Title,
			item.Snippet.ChannelTitle,
			item.Snippet.Thumbnails.Default.URL,
		))
	}
	return tracks, nil
}
