package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// DefaultMaxResults caps the track list handed back to the caller.
const DefaultMaxResults = 15

// Provider is a single upstream search backend. Implementations normalize
// their wire format into [models.Track] and return an error wrapping
// [shared.ErrProviderFailed] on any failure.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]models.Track, error)
}

// Resolver maps a free-text query to a ranked track list by trying an
// ordered provider chain. It never returns an error: a fully exhausted
// chain degrades to the static fallback set, so offline deployments still
// render something playable.
type Resolver struct {
	providers []Provider
	timeout   time.Duration
	limit     int
	logger    *log.Logger
}

// NewResolver builds the provider chain from configuration: every Piped
// instance in order, then every Invidious instance, then the official
// Data API when a key is configured.
func NewResolver(cfg shared.SearchConfig, client *http.Client, logger *log.Logger) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}

	var providers []Provider
	for _, instance := range cfg.PipedInstances {
		providers = append(providers, NewPiped(instance, client))
	}
	for _, instance := range cfg.InvidiousInstances {
		providers = append(providers, NewInvidious(instance, client))
	}
	if cfg.YouTubeAPIKey != "" {
		providers = append(providers, NewDataAPI(cfg.YouTubeAPIKey, client))
	}

	limit := cfg.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	return &Resolver{
		providers: providers,
		timeout:   cfg.Timeout(),
		limit:     limit,
		logger:    ensureLogger(logger),
	}
}

// NewResolverWithProviders wires an explicit provider chain; tests and the
// proxy server use this.
func NewResolverWithProviders(providers []Provider, timeout time.Duration, limit int, logger *log.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	return &Resolver{providers: providers, timeout: timeout, limit: limit, logger: ensureLogger(logger)}
}

// Resolve returns up to the configured maximum of normalized tracks for
// the query. A blank query short-circuits to the fallback sample set.
// Providers are attempted strictly in order, each under its own timeout;
// the first one yielding at least one usable item wins and no later
// provider is contacted.
func (r *Resolver) Resolve(ctx context.Context, query string) []models.Track {
	if strings.TrimSpace(query) == "" {
		return Fallback()
	}

	for _, p := range r.providers {
		attempt, cancel := context.WithTimeout(ctx, r.timeout)
		tracks, err := p.Search(attempt, query)
		cancel()

		if err != nil {
			r.logger.Warn("provider failed", "provider", p.Name(), "err", err)
			continue
		}

		tracks = usable(tracks)
		if len(tracks) == 0 {
			r.logger.Debug("provider returned nothing usable", "provider", p.Name())
			continue
		}

		if len(tracks) > r.limit {
			tracks = tracks[:r.limit]
		}
		return tracks
	}

	r.logger.Warn("all providers exhausted, serving fallback", "query", query)
	return Fallback()
}

// usable drops items without a provider-native id.
func usable(tracks []models.Track) []models.Track {
	out := tracks[:0]
	for _, t := range tracks {
		if t.ID != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalize fills the common Track shape: placeholder title and artist
// when the origin omitted them, and a thumbnail synthesized from the
// platform's id-keyed image convention when no explicit one was given.
func normalize(id, title, artist, thumbnail string) models.Track {
	if title == "" {
		title = "Unknown"
	}
	if artist == "" {
		artist = "Unknown Artist"
	}
	if thumbnail == "" {
		thumbnail = fmt.Sprintf("https://img.youtube.com/vi/%s/default.jpg", id)
	}
	return models.Track{ID: id, Title: title, Artist: artist, Thumbnail: thumbnail}
}

func ensureLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return shared.NewLogger(nil)
	}
	return l
}
