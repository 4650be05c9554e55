package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/shared"
)

// TrackResolver resolves a query into tracks, satisfied by the library
// service and the raw search resolver alike.
type TrackResolver interface {
	Resolve(ctx context.Context, query string) []models.Track
}

// Suggester serves search completions.
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// SearchHandler exposes the search pipeline over local HTTP so other
// players on the machine can reuse the provider chain.
type SearchHandler struct {
	resolver  TrackResolver
	suggester Suggester
	logger    *log.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(resolver TrackResolver, suggester Suggester, logger *log.Logger) *SearchHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SearchHandler{resolver: resolver, suggester: suggester, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *SearchHandler) Routes() []string {
	return []string{"/search", "/suggest"}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing q parameter"})
		return
	}

	switch r.URL.Path {
	case "/search":
		tracks := h.resolver.Resolve(r.Context(), query)
		if tracks == nil {
			tracks = []models.Track{}
		}
		writeJSON(w, http.StatusOK, tracks)
	case "/suggest":
		suggestions, err := h.suggester.Suggest(r.Context(), query)
		if err != nil {
			// Suggestions are cosmetic, degrade to an empty list.
			h.logger.Warn("suggest failed", "query", query, "err", err)
			suggestions = nil
		}
		if suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, http.StatusOK, suggestions)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
