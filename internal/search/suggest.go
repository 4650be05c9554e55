package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/clickpod/clickpod/internal/shared"
)

const defaultSuggestURL = "https://suggestqueries-clients6.youtube.com/complete/search?client=yt-music&ds=yt&q=%s"

// MaxSuggestions caps how many completions a single call returns.
const MaxSuggestions = 8

// Suggester fetches search completions from the YouTube suggest endpoint.
// The endpoint answers with a JSONP callback, so the payload has to be
// unwrapped before it parses as JSON.
type Suggester struct {
	baseURL    string
	httpClient *http.Client
}

// NewSuggester creates a Suggester. An empty baseURL selects the public
// YouTube Music endpoint; a custom one must contain a %s for the query.
func NewSuggester(baseURL string, client *http.Client) *Suggester {
	if baseURL == "" {
		baseURL = defaultSuggestURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Suggester{baseURL: baseURL, httpClient: client}
}

// Suggest returns up to MaxSuggestions completions for the query.
// A blank query short-circuits to no suggestions.
func (s *Suggester) Suggest(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf(s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from suggest", shared.ErrProviderFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderFailed, err)
	}

	payload, ok := unwrapJSONP(body)
	if !ok {
		return nil, fmt.Errorf("%w: malformed suggest payload", shared.ErrProviderFailed)
	}

	// Payload shape: ["query", [["completion", ...], ...], {...}]
	var outer []json.RawMessage
	if err := json.Unmarshal(payload, &outer); err != nil || len(outer) < 2 {
		return nil, fmt.Errorf("%w: unexpected suggest shape", shared.ErrProviderFailed)
	}
	var rows [][]json.RawMessage
	if err := json.Unmarshal(outer[1], &rows); err != nil {
		return nil, fmt.Errorf("%w: unexpected suggest shape", shared.ErrProviderFailed)
	}

	var out []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(row[0], &text); err != nil || text == "" {
			continue
		}
		out = append(out, text)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out, nil
}

// unwrapJSONP strips a callback wrapper such as window.google.ac.h(...)
// and returns the inner JSON. It walks the byte stream tracking string
// literals so parentheses inside quoted completions do not confuse it.
func unwrapJSONP(body []byte) ([]byte, bool) {
	start := -1
	for i, b := range body {
		if b == '(' {
			start = i + 1
			break
		}
	}
	if start < 0 {
		// Some mirrors answer plain JSON with no wrapper.
		var probe []json.RawMessage
		if json.Unmarshal(body, &probe) == nil {
			return body, true
		}
		return nil, false
	}

	depth := 1
	inString := false
	escaped := false
	for i := start; i < len(body); i++ {
		b := body[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return body[start:i], true
			}
		}
	}
	return nil, false
}
