package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Search      SearchConfig      `toml:"search"`
	Player      PlayerConfig      `toml:"player"`
	UI          UIConfig          `toml:"ui"`
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
	Credentials CredentialsConfig `toml:"credentials"`
}

// SearchConfig contains the ordered provider endpoint lists and resolver
// tuning. Endpoints are configuration data, never code.
type SearchConfig struct {
	PipedInstances     []string `toml:"piped_instances"`
	InvidiousInstances []string `toml:"invidious_instances"`
	SuggestURL         string   `toml:"suggest_url"`
	YouTubeAPIKey      string   `toml:"youtube_api_key"`
	TimeoutSeconds     int      `toml:"timeout_seconds"`
	MaxResults         int      `toml:"max_results"`
}

// Timeout returns the per-provider attempt timeout.
func (s SearchConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// PlayerConfig contains playback controller settings.
type PlayerConfig struct {
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// PollInterval returns the progress polling interval while playing.
func (p PlayerConfig) PollInterval() time.Duration {
	if p.PollIntervalMS <= 0 {
		return time.Second
	}
	return time.Duration(p.PollIntervalMS) * time.Millisecond
}

// UIConfig contains device shell settings.
type UIConfig struct {
	Theme             string `toml:"theme"`
	LoadingDelayMS    int    `toml:"loading_delay_ms"`
	SuggestDebounceMS int    `toml:"suggest_debounce_ms"`
}

// LoadingDelay returns the deliberate delay shown when entering the music
// section.
func (u UIConfig) LoadingDelay() time.Duration {
	if u.LoadingDelayMS <= 0 {
		return 1300 * time.Millisecond
	}
	return time.Duration(u.LoadingDelayMS) * time.Millisecond
}

// SuggestDebounce returns the quiet period before a suggestion fetch fires.
func (u UIConfig) SuggestDebounce() time.Duration {
	if u.SuggestDebounceMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(u.SuggestDebounceMS) * time.Millisecond
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains HTTP server settings for the search proxy.
type ServerConfig struct {
	Host      string  `toml:"host"`
	Port      int     `toml:"port"`
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CredentialsConfig contains identity provider credentials.
type CredentialsConfig struct {
	Google GoogleConfig `toml:"google"`
}

// GoogleConfig contains Google OAuth credentials for sign-in.
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
