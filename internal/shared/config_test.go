package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "clickpod.db" {
			t.Errorf("expected database path clickpod.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if len(config.Search.PipedInstances) == 0 {
			t.Error("expected at least one piped instance")
		}

		if config.Search.MaxResults != 15 {
			t.Errorf("expected max_results 15, got %d", config.Search.MaxResults)
		}

		if config.UI.Theme != "silver" {
			t.Errorf("expected theme silver, got %s", config.UI.Theme)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[search]
piped_instances = ["http://localhost:9999"]
youtube_api_key = "test_api_key"
timeout_seconds = 2
max_results = 5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 9090
rate_limit = 3.5
rate_burst = 7

[credentials.google]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:8910/callback"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Addr() != "0.0.0.0:9090" {
			t.Errorf("expected server addr 0.0.0.0:9090, got %s", config.Server.Addr())
		}

		if config.Search.Timeout() != 2*time.Second {
			t.Errorf("expected 2s timeout, got %v", config.Search.Timeout())
		}

		if config.Credentials.Google.ClientID != "test_client_id" {
			t.Errorf("expected google client_id test_client_id, got %s", config.Credentials.Google.ClientID)
		}
	})

	t.Run("Duration Defaults", func(t *testing.T) {
		var s SearchConfig
		if s.Timeout() != 5*time.Second {
			t.Errorf("expected default timeout 5s, got %v", s.Timeout())
		}

		var p PlayerConfig
		if p.PollInterval() != time.Second {
			t.Errorf("expected default poll interval 1s, got %v", p.PollInterval())
		}

		var u UIConfig
		if u.LoadingDelay() != 1300*time.Millisecond {
			t.Errorf("expected default loading delay 1.3s, got %v", u.LoadingDelay())
		}
		if u.SuggestDebounce() != 250*time.Millisecond {
			t.Errorf("expected default debounce 250ms, got %v", u.SuggestDebounce())
		}
	})
}
