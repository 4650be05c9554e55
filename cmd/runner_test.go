package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clickpod/clickpod/internal/shared"
	tu "github.com/clickpod/clickpod/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}
			if got := output.String(); got != "{\"key\":\"value\"}\n" {
				t.Errorf("unexpected output %q", got)
			}
		})

		t.Run("pretty", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}
			if !strings.Contains(output.String(), "  \"key\": \"value\"") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})

		t.Run("write failure surfaces", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
			if err := runner.writeJSON("x", false); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if output.String() != "hello world\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}

func TestSetup(t *testing.T) {
	t.Run("creates config and database", func(t *testing.T) {
		wd := tu.MustGetwd(t)
		defer tu.MustChdir(t, wd)
		tu.MustChdir(t, t.TempDir())

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		app := setupCommand(runner)
		if err := app.Run(context.Background(), []string{"setup"}); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		tu.AssertFileExists(t, "config.toml")
		tu.AssertFileExists(t, runner.config.Database.Path)
	})

	t.Run("uses existing config", func(t *testing.T) {
		wd := tu.MustGetwd(t)
		defer tu.MustChdir(t, wd)
		dir := t.TempDir()
		tu.MustChdir(t, dir)

		dbPath := filepath.Join(dir, "custom.db")
		content := "[database]\npath = \"" + strings.ReplaceAll(dbPath, "\\", "\\\\") + "\"\n"
		if err := os.WriteFile("config.toml", []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		app := setupCommand(runner)
		if err := app.Run(context.Background(), []string{"setup"}); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		tu.AssertFileExists(t, dbPath)
	})
}

func TestPlaylistCommands(t *testing.T) {
	wd := tu.MustGetwd(t)
	defer tu.MustChdir(t, wd)
	tu.MustChdir(t, t.TempDir())

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{Output: output})

	create := playlistCommand(runner)
	if err := create.Run(context.Background(), []string{"playlist", "create", "Road Trip"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(output.String(), "Created Road Trip") {
		t.Errorf("unexpected create output %q", output.String())
	}

	output.Reset()
	list := playlistCommand(runner)
	if err := list.Run(context.Background(), []string{"playlist", "list"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(output.String(), "Road Trip (0 tracks)") {
		t.Errorf("unexpected list output %q", output.String())
	}
}
