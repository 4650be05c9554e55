package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clickpod/clickpod/internal/auth"
	"github.com/clickpod/clickpod/internal/player"
	"github.com/clickpod/clickpod/internal/shared"
	"github.com/clickpod/clickpod/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive click-wheel player.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	r.config = r.loadConfig(cmd)

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/clickpod-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	lib := r.openLibrary(db)

	controller := player.NewController(player.NewClockBackend(), r.logger, r.config.Player.PollInterval())
	defer controller.Close()

	// sign-in stays optional; without credentials the settings action
	// just logs a warning
	var authn *auth.Authenticator
	if a, err := auth.NewAuthenticator(r.config.Credentials.Google, r.config.Server.Addr(), r.httpClient, r.logger); err == nil {
		authn = a
	} else {
		r.logger.Debug("sign-in unavailable", "err", err)
	}

	model := ui.NewModel(ctx, r.config, controller, lib, authn, r.newSuggester(), r.logger)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
