package main

import (
	"context"
	"fmt"

	"github.com/clickpod/clickpod/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search resolves a query from the command line and prints the results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: usage: search <query>", shared.ErrMissingQuery)
	}

	r.config = r.loadConfig(cmd)

	if cmd.Bool("suggest") {
		suggestions, err := r.newSuggester().Suggest(ctx, query)
		if err != nil {
			return fmt.Errorf("suggest failed: %w", err)
		}
		if cmd.Bool("json") {
			return r.writeJSON(suggestions, cmd.Bool("pretty"))
		}
		for _, s := range suggestions {
			r.writePlain("%s\n", s)
		}
		return nil
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	tracks := r.openLibrary(db).Search(ctx, query)

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}
	for _, t := range tracks {
		r.writePlain("%-14s %s • %s\n", t.ID, t.Title, t.Artist)
	}
	return nil
}
