package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// PlaylistList prints all playlists with their tracks.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	r.config = r.loadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists, err := r.openLibrary(db).Playlists()
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists yet. Create one with: playlist create <name>\n")
		return nil
	}
	for _, p := range playlists {
		r.writePlain("%s  %s (%d tracks)\n", p.ID, p.Name, len(p.Tracks))
		for _, t := range p.Tracks {
			r.writePlain("    %s • %s\n", t.Title, t.Artist)
		}
	}
	return nil
}

// PlaylistCreate creates a named empty playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("usage: playlist create <name>")
	}

	r.config = r.loadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := r.openLibrary(db).CreatePlaylist(name)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.writePlain("Created %s (%s)\n", playlist.Name, playlist.ID)
	return nil
}

// PlaylistDelete removes a playlist by id.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("usage: playlist delete <id>")
	}

	r.config = r.loadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := r.openLibrary(db).DeletePlaylist(id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	r.writePlain("Deleted %s\n", id)
	return nil
}
