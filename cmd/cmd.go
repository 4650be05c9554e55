// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, tuiCommand, serveCommand, searchCommand, playlistCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// setupCommand initializes the configuration file and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize config file and database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// tuiCommand launches the click-wheel player.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"tui", "ui"},
		Usage:   "Launch the click-wheel player",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}

// serveCommand runs the local search proxy.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the local search proxy (/search, /suggest)",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Serve,
	}
}

// searchCommand resolves a query from the command line.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Resolve a query against the provider chain",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "suggest",
				Usage: "Print completions instead of tracks",
			},
		},
		Action: r.Search,
	}
}

// playlistCommand manages the persisted library from the command line.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List playlists and their tracks",
				Flags:  []cli.Flag{configFlag(), &cli.BoolFlag{Name: "json", Usage: "Output raw JSON"}},
				Action: r.PlaylistList,
			},
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistDelete,
			},
		},
	}
}
