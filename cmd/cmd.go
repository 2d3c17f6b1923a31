// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles initial configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write a starter config file and initialize the catalog cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// catalogCommand handles catalog operations
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Browse the server's track catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every track the server knows about",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read the local catalog cache instead of the server",
					},
				},
				Action: r.CatalogList,
			},
		},
	}
}

// queueCommand handles queue operations
func queueCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "queue",
		Aliases: []string{"q"},
		Usage:   "Inspect and mutate the shared queue",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the queue and the current playback status",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.QueueList,
			},
			{
				Name:  "add",
				Usage: "Append a track to the queue by hash",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "hash",
					},
				},
				Action: r.QueueAdd,
			},
			{
				Name:    "rm",
				Aliases: []string{"remove"},
				Usage:   "Remove a track from the queue by hash",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "hash",
					},
				},
				Action: r.QueueRemove,
			},
			{
				Name:  "move",
				Usage: "Move a queue entry from one position to another (zero-based)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "from",
					},
					&cli.StringArg{
						Name: "to",
					},
				},
				Action: r.QueueMove,
			},
		},
	}
}

// transportCommand handles playback operations
func transportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "player",
		Usage: "Playback controls",
		Commands: []*cli.Command{
			{
				Name:  "now",
				Usage: "Show the current playback status",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.Now,
			},
			{
				Name:   "play",
				Usage:  "Start the next queued track",
				Action: r.Play,
			},
			{
				Name:   "pause",
				Usage:  "Toggle the paused state",
				Action: r.Pause,
			},
		},
	}
}

// autoplayCommand handles the server's autoplay flag.
func autoplayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "autoplay",
		Usage: "Read or write the server's autoplay flag",
		Commands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print the autoplay flag",
				Action: r.AutoplayGet,
			},
			{
				Name:  "set",
				Usage: "Set the autoplay flag",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "enabled",
					},
				},
				Action: r.AutoplaySet,
			},
		},
	}
}

// watchCommand follows playback from the terminal without the full TUI.
func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "watch",
		Usage:  "Poll the server and print the status line as it changes",
		Action: r.Watch,
	}
}

// tuiCommand returns the top-level TUI command for interactive queue management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive queue view",
		Action:  r.TUI,
	}
}
