package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/commands"
	"github.com/nikbrunner/drill/internal/logutils"
	"github.com/nikbrunner/drill/internal/storage"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, c)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{Decks: storage.NewCache()}

	app := &cli.Command{
		Name:      "drill",
		Usage:     "Study interview questions in the terminal",
		UsageText: "drill [global options] [command [command options]]",
		Description: `drill loads a deck of interview questions from a CSV file or a SQLite deck
database and lets you browse, search and review them as flashcards.

Run 'drill' with no arguments to open the study TUI. Without a deck file a
small demo deck is used.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "deck",
				Aliases:     []string{"d"},
				Usage:       "path to the deck (.csv, or .db/.sqlite/.sqlite3); overrides deck_path",
				Sources:     cli.EnvVars("DRILL_DECK"),
				Destination: &flags.DeckPath,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DRILL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DRILL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("DRILL_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, storage.ExpandPath(flags.LogFile))
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.With().Str("session", uuid.NewString()).Logger()
			logCloser = closer

			cfg, err := storage.LoadConfig(storage.ExpandPath(flags.ConfigPath))
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.DeckPath != "" {
				cfg.DeckPath = storage.ExpandPath(flags.DeckPath)
			}
			flags.Config = cfg

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("deck", cfg.DeckPath).
				Str("version", build()).
				Msg("drill starting")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewSearchCmd(flags).Register(app)
	app = commands.NewImportCmd(flags).Register(app)
	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewCategoriesCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'drill --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
