package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/exporter"
	"github.com/nikbrunner/drill/internal/search"
	"github.com/nikbrunner/drill/internal/storage"
)

type ExportCmd struct {
	flags *Flags

	// flags
	categories []string
	query      string
	title      string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export the deck as an HTML study sheet",
		UsageText: "drill export [--category name]... [--query text] [path]",
		Description: `Writes the deck, optionally filtered, as a standalone HTML page grouped by
category. The path defaults to <export_dir>/drill-export-YYYY-MM-DD.html.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "category",
				Usage:       "only export questions in this category (repeatable)",
				Destination: &cmd.categories,
			},
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "only export questions containing this text",
				Destination: &cmd.query,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "page title",
				Value:       "Interview Questions",
				Destination: &cmd.title,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 1 {
		return errors.New("at most one output path allowed. Usage: drill export [path]")
	}

	result, err := cmd.flags.requireDeck()
	if err != nil {
		return err
	}

	questions := search.Filter(result.Deck, search.Criteria{
		Categories: cmd.categories,
		Query:      cmd.query,
	})
	if len(questions) == 0 {
		return errors.New("no questions match the given filters")
	}

	path := c.Args().First()
	if path == "" {
		path = exporter.DefaultExportPath(cmd.flags.Config.ExportDir, time.Now())
	}
	path = storage.ExpandPath(path)

	if err := exporter.ExportFile(path, cmd.title, questions); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	log.Info().Str("path", path).Int("questions", len(questions)).Msg("deck exported")
	fmt.Fprintf(c.Root().Writer, "Exported %d questions to %s\n", len(questions), path)
	return nil
}
