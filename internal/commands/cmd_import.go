package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/importer"
	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/storage"
)

type ImportCmd struct {
	flags *Flags

	// flags
	dbPath string
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import a CSV deck into the deck database",
		UsageText: "drill import [--db path] <file.csv>",
		Description: `Parses a CSV deck with the columns ID, Category, Question and Answer and
replaces the contents of the SQLite deck database with it.

Unlike the TUI, import is strict: missing columns, malformed rows and
duplicate IDs abort without touching the database. Point deck_path at the
database afterwards to study from it.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "db",
				Usage:       "path to the deck database (defaults to database_path from config)",
				Destination: &cmd.dbPath,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return errors.New("exactly one CSV file required. Usage: drill import <file.csv>")
	}
	src := c.Args().First()

	dbPath := cmd.dbPath
	if dbPath == "" {
		dbPath = cmd.flags.Config.DatabasePath
	}
	dbPath = storage.ExpandPath(dbPath)

	count, err := importDeck(src, dbPath)
	if err != nil {
		return err
	}

	log.Info().Str("src", src).Str("db", dbPath).Int("questions", count).Msg("deck imported")
	fmt.Fprintf(c.Root().Writer, "Imported %d questions into %s\n", count, dbPath)
	return nil
}

// importDeck parses the CSV at src and saves it to the database at dbPath.
func importDeck(src, dbPath string) (int, error) {
	file, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", src, err)
	}
	defer file.Close()

	questions, err := importer.ParseCSV(file)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", src, err)
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return 0, fmt.Errorf("open deck database: %w", err)
	}
	defer db.Close()

	if err := db.Save(model.NewDeck(questions)); err != nil {
		return 0, fmt.Errorf("save deck: %w", err)
	}
	return len(questions), nil
}
