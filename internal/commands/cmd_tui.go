package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	view, err := tui.ParseView(cfg.DefaultView)
	if err != nil {
		return err
	}

	logger := log.With().Str("component", "tui").Logger()
	app := tui.NewApp(tui.AppParams{
		Load:        cmd.flags.LoadDeck(),
		Logger:      &logger,
		ExportDir:   cfg.ExportDir,
		InitialView: view,
		ShowAnswers: cfg.ShowAnswersInBrowse,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
