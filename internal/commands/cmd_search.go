package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/picker"
	"github.com/nikbrunner/drill/internal/search"
)

type SearchCmd struct {
	flags *Flags

	// flags
	hideAnswer bool
}

// NewSearchCmd creates a new search command
func NewSearchCmd(flags *Flags) *SearchCmd {
	return &SearchCmd{flags: flags}
}

// Register adds the search command to the application
func (cmd *SearchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Fuzzy search questions and print the chosen card",
		UsageText: "drill search [--hide-answer] <query...>",
		Description: `Fuzzy matches the query against question text.

A single match is printed directly. Several matches open a picker.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "hide-answer",
				Usage:       "print only the question",
				Destination: &cmd.hideAnswer,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SearchCmd) run(ctx context.Context, c *cli.Command) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return errors.New("search query required. Usage: drill search <query...>")
	}

	result, err := cmd.flags.requireDeck()
	if err != nil {
		return err
	}

	results := search.FuzzySearchQuestions(result.Deck, query)
	if len(results) == 0 {
		return fmt.Errorf("no questions match %q", query)
	}

	var selected *model.Question
	if len(results) == 1 {
		selected = results[0].Question
	} else {
		p := tea.NewProgram(picker.New(results, query), tea.WithContext(ctx))
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected = finalPicker.SelectedQuestion()
	}

	if selected == nil {
		return nil
	}
	return writeCard(c.Root().Writer, *selected, !cmd.hideAnswer)
}

func writeCard(out io.Writer, q model.Question, withAnswer bool) error {
	if _, err := fmt.Fprintf(out, "#%d [%s] %s\n", q.ID, q.Category, q.Question); err != nil {
		return err
	}
	if !withAnswer {
		return nil
	}
	_, err := fmt.Fprintf(out, "\n%s\n", q.Answer)
	return err
}
