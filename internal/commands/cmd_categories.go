package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/drill/internal/model"
)

type CategoriesCmd struct {
	flags *Flags
}

// NewCategoriesCmd creates a new categories command
func NewCategoriesCmd(flags *Flags) *CategoriesCmd {
	return &CategoriesCmd{flags: flags}
}

// Register adds the categories command to the application
func (cmd *CategoriesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "categories",
		Usage:     "List deck categories with question counts",
		UsageText: "drill categories",
		Action:    cmd.run,
	})

	return app
}

func (cmd *CategoriesCmd) run(ctx context.Context, c *cli.Command) error {
	result, err := cmd.flags.requireDeck()
	if err != nil {
		return err
	}
	return writeCategories(c.Root().Writer, result.Deck)
}

func writeCategories(out io.Writer, deck *model.Deck) error {
	if deck.Len() == 0 {
		_, err := fmt.Fprintln(out, "No questions in deck")
		return err
	}

	counts := deck.CategoryCounts()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tQUESTIONS")
	for _, name := range deck.Categories() {
		fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
	}
	fmt.Fprintf(w, "Total\t%d\n", deck.Len())
	return w.Flush()
}
