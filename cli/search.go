package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"recipesearch/models"
	"recipesearch/tui"
	"recipesearch/widget"

	"github.com/urfave/cli/v3"
)

const cardWidth = 72

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run one recipe search and print the results",
		ArgsUsage: "<query...>",
		Description: `Words are joined with spaces into one query. An empty query is sent as is.
A failed search prints the same message as a search with no results.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client := models.NewSearchClient(cfg.SearchURL, cfg.SearchTimeout)
			query := strings.Join(cmd.Args().Slice(), " ")
			return printSearch(ctx, cmd.Root().Writer, client, cfg.Credentials, query)
		},
	}
}

// printSearch runs a single widget search cycle and writes the settled state
func printSearch(ctx context.Context, out io.Writer, searcher widget.Searcher,
	creds models.Credentials, query string) error {
	w := widget.New(searcher)
	w.SetQuery(query)
	w.Submit(ctx, creds)

	view := w.Snapshot()
	if view.State() != widget.StateResults {
		_, err := fmt.Fprintln(out, widget.EmptyMessage)
		return err
	}

	_, err := fmt.Fprintln(out, tui.RenderCards(view.Recipes, cardWidth))
	return err
}
