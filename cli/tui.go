package cli

import (
	"context"

	"recipesearch/models"
	"recipesearch/tui"

	"github.com/urfave/cli/v3"
)

func tuiCmd() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Search recipes in the terminal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client := models.NewSearchClient(cfg.SearchURL, cfg.SearchTimeout)
			return tui.Run(ctx, client, cfg.Credentials)
		},
	}
}
