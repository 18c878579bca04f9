// Package cli wires the recipe search front ends into one command line tool.
package cli

import (
	"context"

	"recipesearch/models"

	"github.com/rohanthewiz/logger"
	"github.com/urfave/cli/v3"
)

const name = "recipesearch"

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "log level (debug, info, warn, error), overrides RECIPES_LOG_LEVEL",
	Sources: cli.EnvVars("RECIPES_LOG_LEVEL"),
}

// NewCommand builds the root command. Without a subcommand it serves the web page.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Search recipes by ingredient from the browser or the terminal",
		Description: `Front ends for the recipe search widget:
  serve  - web page with example chips, search form and recipe cards (default)
  tui    - the same widget in the terminal
  search - one search, results printed as cards

Credentials come from RECIPES_EDAMAM_APP_ID and RECIPES_EDAMAM_APP_KEY.`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Commands: []*cli.Command{
			serveCmd(),
			tuiCmd(),
			searchCmd(),
		},
		Action: runServe,
	}
}

// Run parses args and executes the matching command
func Run(ctx context.Context, args []string) error {
	return NewCommand().Run(ctx, args)
}

// loadConfig reads the environment, applies flag overrides and sets the log level
func loadConfig(cmd *cli.Command) (*models.Config, error) {
	cfg, err := models.LoadConfig()
	if err != nil {
		return nil, err
	}

	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	logger.SetLogLevel(cfg.LogLevel)

	if !cfg.HasCredentials() {
		logger.Info("Recipe API credentials are not set, every search will come back empty",
			"app_id_env", "RECIPES_EDAMAM_APP_ID", "app_key_env", "RECIPES_EDAMAM_APP_KEY")
	}
	return cfg, nil
}
