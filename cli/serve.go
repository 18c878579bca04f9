package cli

import (
	"context"

	"recipesearch/metrics"
	"recipesearch/web"

	"github.com/rohanthewiz/logger"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the recipe search page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address, overrides RECIPES_ADDRESS",
			},
			&cli.StringFlag{
				Name:  "metrics-address",
				Usage: "Prometheus listen address, overrides RECIPES_METRICS_ADDRESS",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr := cmd.String("address"); addr != "" {
		cfg.Address = addr
	}
	if addr := cmd.String("metrics-address"); addr != "" {
		cfg.MetricsAddress = addr
	}

	app, err := web.NewApp(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.MetricsAddress != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddress); err != nil {
				logger.LogErr(err, "metrics listener stopped", "address", cfg.MetricsAddress)
			}
		}()
	}

	logger.Info("Serving recipe search", "address", cfg.Address)
	return web.Run(web.NewServer(app))
}
