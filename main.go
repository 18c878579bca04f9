package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipesearch/cli"

	"github.com/rohanthewiz/logger"
)

func main() {
	logger.SetLogLevel("info")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args); err != nil {
		logger.LogErr(err, "recipesearch exited with error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
