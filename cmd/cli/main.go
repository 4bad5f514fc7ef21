package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tqlclient/internal/client/cli"
	"github.com/dmitrijs2005/tqlclient/internal/client/config"
	"github.com/dmitrijs2005/tqlclient/internal/flagx"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := flagx.Positionals(os.Args[1:], []string{"-a", "-u", "-p", "-d", "-t", "-c", "-config"})
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
