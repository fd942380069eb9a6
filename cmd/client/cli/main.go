package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bookstore/internal/client/cli"
	"github.com/dmitrijs2005/bookstore/internal/client/config"
	"github.com/dmitrijs2005/bookstore/internal/flagx"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Backend: cfg.LogBackend,
		Output:  os.Stderr,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	root := cli.NewRootCommand(func(ctx context.Context) (cli.Commander, error) {
		return cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	})
	_, rest := flagx.SplitArgs(args, config.Flags())
	root.SetArgs(rest)

	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
