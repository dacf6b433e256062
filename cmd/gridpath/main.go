// Command gridpath builds a grid, optionally generates a maze on it, runs
// one or all search algorithms and prints the annotated grid with metrics.
//
//	gridpath --maze horizontal --algorithm all
//	GRIDPATH_ROWS=31 gridpath --config gridpath.yaml --watch
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logx"
)

func main() {
	loader := config.NewLoader()
	cfg, err := loader.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, _ := logx.New("gridpath", cfg.Log)
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))
	log.Debug("conf", zap.Any("conf", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &App{Out: os.Stdout, Log: log}
	if err := app.Run(ctx, cfg); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
	if !cfg.Watch {
		return
	}

	if err := app.Watch(ctx, loader); err != nil {
		log.Error("watch failed", zap.Error(err))
		os.Exit(1)
	}
}
