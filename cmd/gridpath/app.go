package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/runner"
)

// App wires config, maze generation and searches to an output stream.
type App struct {
	Out io.Writer
	Log *zap.Logger
	// Now seeds mazes when the configured seed is 0; defaults to time.Now.
	Now func() time.Time
}

// Run executes one configuration: build the grid, generate the maze if
// asked, then search with every selected algorithm.
func (a *App) Run(ctx context.Context, cfg config.Config) error {
	log := a.logger()
	algs, err := cfg.Algorithms()
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Rows, cfg.Cols, cfg.Start.Coord(), cfg.End.Coord(),
		grid.WithConnectivity(cfg.Connectivity()))
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	s, err := runner.NewSession(g, algs[0], runner.WithLogger(log))
	if err != nil {
		return err
	}

	if cfg.Maze != "" {
		if err := a.generate(ctx, s, cfg); err != nil {
			return err
		}
	}

	for _, alg := range algs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.SetAlgorithm(alg); err != nil {
			return err
		}
		res, m, err := s.Search()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "== %s\n", alg.Info().Title)
		fmt.Fprint(a.Out, s.Grid())
		fmt.Fprintf(a.Out, "visited=%d path=%d cost=%d time=%s found=%t\n\n",
			m.Visited, m.PathLength, m.Cost, m.Elapsed.Round(time.Microsecond), res.Found())
	}
	return nil
}

func (a *App) generate(ctx context.Context, s *runner.Session, cfg config.Config) error {
	log := a.logger()
	p, err := maze.ParsePattern(cfg.Maze)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}
	gen, err := maze.New(p,
		maze.WithSeed(seed),
		maze.WithDelay(time.Duration(cfg.DelayMs)*time.Millisecond),
	)
	if err != nil {
		return err
	}

	steps := 0
	rep, err := s.Generate(gen, func(st maze.Step) bool {
		steps++
		log.Debug("maze step",
			zap.Stringer("phase", st.Phase),
			zap.Int("changed", len(st.Changed)),
			zap.Duration("delay", st.Delay),
		)
		return ctx.Err() == nil
	})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "maze %s seed=%d attempts=%d fallback=%t solvable=%t walls=%d weighted=%d regions=%d steps=%d\n",
		rep.Pattern, seed, rep.Attempts, rep.FallbackUsed, rep.Solvable, rep.Walls, rep.Weighted, rep.Regions, steps)
	return nil
}

// Watch reruns on every config file change until ctx is done. Changes that
// arrive while a run is in progress are coalesced into the next run.
func (a *App) Watch(ctx context.Context, loader *config.Loader) error {
	log := a.logger()
	updates := make(chan config.Config, 1)
	err := loader.Watch(func(c config.Config, err error) {
		if err != nil {
			log.Warn("config reload rejected", zap.Error(err))
			return
		}
		select {
		case <-updates:
		default:
		}
		updates <- c
	})
	if err != nil {
		return err
	}

	log.Info("watching config file")
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-updates:
			runLog := log.With(zap.String("reload_id", uuid.NewString()))
			child := &App{Out: a.Out, Log: runLog, Now: a.Now}
			if err := child.Run(ctx, c); err != nil {
				runLog.Error("rerun failed", zap.Error(err))
			}
		}
	}
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
