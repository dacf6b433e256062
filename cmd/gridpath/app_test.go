package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func smallConfig() config.Config {
	c := config.Default()
	c.Rows, c.Cols = 3, 5
	c.Start = config.Point{Row: 1, Col: 0}
	c.End = config.Point{Row: 1, Col: 4}
	c.Algorithm = "bfs"
	return c
}

func TestApp_RunSingle(t *testing.T) {
	var out bytes.Buffer
	app := &App{Out: &out}
	require.NoError(t, app.Run(context.Background(), smallConfig()))

	got := out.String()
	require.Contains(t, got, "== Breadth-First Search (BFS)\n")
	require.Contains(t, got, "S***E\n")
	require.Contains(t, got, "path=4 cost=5")
	require.Contains(t, got, "found=true")
}

func TestApp_RunAll(t *testing.T) {
	var out bytes.Buffer
	cfg := smallConfig()
	cfg.Algorithm = config.AllAlgorithms
	require.NoError(t, (&App{Out: &out}).Run(context.Background(), cfg))
	require.Equal(t, 6, strings.Count(out.String(), "== "))
}

func TestApp_RunWithMaze(t *testing.T) {
	var out bytes.Buffer
	cfg := smallConfig()
	cfg.Rows = 4
	cfg.Start = config.Point{Row: 1, Col: 1}
	cfg.End = config.Point{Row: 2, Col: 3}
	cfg.Maze = "none"
	cfg.Seed = 1
	require.NoError(t, (&App{Out: &out}).Run(context.Background(), cfg))

	got := out.String()
	require.Contains(t, got, "maze none seed=1 attempts=1 fallback=false solvable=true walls=14")
	require.Contains(t, got, "steps=15")
	require.Contains(t, got, "#####\n#Soo#\n#**E#\n#####\n")
}

func TestApp_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (&App{Out: &bytes.Buffer{}}).Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_RunRejectsBadAlgorithm(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithm = "bogo"
	err := (&App{Out: &bytes.Buffer{}}).Run(context.Background(), cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
