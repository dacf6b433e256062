package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// loader ignores any .env in the working directory.
func loader(t *testing.T) *config.Loader {
	t.Helper()
	return config.NewLoader(filepath.Join(t.TempDir(), "absent.env"))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := loader(t).Load(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, 10, c.Start.Row)
	require.Equal(t, 45, c.End.Col)

	algs, err := c.Algorithms()
	require.NoError(t, err)
	require.Equal(t, []search.Algorithm{search.AlgAStar}, algs)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GRIDPATH_ROWS", "31")
	t.Setenv("GRIDPATH_START_ROW", "15")
	t.Setenv("GRIDPATH_ALGORITHM", "all")
	t.Setenv("GRIDPATH_DIAGONAL", "true")

	c, err := loader(t).Load(nil)
	require.NoError(t, err)
	require.Equal(t, 31, c.Rows)
	require.Equal(t, 15, c.Start.Row)
	require.True(t, c.Diagonal)

	algs, err := c.Algorithms()
	require.NoError(t, err)
	require.Len(t, algs, len(search.Algorithms()))
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("GRIDPATH_ALGORITHM", "bfs")
	c, err := loader(t).Load([]string{"--algorithm", "dfs", "-m", "vertical", "--seed", "9"})
	require.NoError(t, err)
	require.Equal(t, "dfs", c.Algorithm)
	require.Equal(t, "vertical", c.Maze)
	require.EqualValues(t, 9, c.Seed)
}

func TestLoad_Dotenv(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv("GRIDPATH_MAZE") })
	path := writeFile(t, ".env", "GRIDPATH_MAZE=random-scatter\n")

	c, err := config.NewLoader(path).Load(nil)
	require.NoError(t, err)
	require.Equal(t, "random-scatter", c.Maze)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "gridpath.yaml", `
rows: 31
cols: 51
start: {row: 15, col: 10}
end: {row: 15, col: 40}
algorithm: bidirectionalBFS
log:
  level: debug
`)
	c, err := loader(t).Load([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, 31, c.Rows)
	require.Equal(t, config.Point{Row: 15, Col: 40}, c.End)
	require.Equal(t, "bidirectionalBFS", c.Algorithm)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, config.Default().Log.MaxSize, c.Log.MaxSize)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"ZeroRows", []string{"--rows", "0"}},
		{"StartOutside", []string{"--start-row", "40"}},
		{"EndOutside", []string{"--end-col=-1"}},
		{"SameCell", []string{"--end-row", "10", "--end-col", "5"}},
		{"UnknownAlgorithm", []string{"--algorithm", "bogo"}},
		{"UnknownMaze", []string{"--maze", "spiral"}},
		{"NegativeDelay", []string{"--delay-ms", "-5"}},
		{"UnknownFlag", []string{"--colour"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader(t).Load(tc.args)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := loader(t).Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

func TestWatch_NoFile(t *testing.T) {
	l := loader(t)
	_, err := l.Load(nil)
	require.NoError(t, err)
	require.ErrorIs(t, l.Watch(func(config.Config, error) {}), config.ErrNoConfigFile)
}

func TestWatch_Reload(t *testing.T) {
	path := writeFile(t, "gridpath.yaml", "algorithm: bfs\n")
	l := loader(t)
	c, err := l.Load([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, "bfs", c.Algorithm)

	changed := make(chan config.Config, 8)
	require.NoError(t, l.Watch(func(c config.Config, err error) {
		if err == nil {
			changed <- c
		}
	}))
	require.NoError(t, os.WriteFile(path, []byte("algorithm: greedy\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Algorithm == "greedy" {
				return
			}
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
}
