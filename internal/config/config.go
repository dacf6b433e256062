// Package config loads gridpath settings from defaults, an optional YAML
// file, a .env file, GRIDPATH_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AllAlgorithms is the Algorithm value that runs every strategy in turn.
const AllAlgorithms = "all"

// Point is a grid coordinate as it appears in config files.
type Point struct {
	Row int `mapstructure:"row" yaml:"row"`
	Col int `mapstructure:"col" yaml:"col"`
}

// Coord converts p to a grid.Coord.
func (p Point) Coord() grid.Coord { return grid.Coord{Row: p.Row, Col: p.Col} }

// LogConfig controls internal/logx.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"` // debug/info/warn/error
	FileDir    string `mapstructure:"file_dir" yaml:"file_dir"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
	Dev        bool   `mapstructure:"dev" yaml:"dev"`
}

// Config is the resolved CLI configuration.
type Config struct {
	Rows      int       `mapstructure:"rows" yaml:"rows"`
	Cols      int       `mapstructure:"cols" yaml:"cols"`
	Start     Point     `mapstructure:"start" yaml:"start"`
	End       Point     `mapstructure:"end" yaml:"end"`
	Algorithm string    `mapstructure:"algorithm" yaml:"algorithm"` // selector name or "all"
	Maze      string    `mapstructure:"maze" yaml:"maze"`           // pattern name; empty skips generation
	Seed      int64     `mapstructure:"seed" yaml:"seed"`           // 0 picks a time-based seed in the CLI
	DelayMs   int       `mapstructure:"delay_ms" yaml:"delay_ms"`
	Diagonal  bool      `mapstructure:"diagonal" yaml:"diagonal"`
	Watch     bool      `mapstructure:"watch" yaml:"watch"`
	Log       LogConfig `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in settings: the 21×51 grid with start (10,5)
// and end (10,45), A*, no maze.
func Default() Config {
	return Config{
		Rows:      grid.DefaultRows,
		Cols:      grid.DefaultCols,
		Start:     Point{Row: grid.DefaultStart.Row, Col: grid.DefaultStart.Col},
		End:       Point{Row: grid.DefaultEnd.Row, Col: grid.DefaultEnd.Col},
		Algorithm: search.AlgAStar.String(),
		DelayMs:   int(maze.DefaultDelay.Milliseconds()),
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	inside := func(p Point) bool {
		return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
	}
	if !inside(c.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidConfig, c.Start.Coord(), c.Rows, c.Cols)
	}
	if !inside(c.End) {
		return fmt.Errorf("%w: end %v outside %dx%d", ErrInvalidConfig, c.End.Coord(), c.Rows, c.Cols)
	}
	if c.Start == c.End {
		return fmt.Errorf("%w: start and end coincide at %v", ErrInvalidConfig, c.Start.Coord())
	}
	if _, err := c.Algorithms(); err != nil {
		return err
	}
	if c.Maze != "" {
		if _, err := maze.ParsePattern(c.Maze); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.DelayMs < 0 {
		return fmt.Errorf("%w: delay_ms %d", ErrInvalidConfig, c.DelayMs)
	}
	return nil
}

// Algorithms resolves the Algorithm setting.
func (c Config) Algorithms() ([]search.Algorithm, error) {
	if c.Algorithm == AllAlgorithms {
		return search.Algorithms(), nil
	}
	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return []search.Algorithm{alg}, nil
}

// Connectivity maps Diagonal to a grid connectivity.
func (c Config) Connectivity() grid.Connectivity {
	if c.Diagonal {
		return grid.Conn8
	}
	return grid.Conn4
}
