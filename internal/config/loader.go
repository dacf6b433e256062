package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GRIDPATH_ROWS or
// GRIDPATH_START_ROW.
const EnvPrefix = "GRIDPATH"

// ErrNoConfigFile is returned by Watch when no config file was loaded.
var ErrNoConfigFile = errors.New("config: no config file to watch")

// flag name → viper key.
var flagKeys = map[string]string{
	"rows":      "rows",
	"cols":      "cols",
	"start-row": "start.row",
	"start-col": "start.col",
	"end-row":   "end.row",
	"end-col":   "end.col",
	"algorithm": "algorithm",
	"maze":      "maze",
	"seed":      "seed",
	"delay-ms":  "delay_ms",
	"diagonal":  "diagonal",
	"watch":     "watch",
	"log-level": "log.level",
	"log-file":  "log.file_dir",
}

// Loader resolves a Config and can watch its file for changes.
type Loader struct {
	v       *viper.Viper
	flags   *pflag.FlagSet
	dotenv  []string
	hasFile bool
}

// NewLoader returns a Loader that reads the given .env files (default
// ".env"); missing files are ignored.
func NewLoader(dotenv ...string) *Loader {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	l := &Loader{v: viper.New(), dotenv: dotenv}
	l.flags = newFlagSet()
	return l
}

func newFlagSet() *pflag.FlagSet {
	d := Default()
	f := pflag.NewFlagSet("gridpath", pflag.ContinueOnError)
	f.String("config", "", "YAML config file")
	f.Int("rows", d.Rows, "grid rows")
	f.Int("cols", d.Cols, "grid columns")
	f.Int("start-row", d.Start.Row, "start row")
	f.Int("start-col", d.Start.Col, "start column")
	f.Int("end-row", d.End.Row, "end row")
	f.Int("end-col", d.End.Col, "end column")
	f.StringP("algorithm", "a", d.Algorithm, `bfs, dfs, dijkstra, astar, greedy, bidirectionalBFS or "all"`)
	f.StringP("maze", "m", d.Maze, "none, horizontal, vertical, random-scatter, weight-recursive, weight-random-scatter")
	f.Int64("seed", d.Seed, "maze seed (0 = time based)")
	f.Int("delay-ms", d.DelayMs, "per-cell maze animation delay")
	f.Bool("diagonal", d.Diagonal, "allow diagonal moves")
	f.Bool("watch", d.Watch, "rerun whenever the config file changes")
	f.String("log-level", d.Log.Level, "debug, info, warn or error")
	f.String("log-file", d.Log.FileDir, "JSON log file (rotated)")
	return f
}

// Flags exposes the flag set, e.g. for usage output.
func (l *Loader) Flags() *pflag.FlagSet { return l.flags }

// Load parses args and resolves the configuration.
func (l *Loader) Load(args []string) (Config, error) {
	if err := loadDotenv(l.dotenv); err != nil {
		return Config{}, err
	}
	if err := l.flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	setDefaults(l.v, Default())
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()
	for name, key := range flagKeys {
		if err := l.v.BindPFlag(key, l.flags.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", name, err)
		}
	}

	path, _ := l.flags.GetString("config")
	if path == "" {
		path = l.v.GetString("config")
	}
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		l.hasFile = true
	}

	return l.decode()
}

func (l *Loader) decode() (Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Watch calls onChange with the re-resolved configuration each time the
// config file changes. Load must have read a file first.
func (l *Loader) Watch(onChange func(Config, error)) error {
	if !l.hasFile {
		return ErrNoConfigFile
	}
	l.v.OnConfigChange(func(fsnotify.Event) {
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return nil
}

// Load is shorthand for NewLoader().Load(args).
func Load(args []string) (Config, error) {
	return NewLoader().Load(args)
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("rows", d.Rows)
	v.SetDefault("cols", d.Cols)
	v.SetDefault("start.row", d.Start.Row)
	v.SetDefault("start.col", d.Start.Col)
	v.SetDefault("end.row", d.End.Row)
	v.SetDefault("end.col", d.End.Col)
	v.SetDefault("algorithm", d.Algorithm)
	v.SetDefault("maze", d.Maze)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("delay_ms", d.DelayMs)
	v.SetDefault("diagonal", d.Diagonal)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file_dir", d.Log.FileDir)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.dev", d.Log.Dev)
}

// loadDotenv exports the variables of each existing file. Variables already
// set in the environment win.
func loadDotenv(paths []string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}
