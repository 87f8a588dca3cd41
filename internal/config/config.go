// Package config holds the settings shared by the gridpath commands.
//
// Values come from DefaultConfig, then an optional TOML file, then
// command-line flags; each layer overrides the previous one.
//
//	[grid]
//	size      = 10
//	strategy  = "dijkstra"   # or "bfs"
//	max_steps = 0            # 0 = unlimited
//
//	[window]
//	cell_px = 50
//	width   = 600
//	height  = 600
//
//	[log]
//	level = "info"           # debug, info, warn, error
//
//	[metrics]
//	addr = ""                # e.g. ":9090"; empty disables the endpoint
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridpath/pathfinder"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig is wrapped with the offending field by Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownKey is returned when a file contains keys Config does not know.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Grid configures the board and the search.
type Grid struct {
	Size     int    `toml:"size"`
	Strategy string `toml:"strategy"`
	MaxSteps int    `toml:"max_steps"`
}

// Window configures the desktop front end and PNG output.
type Window struct {
	CellPx int `toml:"cell_px"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Log configures the slog handler built by Logger.
type Log struct {
	Level string `toml:"level"`
}

// Metrics configures the Prometheus endpoint of the GUI.
type Metrics struct {
	Addr string `toml:"addr"`
}

// Config is the complete settings tree.
type Config struct {
	Grid    Grid    `toml:"grid"`
	Window  Window  `toml:"window"`
	Log     Log     `toml:"log"`
	Metrics Metrics `toml:"metrics"`
}

// DefaultConfig returns a 10×10 Dijkstra board drawn with 50px cells in a
// 600×600 window, logging at info level, with metrics disabled.
func DefaultConfig() Config {
	return Config{
		Grid:   Grid{Size: 10, Strategy: pathfinder.StrategyDijkstra.String()},
		Window: Window{CellPx: 50, Width: 600, Height: 600},
		Log:    Log{Level: "info"},
	}
}

// Load reads a TOML file on top of DefaultConfig and validates the result.
// Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Decode is Load for an in-memory document.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate rejects sizes outside 1..pathfinder.MaxSize, a negative step
// cap, unknown strategies and unknown log levels.
func (c Config) Validate() error {
	switch {
	case c.Grid.Size <= 0:
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Grid.Size > pathfinder.MaxSize:
		return fmt.Errorf("%w: grid.size %d exceeds %d", ErrInvalidConfig, c.Grid.Size, pathfinder.MaxSize)
	case c.Grid.MaxSteps < 0:
		return fmt.Errorf("%w: grid.max_steps cannot be negative, got %d", ErrInvalidConfig, c.Grid.MaxSteps)
	case c.Window.CellPx <= 0:
		return fmt.Errorf("%w: window.cell_px must be positive, got %d", ErrInvalidConfig, c.Window.CellPx)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := pathfinder.ParseStrategy(c.Grid.Strategy); err != nil {
		return fmt.Errorf("%w: grid.strategy: %v", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// Strategy returns the parsed grid.strategy.
func (c Config) Strategy() (pathfinder.Strategy, error) {
	return pathfinder.ParseStrategy(c.Grid.Strategy)
}

// QueryOptions translates the grid section into pathfinder options.
func (c Config) QueryOptions() ([]pathfinder.Option, error) {
	s, err := c.Strategy()
	if err != nil {
		return nil, err
	}

	return []pathfinder.Option{pathfinder.WithStrategy(s), pathfinder.WithMaxSteps(c.Grid.MaxSteps)}, nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}

// Logger builds a text logger writing to w at the configured level.
// An unparsable level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.LogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
