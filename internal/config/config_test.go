package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfinder"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Grid.Size)
	assert.Equal(t, "dijkstra", cfg.Grid.Strategy)
	assert.Equal(t, 50, cfg.Window.CellPx)
	assert.Equal(t, 600, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestDecode_OverridesDefaults(t *testing.T) {
	doc := `
[grid]
size = 20
strategy = "bfs"

[log]
level = "debug"
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Grid.Size)
	assert.Equal(t, "bfs", cfg.Grid.Strategy)
	assert.Equal(t, 50, cfg.Window.CellPx, "untouched keys keep defaults")

	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, pathfinder.StrategyBFS, s)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown key":      {"[grid]\ncolour = 3\n", ErrUnknownKey},
		"zero size":        {"[grid]\nsize = 0\n", ErrInvalidConfig},
		"huge size":        {"[grid]\nsize = 100000\n", ErrInvalidConfig},
		"negative steps":   {"[grid]\nmax_steps = -2\n", ErrInvalidConfig},
		"unknown strategy": {"[grid]\nstrategy = \"astar\"\n", ErrInvalidConfig},
		"bad level":        {"[log]\nlevel = \"loud\"\n", ErrInvalidConfig},
		"bad cell size":    {"[window]\ncell_px = 0\n", ErrInvalidConfig},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode(strings.NewReader("[grid\nsize = 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: decode")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("[metrics]\naddr = \":9090\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestQueryOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Strategy = "bfs"
	cfg.Grid.MaxSteps = 2

	opts, err := cfg.QueryOptions()
	require.NoError(t, err)
	res, err := pathfinder.FindShortestPath(5, grid.Cell{}, grid.Cell{Col: 4}, nil, opts...)
	require.NoError(t, err)
	assert.False(t, res.Found, "max_steps must reach the query")
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
