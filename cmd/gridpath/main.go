// Command gridpath answers one shortest-path query from the command line and
// prints the board with the route drawn on it.
//
//	gridpath -size 5 -start 0,0 -end 4,4 -block 1,1 -block 2,2
//	gridpath -layout maze.txt -png maze.png
//
// Exit status is 0 when a path is found, 1 when none exists and 2 on errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/board"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/layout"
	"github.com/katalvlaran/gridpath/internal/render"
)

const (
	exitFound  = 0
	exitNoPath = 1
	exitError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cellList collects -block values. Each value may hold several cells
// separated by ';'.
type cellList []grid.Cell

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = c.String()
	}
	return strings.Join(parts, ";")
}

func (l *cellList) Set(v string) error {
	for _, part := range strings.Split(v, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := grid.ParseCell(part)
		if err != nil {
			return err
		}
		*l = append(*l, c)
	}
	return nil
}

type options struct {
	configPath string
	layoutPath string
	pngPath    string
	start      string
	end        string
	blocked    cellList
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	defaults := config.DefaultConfig()
	fs.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&opts.layoutPath, "layout", "", "text layout file ('.' open, '#' wall, 'S' start, 'E' end)")
	fs.StringVar(&opts.pngPath, "png", "", "also write the board as a PNG image to this file")
	fs.StringVar(&opts.start, "start", "", "start cell as row,col")
	fs.StringVar(&opts.end, "end", "", "end cell as row,col")
	fs.Var(&opts.blocked, "block", "blocked cell as row,col (repeatable, or ';'-separated)")
	size := fs.Int("size", defaults.Grid.Size, "grid edge length")
	strategy := fs.String("strategy", defaults.Grid.Strategy, "search strategy: dijkstra or bfs")
	maxSteps := fs.Int("max-steps", defaults.Grid.MaxSteps, "longest acceptable path, 0 for no limit")
	cellPx := fs.Int("cell-px", defaults.Window.CellPx, "cell size in pixels for -png")
	logLevel := fs.String("log-level", defaults.Log.Level, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		return exitError
	}

	cfg := defaults
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintln(stderr, "gridpath:", err)
			return exitError
		}
		cfg = loaded
	}
	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Grid.Size = *size
		case "strategy":
			cfg.Grid.Strategy = *strategy
		case "max-steps":
			cfg.Grid.MaxSteps = *maxSteps
		case "cell-px":
			cfg.Window.CellPx = *cellPx
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitError
	}
	logger := cfg.Logger(stderr)

	b, err := buildBoard(cfg, opts, logger)
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitError
	}

	out, err := b.FindPath()
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitError
	}

	snap := b.Snapshot()
	fmt.Fprint(stdout, render.Text(snap))
	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, snap, cfg.Window.CellPx); err != nil {
			fmt.Fprintln(stderr, "gridpath:", err)
			return exitError
		}
		logger.Info("wrote image", slog.String("path", opts.pngPath))
	}

	if !out.Found {
		fmt.Fprintf(stdout, "No path found! Clearing %d wall(s) would connect start and end.\n", out.Walls)
		return exitNoPath
	}
	fmt.Fprintf(stdout, "Path found! Size: %d steps.\n", out.Steps())

	return exitFound
}

// buildBoard prepares a board either from a layout file or from flags.
func buildBoard(cfg config.Config, opts options, logger *slog.Logger) (*board.Board, error) {
	queryOpts, err := cfg.QueryOptions()
	if err != nil {
		return nil, err
	}
	boardOpts := []board.Option{board.WithQueryOptions(queryOpts...), board.WithLogger(logger)}

	if opts.layoutPath != "" {
		f, err := os.Open(opts.layoutPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		l, err := layout.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.layoutPath, err)
		}
		if l.Start == nil || l.End == nil {
			return nil, fmt.Errorf("%s: %w", opts.layoutPath, board.ErrNotReady)
		}
		b, err := board.New(l.Size, boardOpts...)
		if err != nil {
			return nil, err
		}
		return b, b.Load(l.Start, l.End, l.Blocked)
	}

	if opts.start == "" || opts.end == "" {
		return nil, errors.New("both -start and -end are required without -layout")
	}
	start, err := grid.ParseCell(opts.start)
	if err != nil {
		return nil, err
	}
	end, err := grid.ParseCell(opts.end)
	if err != nil {
		return nil, err
	}

	b, err := board.New(cfg.Grid.Size, boardOpts...)
	if err != nil {
		return nil, err
	}
	return b, b.Load(&start, &end, grid.NewCellSet(opts.blocked...))
}

func writePNG(path string, snap board.Snapshot, cellPx int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render.PNG(f, snap, render.DefaultStyle(cellPx))
}
