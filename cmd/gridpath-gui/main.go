// Command gridpath-gui opens the interactive grid window.
//
// Click once to place the start, again to place the end, then click cells
// to toggle walls. With -metrics-addr the process also serves Prometheus
// metrics at /metrics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/internal/board"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/layout"
	"github.com/katalvlaran/gridpath/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath-gui:", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := config.DefaultConfig()
	configPath := flag.String("config", "", "TOML configuration file")
	layoutPath := flag.String("layout", "", "text layout to open with")
	size := flag.Int("size", defaults.Grid.Size, "grid edge length")
	strategy := flag.String("strategy", defaults.Grid.Strategy, "search strategy: dijkstra or bfs")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Grid.Size = *size
		case "strategy":
			cfg.Grid.Strategy = *strategy
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	b, err := newBoard(cfg, *layoutPath, logger)
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, logger)
	}

	logger.Info("starting window", slog.Int("size", b.Size()), slog.String("strategy", cfg.Grid.Strategy))
	ui.NewPathApp(app.New(), cfg, b, logger).Run()

	return nil
}

func newBoard(cfg config.Config, layoutPath string, logger *slog.Logger) (*board.Board, error) {
	queryOpts, err := cfg.QueryOptions()
	if err != nil {
		return nil, err
	}
	opts := []board.Option{board.WithQueryOptions(queryOpts...), board.WithLogger(logger)}
	if layoutPath == "" {
		return board.New(cfg.Grid.Size, opts...)
	}

	f, err := os.Open(layoutPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := layout.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", layoutPath, err)
	}
	b, err := board.New(l.Size, opts...)
	if err != nil {
		return nil, err
	}

	return b, b.Load(l.Start, l.End, l.Blocked)
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	logger.Info("serving metrics", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server stopped", slog.String("error", err.Error()))
	}
}
