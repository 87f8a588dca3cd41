package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/telemetry"
)

// FindShortestPath returns the shortest 4-connected path from start to end
// on a size×size grid whose blocked cells are impassable.
//
// Returns:
//
//   - Result{Found: true, Path: start..end} when a path exists.
//   - Result{Found: false} and a nil error when end is unreachable.
//   - an error wrapping ErrInvalidQuery when size ≤ 0, start == end, or an
//     endpoint is out of bounds or blocked.
//
// blocked is only read. Complexity: O(N²) time and memory for an N×N grid.
func FindShortestPath(size int, start, end grid.Cell, blocked grid.CellSet, opts ...Option) (Result, error) {
	return Find(Query{Size: size, Start: start, End: end, Blocked: blocked}, opts...)
}

// Find is FindShortestPath taking a Query.
func Find(q Query, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	strategy := o.Strategy.String()
	ctx, span := telemetry.Tracer().Start(o.Ctx, "pathfinder.Find",
		trace.WithAttributes(
			attribute.Int("grid_size", q.Size),
			attribute.String("start", q.Start.String()),
			attribute.String("end", q.End.String()),
			attribute.Int("blocked", len(q.Blocked)),
			attribute.String("strategy", strategy),
		),
	)
	defer span.End()

	if err := q.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid query")
		telemetry.ObserveQuery(strategy, telemetry.ResultInvalid, 0, 0)
		o.Logger.Debug("path query rejected", slog.String("error", err.Error()))
		return Result{}, err
	}

	began := time.Now()
	res, err := search(ctx, q, o)
	elapsed := time.Since(began)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		telemetry.ObserveQuery(strategy, telemetry.ResultError, elapsed, 0)
		return Result{}, err
	}

	outcome := telemetry.ResultNoPath
	if res.Found {
		outcome = telemetry.ResultFound
	}
	telemetry.ObserveQuery(strategy, outcome, elapsed, res.Steps())
	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("steps", res.Steps()),
		attribute.Int("expanded", res.Expanded),
	)
	span.SetStatus(codes.Ok, outcome)
	o.Logger.Debug("path query",
		slog.String("start", q.Start.String()),
		slog.String("end", q.End.String()),
		slog.String("strategy", strategy),
		slog.Bool("found", res.Found),
		slog.Int("steps", res.Steps()),
		slog.Int("expanded", res.Expanded),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}

// search builds the grid graph and dispatches to the selected algorithm.
// q must already be valid.
func search(ctx context.Context, q Query, o Options) (Result, error) {
	g, err := grid.New(q.Size, q.Blocked)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	graph := g.ToGraph(true)
	src, dst := q.Start.String(), q.End.String()

	var (
		ids      []string
		expanded int
	)
	switch o.Strategy {
	case StrategyBFS:
		ids, expanded, err = searchBFS(ctx, core.UnweightedView(graph), src, dst, o.MaxSteps)
	default:
		ids, expanded, err = searchDijkstra(ctx, graph, src, dst, o.MaxSteps)
	}
	if err != nil {
		return Result{}, err
	}
	if ids == nil {
		return Result{Expanded: expanded}, nil
	}

	path, err := toCells(ids)
	if err != nil {
		return Result{}, err
	}

	return Result{Found: true, Path: path, Expanded: expanded}, nil
}

// searchDijkstra returns the vertex IDs of the path, or nil when dst was not
// reached, plus the number of settled vertices.
func searchDijkstra(ctx context.Context, graph *core.Graph, src, dst string, maxSteps int) ([]string, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	var settled int
	opts := []dijkstra.Option{
		dijkstra.Source(src),
		dijkstra.Target(dst),
		dijkstra.WithReturnPath(),
		dijkstra.WithOnSettle(func(string, int64) { settled++ }),
	}
	if maxSteps > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(int64(maxSteps)))
	}

	_, prev, err := dijkstra.Dijkstra(graph, opts...)
	if err != nil {
		return nil, settled, err
	}
	ids, err := dijkstra.PathTo(prev, src, dst)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, settled, nil
	}

	return ids, settled, err
}

// searchBFS mirrors searchDijkstra using breadth-first search.
func searchBFS(ctx context.Context, graph *core.Graph, src, dst string, maxSteps int) ([]string, int, error) {
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithTarget(dst),
	}
	if maxSteps > 0 {
		opts = append(opts, bfs.WithMaxDepth(maxSteps))
	}

	res, err := bfs.BFS(graph, src, opts...)
	if err != nil {
		return nil, 0, err
	}
	ids, err := res.PathTo(dst)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, len(res.Order), nil
	}

	return ids, len(res.Order), err
}

// toCells converts vertex IDs produced by grid.ToGraph back into cells.
func toCells(ids []string) ([]grid.Cell, error) {
	out := make([]grid.Cell, len(ids))
	for i, id := range ids {
		c, err := grid.ParseCell(id)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}
