// Package pathfinder answers shortest-path queries on a square grid with
// blocked cells.
//
// A query is a pure function of (size, start, end, blocked): inputs are
// never mutated and nothing is retained between calls. Movement is limited
// to the four cardinal directions and every step costs 1.
//
// Strategies:
//
//   - StrategyDijkstra (default): dijkstra.Dijkstra on the grid graph, with an
//     early exit once the end cell is settled.
//   - StrategyBFS: bfs.BFS on the unweighted view of the same graph.
//
// Neighbors are expanded up, down, left, right and ties are resolved in
// discovery order, so both strategies return the same path for the same
// input, every time.
//
// Errors (sentinel):
//
//   - ErrInvalidQuery    size ≤ 0 or > MaxSize, start == end, an endpoint out of bounds or blocked.
//   - ErrOptionViolation an Option was given an invalid value.
//   - ErrUnknownStrategy ParseStrategy did not recognise its input.
package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors.
var (
	// ErrInvalidQuery is wrapped with the reason when a Query fails Validate.
	ErrInvalidQuery = errors.New("pathfinder: invalid query")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("pathfinder: unknown strategy")
)

// MaxSize is the largest grid edge a query may ask for. Larger grids would
// need an N² graph that does not fit in memory, and N² overflows int long
// before N does.
const MaxSize = 4096

// Strategy selects the search algorithm.
type Strategy int

const (
	// StrategyDijkstra runs Dijkstra's algorithm with unit edge weights.
	StrategyDijkstra Strategy = iota
	// StrategyBFS runs breadth-first search.
	StrategyBFS
)

// String returns the lower-case name used in config files and metrics.
func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyBFS:
		return "bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "dijkstra" or "bfs" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return StrategyDijkstra, nil
	case "bfs":
		return StrategyBFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Query is one shortest-path request.
type Query struct {
	Size    int          // grid is Size×Size
	Start   grid.Cell    // first cell of the path
	End     grid.Cell    // last cell of the path
	Blocked grid.CellSet // walls; cells outside the grid are ignored
}

// Validate checks the query, in order: size, start/end bounds, start != end,
// start/end not blocked. The returned error wraps ErrInvalidQuery.
func (q Query) Validate() error {
	if q.Size <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidQuery, q.Size)
	}
	if q.Size > MaxSize {
		return fmt.Errorf("%w: grid size %d exceeds %d", ErrInvalidQuery, q.Size, MaxSize)
	}
	inBounds := func(c grid.Cell) bool {
		return c.Row >= 0 && c.Row < q.Size && c.Col >= 0 && c.Col < q.Size
	}
	if !inBounds(q.Start) {
		return fmt.Errorf("%w: start %s outside %d×%d grid", ErrInvalidQuery, q.Start, q.Size, q.Size)
	}
	if !inBounds(q.End) {
		return fmt.Errorf("%w: end %s outside %d×%d grid", ErrInvalidQuery, q.End, q.Size, q.Size)
	}
	if q.Start == q.End {
		return fmt.Errorf("%w: start and end are both %s", ErrInvalidQuery, q.Start)
	}
	if q.Blocked.Has(q.Start) {
		return fmt.Errorf("%w: start %s is blocked", ErrInvalidQuery, q.Start)
	}
	if q.Blocked.Has(q.End) {
		return fmt.Errorf("%w: end %s is blocked", ErrInvalidQuery, q.End)
	}

	return nil
}

// Result is the outcome of a valid query.
//
// When Found is false, Path is nil: the end cell is unreachable (or farther
// than WithMaxSteps allows). That is a normal outcome, not an error.
type Result struct {
	Found    bool        // whether a path exists
	Path     []grid.Cell // start..end inclusive when Found
	Expanded int         // cells settled before the search stopped
}

// Steps returns the number of moves on the path (len(Path)-1), or 0 when
// no path was found.
func (r Result) Steps() int {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options configures a query.
type Options struct {
	Strategy Strategy        // search algorithm
	MaxSteps int             // 0 means unlimited
	Logger   *slog.Logger    // debug output; discarded by default
	Ctx      context.Context // parent for tracing and BFS cancellation

	err error
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// DefaultOptions returns Dijkstra, no step limit, a discarding logger and
// context.Background().
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyDijkstra,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ctx:      context.Background(),
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyDijkstra, StrategyBFS:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, s)
		}
	}
}

// WithMaxSteps caps the path length. Targets farther than n steps are
// reported as not found. n == 0 removes the cap; n < 0 is rejected.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger routes per-query debug logs to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the parent context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
