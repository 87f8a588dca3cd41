// Package board is the interactive session behind the desktop and
// command-line front ends: a click-driven state machine that collects a
// start cell, an end cell and walls, and asks the pathfinder for a route.
package board

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// Sentinel errors.
var (
	// ErrOutOfBounds indicates a click outside the board.
	ErrOutOfBounds = errors.New("board: cell out of bounds")

	// ErrNotReady indicates FindPath was called before start and end were set.
	ErrNotReady = errors.New("board: start and end must both be set")

	// ErrBadSize indicates a non-positive board size.
	ErrBadSize = errors.New("board: size must be positive")
)

// State is the phase of the click state machine.
type State int

const (
	// AwaitingStart: the next click places the start cell.
	AwaitingStart State = iota
	// AwaitingEnd: the next click on another cell places the end cell.
	AwaitingEnd
	// ToggleBlocking: clicks toggle walls.
	ToggleBlocking
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting-start"
	case AwaitingEnd:
		return "awaiting-end"
	case ToggleBlocking:
		return "toggle-blocking"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Action reports what a click did.
type Action int

const (
	Ignored Action = iota
	PlacedStart
	PlacedEnd
	Blocked
	Unblocked
)

func (a Action) String() string {
	switch a {
	case Ignored:
		return "ignored"
	case PlacedStart:
		return "placed-start"
	case PlacedEnd:
		return "placed-end"
	case Blocked:
		return "blocked"
	case Unblocked:
		return "unblocked"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Outcome is the answer to FindPath.
type Outcome struct {
	pathfinder.Result

	// Walls is the fewest walls that would have to be cleared to connect
	// start and end. Only set when Found is false.
	Walls int
	// Breach is the route achieving Walls, start..end inclusive.
	Breach []grid.Cell
}

// Option configures a Board.
type Option func(*Board)

// WithQueryOptions passes options through to every pathfinder query.
func WithQueryOptions(opts ...pathfinder.Option) Option {
	return func(b *Board) {
		b.query = append(b.query, opts...)
	}
}

// WithLogger logs state transitions and queries at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// Board is a size×size session. It is safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	size    int
	state   State
	start   grid.Cell
	end     grid.Cell
	blocked grid.CellSet
	path    []grid.Cell

	query  []pathfinder.Option
	logger *slog.Logger
}

// New returns an empty board awaiting its start cell.
func New(size int, opts ...Option) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	b := &Board{
		size:    size,
		blocked: make(grid.CellSet),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Size returns the board edge length.
func (b *Board) Size() int { return b.size }

// State returns the current phase.
func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Board) inBounds(c grid.Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Click applies one click at c.
//
//   - AwaitingStart: c becomes start (any wall there is cleared).
//   - AwaitingEnd: c becomes end unless it is the start cell.
//   - ToggleBlocking: c's wall is toggled unless c is start or end.
//
// Ignored clicks leave the board untouched. Every other click clears the
// displayed path.
func (b *Board) Click(c grid.Cell) (Action, error) {
	if !b.inBounds(c) {
		return Ignored, fmt.Errorf("%w: %s on %d×%d board", ErrOutOfBounds, c, b.size, b.size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	act := Ignored
	switch b.state {
	case AwaitingStart:
		b.start = c
		b.blocked.Remove(c)
		b.state = AwaitingEnd
		act = PlacedStart
	case AwaitingEnd:
		if c == b.start {
			break
		}
		b.end = c
		b.blocked.Remove(c)
		b.state = ToggleBlocking
		act = PlacedEnd
	case ToggleBlocking:
		if c == b.start || c == b.end {
			break
		}
		if b.blocked.Toggle(c) {
			act = Blocked
		} else {
			act = Unblocked
		}
	}
	if act != Ignored {
		b.path = nil
	}

	b.logger.Debug("board click",
		slog.String("cell", c.String()),
		slog.String("action", act.String()),
		slog.String("state", b.state.String()),
	)

	return act, nil
}

// FindPath queries the pathfinder for the current start, end and walls and
// keeps a found path for Snapshot. When no path exists the Outcome also
// carries the fewest-walls route.
func (b *Board) FindPath() (Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != ToggleBlocking {
		return Outcome{}, ErrNotReady
	}

	res, err := pathfinder.FindShortestPath(b.size, b.start, b.end, b.blocked, b.query...)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Result: res}
	if res.Found {
		b.path = res.Path
		b.logger.Debug("path found", slog.Int("steps", res.Steps()))
		return out, nil
	}

	b.path = nil
	g, err := grid.New(b.size, b.blocked)
	if err != nil {
		return Outcome{}, err
	}
	breach, walls, err := g.MinBreach(b.start, b.end)
	if err != nil {
		return Outcome{}, err
	}
	out.Breach, out.Walls = breach, walls
	b.logger.Debug("no path", slog.Int("walls", walls))

	return out, nil
}

// Reset clears start, end, walls and path and returns to AwaitingStart.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = AwaitingStart
	b.start, b.end = grid.Cell{}, grid.Cell{}
	b.blocked = make(grid.CellSet)
	b.path = nil
	b.logger.Debug("board reset")
}

// Load replaces the session with a prepared position. start and end are
// optional; end without start is rejected. Walls outside the board and on
// the endpoints are dropped.
func (b *Board) Load(start, end *grid.Cell, blocked grid.CellSet) error {
	if end != nil && start == nil {
		return fmt.Errorf("%w: end given without start", ErrNotReady)
	}
	for _, c := range []*grid.Cell{start, end} {
		if c != nil && !b.inBounds(*c) {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, *c)
		}
	}
	if start != nil && end != nil && *start == *end {
		return fmt.Errorf("board: start and end are both %s", *start)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = AwaitingStart
	b.start, b.end = grid.Cell{}, grid.Cell{}
	b.blocked = make(grid.CellSet, len(blocked))
	b.path = nil
	for c := range blocked {
		if b.inBounds(c) {
			b.blocked.Add(c)
		}
	}
	if start != nil {
		b.start = *start
		b.blocked.Remove(b.start)
		b.state = AwaitingEnd
	}
	if end != nil {
		b.end = *end
		b.blocked.Remove(b.end)
		b.state = ToggleBlocking
	}

	return nil
}

// Snapshot returns a copy of the board for rendering.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Size:     b.size,
		State:    b.state,
		Start:    b.start,
		End:      b.end,
		HasStart: b.state != AwaitingStart,
		HasEnd:   b.state == ToggleBlocking,
		Blocked:  b.blocked.Clone(),
	}
	if b.path != nil {
		s.Path = append([]grid.Cell(nil), b.path...)
	}

	return s
}
