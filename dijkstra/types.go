// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:       ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:       optional vertex ID; the search stops once it is settled.
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on distances to explore; vertices beyond it are skipped.
//	– OnSettle:     optional hook called each time a vertex's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrTargetNotFound  if a target is set but does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target vertex does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that PathTo found no route to the requested vertex.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Target      – if non-empty, stop as soon as this vertex is settled.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// OnSettle    – called with (vertex, distance) when a vertex is finalized.
type Options struct {
	Source      string                      // The ID of the source vertex
	Target      string                      // Optional early-exit vertex
	ReturnPath  bool                        // Whether to return the predecessor map
	MaxDistance int64                       // Maximum distance to explore
	OnSettle    func(id string, dist int64) // Settlement hook
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target makes the search stop once id has been settled. Distances of
// vertices not settled by then are left at math.MaxInt64 or at a tentative
// value, so callers should only rely on dist[id] and the path to id.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance,
// signalling invalid configuration early.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a hook invoked once per settled vertex, in
// settlement order. A nil fn is ignored.
func WithOnSettle(fn func(id string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID:
//   - Target:      "" (settle everything reachable).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no cap).
//   - OnSettle:    no-op.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		OnSettle:    func(string, int64) {},
	}
}
