package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrNoAugmentingPath is returned by ShortestAugmentingPath when every
// route from source to sink is saturated. Like an unreachable target in a
// shortest-path query, this is a normal outcome, not a fatal error.
var ErrNoAugmentingPath = errors.New("flow: no augmenting path with positive residual capacity")

// EdgeError is returned when an edge carries a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Verbose: log each augmentation at debug level.
type FlowOptions struct {
	Verbose bool
}

// DefaultOptions returns production-safe defaults (quiet).
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}
