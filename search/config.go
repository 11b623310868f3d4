package search

import (
	"time"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Weights of the evaluation terms
type Weights struct {
	Stones    float64
	Liberties float64
	Captures  float64
	Position  float64
}

// DefaultWeights make any capture worth more than the best quiet move
func DefaultWeights() Weights {
	return Weights{
		Stones:    3,
		Liberties: 1,
		Captures:  50,
		Position:  10,
	}
}

// Config of a Searcher. With Pruning off the search is plain minimax.
// With Iterative on, depths 1..MaxDepth are searched in turn until
// Movetime or the context runs out; otherwise MaxDepth is searched once
// and always completes. Transpositions keeps a table of searched positions
// for the length of one Search; it is skipped under positional superko,
// where a position's value depends on the whole history.
type Config struct {
	MaxDepth       int
	Movetime       time.Duration
	Weights        Weights
	Pruning        bool
	Iterative      bool
	Transpositions bool
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:       3,
		Weights:        DefaultWeights(),
		Pruning:        true,
		Iterative:      true,
		Transpositions: true,
	}
}

// Validate fails fast on values the search cannot run with
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return &weiqi.ConfigurationError{Field: "max depth", Value: c.MaxDepth, Reason: "must be at least 1"}
	}
	if c.Movetime < 0 {
		return &weiqi.ConfigurationError{Field: "movetime", Value: c.Movetime, Reason: "must not be negative"}
	}
	return nil
}
