package montecarlo

import (
	"time"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Config of a Monte Carlo search.
// MaxRolloutDepth 0 means twice the number of points on the board.
// TotalRollouts caps the rollouts of all candidates together, 0 for no cap;
// like Movetime it makes results depend on scheduling when Workers > 1.
type Config struct {
	Rollouts        int
	TotalRollouts   int
	MaxRolloutDepth int
	Seed            int64
	Workers         int
	Movetime        time.Duration
	// Strict playouts draw from LegalMoves instead of WeakLegalMoves
	Strict bool
}

func DefaultConfig() Config {
	return Config{
		Rollouts: 32,
		Workers:  1,
	}
}

func (c Config) Validate() error {
	if c.Rollouts < 1 {
		return &weiqi.ConfigurationError{Field: "rollouts", Value: c.Rollouts, Reason: "must be at least 1"}
	}
	if c.TotalRollouts < 0 {
		return &weiqi.ConfigurationError{Field: "total rollouts", Value: c.TotalRollouts, Reason: "must not be negative"}
	}
	if c.MaxRolloutDepth < 0 {
		return &weiqi.ConfigurationError{Field: "max rollout depth", Value: c.MaxRolloutDepth, Reason: "must not be negative"}
	}
	if c.Workers < 1 {
		return &weiqi.ConfigurationError{Field: "workers", Value: c.Workers, Reason: "must be at least 1"}
	}
	if c.Movetime < 0 {
		return &weiqi.ConfigurationError{Field: "movetime", Value: c.Movetime, Reason: "must not be negative"}
	}
	return nil
}

func (c Config) depthFor(g *weiqi.Game) int {
	if c.MaxRolloutDepth > 0 {
		return c.MaxRolloutDepth
	}
	return 2 * g.Size() * g.Size()
}
