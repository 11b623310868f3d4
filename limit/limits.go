package limit

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Limits bounds a single search
type Limits struct {
	Depth    int
	Nodes    uint64
	Rollouts uint64
	Movetime time.Duration
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultDepthLimit    int           = math.MaxInt
	DefaultNodeLimit     uint64        = math.MaxUint64
	DefaultRolloutLimit  uint64        = math.MaxUint64
	DefaultMovetimeLimit time.Duration = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		Nodes:    DefaultNodeLimit,
		Rollouts: DefaultRolloutLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the maximum depth of the search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	l.Infinite = false
	return l
}

// Set the maximum number of nodes the search can visit
func (l *Limits) SetNodes(nodes uint64) *Limits {
	l.Nodes = nodes
	l.Infinite = false
	return l
}

// Set the total number of playouts in a monte-carlo search
func (l *Limits) SetRollouts(rollouts uint64) *Limits {
	l.Rollouts = rollouts
	l.Infinite = false
	return l
}

// Set the maximum time to think, zero or less means no time limit
func (l *Limits) SetMovetime(movetime time.Duration) *Limits {
	if movetime <= 0 {
		l.Movetime = DefaultMovetimeLimit
		return l
	}
	l.Movetime = movetime
	l.Infinite = false
	return l
}
