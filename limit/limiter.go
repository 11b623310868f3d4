package limit

import (
	"context"
	"sync/atomic"
	"time"
)

// StopReason is a bit set telling why a search ended early
type StopReason int

const StopNone StopReason = 0

const (
	StopInterrupt StopReason = 1 << iota // Stopped by calling .SetStop(true) or context cancellation
	StopMovetime                         // Time limit reached
	StopDepth                            // Depth limit reached
	StopNodes                            // Node limit reached
	StopRollouts                         // Rollout limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopDepth, "Depth"},
		{StopNodes, "Nodes"},
		{StopRollouts, "Rollouts"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Budget reports whether the search ran out of time or was interrupted,
// as opposed to finishing its configured depth or rollouts
func (sr StopReason) Budget() bool {
	return sr&(StopInterrupt|StopMovetime) != 0
}

// Limiter checks a search against its Limits. Ok and Stop may be called
// from several goroutines once Reset has returned.
type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter(limits *Limits) *Limiter {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Limiter{
		limits: limits,
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.timer.movetime(l.limits.Movetime)
	l.timer.reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Set the stop signal, will cause to exit search if set to true
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Stop reports the stop signal, set by SetStop or by the context
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

// Elapsed since the last Reset
func (l *Limiter) Elapsed() time.Duration {
	return l.timer.elapsed()
}

func toMask(val bool, flag StopReason) StopReason {
	if val {
		return flag
	}
	return StopNone
}

// LimitMask lists every limit reached
func (l *Limiter) LimitMask(depth int, nodes, rollouts uint64) StopReason {
	stop := toMask(l.Stop(), StopInterrupt)
	// If infinite, only the stop signal counts
	if l.limits.Infinite {
		return stop
	}
	return stop |
		toMask(l.timer.isEnd(), StopMovetime) |
		toMask(l.limits.Depth <= depth, StopDepth) |
		toMask(l.limits.Nodes <= nodes, StopNodes) |
		toMask(l.limits.Rollouts <= rollouts, StopRollouts)
}

// Ok is called in the main search loop, false means the search should stop
func (l *Limiter) Ok(depth int, nodes, rollouts uint64) bool {
	return l.LimitMask(depth, nodes, rollouts) == StopNone
}

// EvaluateStopReason records why the search ended, call it once after the search
func (l *Limiter) EvaluateStopReason(depth int, nodes, rollouts uint64) {
	l.reason = l.LimitMask(depth, nodes, rollouts)
}

// StopReason is valid after EvaluateStopReason
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
