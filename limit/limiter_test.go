package limit

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Reset()

	if !limiter.Ok(1000000, 1000000, 1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(1, 101, 1); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(1, 99, 1); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetDepth(4))
	limiter.Reset()
	if ok := limiter.Ok(4, 1, 1); ok {
		t.Errorf("<Depth=%d: ok=%v, want=%v", 4, ok, !ok)
	}
	if ok := limiter.Ok(3, 1, 1); !ok {
		t.Errorf(">Depth=%d: ok=%v, want=%v", 3, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetRollouts(10))
	limiter.Reset()
	if ok := limiter.Ok(0, 0, 10); ok {
		t.Errorf("<Rollouts=%d: ok=%v, want=%v", 10, ok, !ok)
	}
	if ok := limiter.Ok(0, 0, 9); !ok {
		t.Errorf(">Rollouts=%d: ok=%v, want=%v", 9, ok, !ok)
	}
	if mask := limiter.LimitMask(0, 0, 10); mask != StopRollouts {
		t.Errorf("mask %v, want Rollouts", mask)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(50 * time.Millisecond))
	limiter.Reset()
	time.Sleep(time.Millisecond * 51)

	if ok := limiter.Ok(1, 1, 1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1, 1, 1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterContext(t *testing.T) {
	limiter := NewLimiter(DefaultLimits())
	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.Reset()
	if limiter.Stop() {
		t.Fatal("stopped before cancel")
	}
	cancel()
	if limiter.Ok(1, 1, 1) {
		t.Fatal("cancelled context should stop the search")
	}
	limiter.EvaluateStopReason(1, 1, 1)
	if limiter.StopReason() != StopInterrupt || !limiter.StopReason().Budget() {
		t.Fatalf("stop reason %v", limiter.StopReason())
	}
}

func TestStopReasonString(t *testing.T) {
	if s := (StopMovetime | StopDepth).String(); s != "Movetime|Depth" {
		t.Errorf("got %q", s)
	}
	if s := StopNone.String(); s != "None" {
		t.Errorf("got %q", s)
	}
	if StopDepth.Budget() {
		t.Error("depth is not a budget stop")
	}
}
