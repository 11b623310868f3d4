package limit

import (
	"time"
)

type timer struct {
	start    time.Time
	duration time.Duration
}

func newTimer() *timer {
	return &timer{time.Now(), -1}
}

// Check if this timer has ended
func (t *timer) isEnd() bool {
	return t.duration > 0 && time.Since(t.start) >= t.duration
}

// Set the 'start' as now
func (t *timer) reset() {
	t.start = time.Now()
}

func (t *timer) elapsed() time.Duration {
	return time.Since(t.start)
}

func (t *timer) movetime(movetime time.Duration) {
	if movetime <= 0 {
		t.duration = -1
	} else {
		t.duration = movetime
	}
}
