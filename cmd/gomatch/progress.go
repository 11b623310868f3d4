package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressUpdate keeps the running score of a match
type ProgressUpdate struct {
	mu          sync.Mutex
	w           io.Writer
	startTime   time.Time
	lastUpdate  time.Time
	iteration   int
	otherKeys   []string
	otherValues []int
	description string
}

// NewProgressUpdate starts a progress update
func NewProgressUpdate(w io.Writer, description string) *ProgressUpdate {
	return &ProgressUpdate{
		w:           w,
		startTime:   time.Now(),
		lastUpdate:  time.Now(),
		description: description,
	}
}

// Update counts finished games and bumps the named tally, printing at most
// twice a second
func (pu *ProgressUpdate) Update(key string) {
	pu.mu.Lock()
	defer pu.mu.Unlock()
	pu.iteration++
	pu.add(key, 1)
	if time.Since(pu.lastUpdate).Seconds() > 0.5 {
		pu.print("\t\r")
		pu.lastUpdate = time.Now()
	}
}

// Get returns a tally, 0 if it was never bumped
func (pu *ProgressUpdate) Get(key string) int {
	pu.mu.Lock()
	defer pu.mu.Unlock()
	for i := range pu.otherKeys {
		if pu.otherKeys[i] == key {
			return pu.otherValues[i]
		}
	}
	return 0
}

func (pu *ProgressUpdate) add(key string, n int) {
	for i := range pu.otherKeys {
		if pu.otherKeys[i] == key {
			pu.otherValues[i] += n
			return
		}
	}
	pu.otherKeys = append(pu.otherKeys, key)
	pu.otherValues = append(pu.otherValues, n)
}

func (pu *ProgressUpdate) print(end string) {
	fmt.Fprintf(
		pu.w,
		"%s: %d games\t%.1f s/game",
		pu.description,
		pu.iteration,
		time.Since(pu.startTime).Seconds()/float64(max(pu.iteration, 1)),
	)
	for i := range pu.otherKeys {
		fmt.Fprintf(pu.w, "\t%s: %d", pu.otherKeys[i], pu.otherValues[i])
	}
	fmt.Fprint(pu.w, end)
}

// Close prints the final tally on its own line
func (pu *ProgressUpdate) Close() {
	pu.mu.Lock()
	defer pu.mu.Unlock()
	pu.print("\t\r\n")
}
