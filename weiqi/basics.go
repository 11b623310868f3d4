package weiqi

import (
	"fmt"
	"strings"
)

// Color is the content of an intersection, or a player
type Color int8

const (
	Empty Color = 0
	Black Color = 1
	White Color = -1
)

// Draw is what Result reports when neither color is ahead
const Draw = Empty

// Pass is the internal move that places no stone
const Pass = -1

// Opponent returns the other player (Empty stays Empty)
func (c Color) Opponent() Color {
	return -c
}

// index maps a player color onto per-color arrays
func (c Color) index() int {
	if c == White {
		return 1
	}
	return 0
}

// Symbol is the single character used when printing a board
func (c Color) Symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseColor accepts "black"/"b" and "white"/"w" in any case
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("invalid color: %q", s)
}

func moveString(m int) string {
	if m == Pass {
		return "pass"
	}
	return fmt.Sprintf("point %d", m)
}
