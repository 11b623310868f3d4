package weiqi

import (
	"fmt"
	"math"
	"strings"
)

// KoRule selects how repeated positions are forbidden
type KoRule int

const (
	// KoSimple forbids recreating the position before the opponent's last move
	KoSimple KoRule = iota
	// KoPositional forbids recreating any earlier position
	KoPositional
	// KoNone allows any repetition
	KoNone
)

func (r KoRule) String() string {
	switch r {
	case KoSimple:
		return "simple"
	case KoPositional:
		return "positional"
	case KoNone:
		return "none"
	}
	return fmt.Sprintf("KoRule(%d)", int(r))
}

// ParseKoRule currently supports {"simple", "positional", "superko", "none", ""}
func ParseKoRule(s string) (KoRule, error) {
	switch strings.ToLower(s) {
	case "simple", "":
		return KoSimple, nil
	case "positional", "superko":
		return KoPositional, nil
	case "none":
		return KoNone, nil
	}
	return KoSimple, &ConfigurationError{Field: "ko rule", Value: s, Reason: "not supported"}
}

const (
	DefaultSize = 9
	MinSize     = 2
	MaxSize     = 19
)

type options struct {
	size int
	komi float64
	ko   KoRule
}

// Option configures a new Game
type Option func(*options)

// WithSize sets the board width (the board is square)
func WithSize(n int) Option {
	return func(o *options) { o.size = n }
}

// WithKomi sets the compensation added to White's score
func WithKomi(komi float64) Option {
	return func(o *options) { o.komi = komi }
}

// WithKoRule sets the repetition rule
func WithKoRule(r KoRule) Option {
	return func(o *options) { o.ko = r }
}

func (o options) validate() error {
	if o.size < MinSize || o.size > MaxSize {
		return &ConfigurationError{Field: "board size", Value: o.size, Reason: fmt.Sprintf("must be between %d and %d", MinSize, MaxSize)}
	}
	if math.IsNaN(o.komi) || math.IsInf(o.komi, 0) {
		return &ConfigurationError{Field: "komi", Value: o.komi, Reason: "must be finite"}
	}
	switch o.ko {
	case KoSimple, KoPositional, KoNone:
	default:
		return &ConfigurationError{Field: "ko rule", Value: o.ko, Reason: "unknown"}
	}
	return nil
}
