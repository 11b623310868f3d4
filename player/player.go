/*
Package player turns move-selection strategies into players that a referee
can talk to with move names ("D4", "PASS").*/
package player

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Player is what a referee talks to
type Player interface {
	Name() string
	NewGame(color weiqi.Color) error
	GenMove(ctx context.Context) (string, error)
	PlayMove(move string) error
	EndGame(winner weiqi.Color)
}

// Strategy picks a move for the side to move. It may push and pop on g but
// must leave it as it found it.
type Strategy interface {
	Name() string
	SelectMove(ctx context.Context, g *weiqi.Game) (int, error)
}

// Agent is a Player backed by a Strategy and its own copy of the game
type Agent struct {
	name     string
	strategy Strategy
	opts     []weiqi.Option
	game     *weiqi.Game
	color    weiqi.Color
	// Movetime bounds each GenMove when positive
	Movetime time.Duration
}

var _ Player = (*Agent)(nil)

// NewAgent checks the game options once so later games cannot fail
func NewAgent(name string, s Strategy, opts ...weiqi.Option) (*Agent, error) {
	if s == nil {
		return nil, errors.New("player: nil strategy")
	}
	g, err := weiqi.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = s.Name()
	}
	return &Agent{name: name, strategy: s, opts: opts, game: g}, nil
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) Strategy() Strategy { return a.strategy }

func (a *Agent) Color() weiqi.Color { return a.color }

// Game returns a copy of the agent's view of the game
func (a *Agent) Game() *weiqi.Game { return a.game.Copy() }

func (a *Agent) NewGame(color weiqi.Color) error {
	if color != weiqi.Black && color != weiqi.White {
		return &weiqi.ConfigurationError{Field: "player color", Value: color, Reason: "must be black or white"}
	}
	a.game.Reset()
	a.color = color
	return nil
}

// GenMove chooses, plays and names a move. A finished game gets "PASS".
func (a *Agent) GenMove(ctx context.Context) (string, error) {
	if a.game.IsGameOver() {
		log.Warn().Str("player", a.name).Msg("asked to move after the game is over")
		return PassName, nil
	}
	if a.color != weiqi.Empty && a.game.Turn() != a.color {
		return "", errors.Errorf("player %s: asked to move for %s", a.name, a.game.Turn())
	}
	if a.Movetime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Movetime)
		defer cancel()
	}

	m, err := a.strategy.SelectMove(ctx, a.game)
	if err != nil {
		return "", errors.Wrapf(err, "player %s", a.name)
	}
	if err := a.game.Push(m); err != nil {
		return "", errors.Wrapf(err, "player %s chose an illegal move", a.name)
	}
	name := FormatMove(m, a.game.Size())
	log.Debug().Str("player", a.name).Str("move", name).Msg("genmove")
	return name, nil
}

// PlayMove records the opponent's move
func (a *Agent) PlayMove(move string) error {
	m, err := ParseMove(move, a.game.Size())
	if err != nil {
		return errors.Wrapf(err, "player %s", a.name)
	}
	if err := a.game.Push(m); err != nil {
		return errors.Wrapf(err, "player %s: opponent move %s", a.name, move)
	}
	return nil
}

func (a *Agent) EndGame(winner weiqi.Color) {
	log.Info().
		Str("player", a.name).
		Str("color", a.color.String()).
		Bool("won", winner == a.color).
		Msg("game-over")
}

// NextMove replays history on a fresh board and picks a move for color
// within budget (no limit when zero). The agent's own game is not touched.
func (a *Agent) NextMove(ctx context.Context, history []string, color weiqi.Color, budget time.Duration) (string, error) {
	g, err := weiqi.NewGame(a.opts...)
	if err != nil {
		return "", err
	}
	for i, name := range history {
		m, err := ParseMove(name, g.Size())
		if err != nil {
			return "", errors.Wrapf(err, "history move %d", i+1)
		}
		if err := g.Push(m); err != nil {
			return "", errors.Wrapf(err, "history move %d (%s)", i+1, name)
		}
	}
	if g.IsGameOver() {
		return PassName, nil
	}
	if g.Turn() != color {
		return "", errors.Errorf("player %s: %s is not to move after %d moves", a.name, color, len(history))
	}
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}
	m, err := a.strategy.SelectMove(ctx, g)
	if err != nil {
		return "", errors.Wrapf(err, "player %s", a.name)
	}
	if err := g.Check(m); err != nil {
		return "", errors.Wrapf(err, "player %s chose an illegal move", a.name)
	}
	return FormatMove(m, g.Size()), nil
}
