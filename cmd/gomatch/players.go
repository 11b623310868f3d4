package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/dodgebc/weiqi-agents/gtp"
	"github.com/dodgebc/weiqi-agents/montecarlo"
	"github.com/dodgebc/weiqi-agents/player"
	"github.com/dodgebc/weiqi-agents/search"
)

// seat is a player built for one game, with whatever it holds open
type seat struct {
	player.Player
	close func() error
}

// newSeat builds a fresh player from its command-line name. Every game gets
// its own, so players never share a board between games.
func newSeat(ctx context.Context, a *arguments, kind string, seed int64) (*seat, error) {
	noop := func() error { return nil }

	var s player.Strategy
	switch kind {
	case "alphabeta", "minimax":
		cfg := search.DefaultConfig()
		cfg.MaxDepth = a.depth
		cfg.Movetime = a.movetime
		var err error
		if kind == "alphabeta" {
			s, err = player.NewAlphaBeta(cfg)
		} else {
			s, err = player.NewMinimax(cfg)
		}
		if err != nil {
			return nil, err
		}
	case "montecarlo":
		cfg := montecarlo.DefaultConfig()
		cfg.Rollouts = a.rollouts
		cfg.Movetime = a.movetime
		cfg.Seed = seed
		cfg.Workers = 1
		var err error
		if s, err = player.NewMonteCarlo(cfg); err != nil {
			return nil, err
		}
	case "random":
		s = player.NewRandom(seed)
	default:
		if !strings.HasPrefix(kind, "gtp:") {
			return nil, errors.Errorf("unknown player %q", kind)
		}
		fields := strings.Fields(strings.TrimPrefix(kind, "gtp:"))
		if len(fields) == 0 {
			return nil, errors.Errorf("no engine command in %q", kind)
		}
		proc, err := gtp.StartProcess(ctx, fields[0], fields[1:]...)
		if err != nil {
			return nil, err
		}
		name := fields[0]
		if n, err := proc.Name(); err == nil && n != "" {
			name = n
		}
		agent, err := player.NewAgent(name, player.NewExternal(name, proc), a.gameOptions()...)
		if err != nil {
			proc.Close()
			return nil, err
		}
		return &seat{Player: agent, close: proc.Close}, nil
	}

	agent, err := player.NewAgent("", s, a.gameOptions()...)
	if err != nil {
		return nil, err
	}
	agent.Movetime = a.movetime
	return &seat{Player: agent, close: noop}, nil
}
