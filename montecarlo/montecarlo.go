/*
Package montecarlo ranks the legal moves of a position by the mean outcome
of random playouts. Every candidate gets its own board copy and its own
generator seeded from the search seed, so results do not depend on how the
candidates are spread over workers.*/
package montecarlo

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/dodgebc/weiqi-agents/limit"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Candidate is one root move and its playout statistics
type Candidate struct {
	Move     int
	Wins     float64
	Rollouts int
}

func (c Candidate) WinRate() float64 {
	if c.Rollouts == 0 {
		return 0
	}
	return c.Wins / float64(c.Rollouts)
}

type Result struct {
	Move       int
	WinRate    float64
	Candidates []Candidate
	Rollouts   int
	StopReason limit.StopReason
	Elapsed    time.Duration
}

type Searcher struct {
	cfg     Config
	limiter *limit.Limiter
}

func New(cfg Config) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	limits := limit.DefaultLimits().SetMovetime(cfg.Movetime)
	if cfg.TotalRollouts > 0 {
		limits.SetRollouts(uint64(cfg.TotalRollouts))
	}
	return &Searcher{cfg: cfg, limiter: limit.NewLimiter(limits)}, nil
}

func (s *Searcher) Config() Config {
	return s.cfg
}

// Search never modifies g. Each candidate plays at least one rollout; the
// budget is only checked between rollouts.
func (s *Searcher) Search(ctx context.Context, g *weiqi.Game) (Result, error) {
	if g == nil {
		return Result{}, errors.New("montecarlo: nil game")
	}
	s.limiter.SetContext(ctx)
	s.limiter.Reset()

	if g.IsGameOver() {
		return Result{Move: weiqi.Pass, Elapsed: s.limiter.Elapsed()}, nil
	}
	color := g.Turn()
	moves := g.LegalMoves()
	maxDepth := s.cfg.depthFor(g)
	candidates := make([]Candidate, len(moves))

	var total atomic.Uint64
	var stopped atomic.Bool
	var eg errgroup.Group
	eg.SetLimit(s.cfg.Workers)
	for i, m := range moves {
		i, m := i, m
		board := g.Copy()
		eg.Go(func() error {
			if err := board.Push(m); err != nil {
				return errors.Wrapf(err, "montecarlo: candidate %d", m)
			}
			p := &playout{board: board, rng: newRNG(s.cfg.Seed, i), maxDepth: maxDepth, strict: s.cfg.Strict}
			c := Candidate{Move: m}
			for r := 0; r < s.cfg.Rollouts; r++ {
				if r > 0 && !s.limiter.Ok(0, 0, total.Load()) {
					stopped.Store(true)
					break
				}
				c.Wins += p.run(color)
				c.Rollouts++
				total.Add(1)
			}
			candidates[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Move: moves[0], WinRate: -1, Candidates: candidates, Rollouts: int(total.Load())}
	for _, c := range candidates {
		log.Debug().
			Int("move", c.Move).
			Float64("winrate", c.WinRate()).
			Int("rollouts", c.Rollouts).
			Msg("montecarlo-candidate")
		if c.WinRate() > res.WinRate {
			res.Move, res.WinRate = c.Move, c.WinRate()
		}
	}
	if stopped.Load() {
		s.limiter.EvaluateStopReason(0, 0, total.Load())
		res.StopReason = s.limiter.StopReason()
	}
	res.Elapsed = s.limiter.Elapsed()
	log.Debug().
		Int("move", res.Move).
		Float64("winrate", res.WinRate).
		Int("rollouts", res.Rollouts).
		Dur("elapsed", res.Elapsed).
		Msg("montecarlo-search")
	return res, nil
}
