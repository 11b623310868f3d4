/*
Package search implements depth-limited negamax with optional alpha-beta
pruning over a weiqi.Game, using push/pop on a private copy of the game.*/
package search

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dodgebc/weiqi-agents/limit"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Result of a search. The move comes from the deepest completed depth.
type Result struct {
	Move       int
	Score      float64
	Depth      int
	Nodes      uint64
	StopReason limit.StopReason
	Elapsed    time.Duration
}

// Searcher is not safe for concurrent use
type Searcher struct {
	cfg     Config
	limiter *limit.Limiter
	nodes   uint64
	// depth 1 ignores the limiter so there is always a move
	bounded bool
	tt      transpositions
}

func New(cfg Config) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	limits := limit.DefaultLimits().SetDepth(cfg.MaxDepth).SetMovetime(cfg.Movetime)
	return &Searcher{cfg: cfg, limiter: limit.NewLimiter(limits)}, nil
}

func (s *Searcher) Config() Config {
	return s.cfg
}

// Search picks a move for the side to move in g; g itself is never modified
func (s *Searcher) Search(ctx context.Context, g *weiqi.Game) (Result, error) {
	if g == nil {
		return Result{}, errors.New("search: nil game")
	}
	s.limiter.SetContext(ctx)
	s.limiter.Reset()
	s.nodes = 0
	s.tt = nil
	if s.cfg.Transpositions && g.KoRule() != weiqi.KoPositional {
		s.tt = make(transpositions)
	}

	if g.IsGameOver() {
		return Result{Move: weiqi.Pass, Elapsed: s.limiter.Elapsed()}, nil
	}
	work := g.Copy()

	depths := []int{s.cfg.MaxDepth}
	if s.cfg.Iterative {
		depths = depths[:0]
		for d := 1; d <= s.cfg.MaxDepth; d++ {
			depths = append(depths, d)
		}
	}

	var res Result
	for i, depth := range depths {
		s.bounded = s.cfg.Iterative && i > 0
		move, score, ok := s.root(work, depth)
		if !ok {
			log.Debug().Int("depth", depth).Uint64("nodes", s.nodes).Msg("search-interrupted")
			break
		}
		res = Result{Move: move, Score: score, Depth: depth}
		log.Debug().
			Int("depth", depth).
			Int("move", move).
			Float64("score", score).
			Uint64("nodes", s.nodes).
			Dur("elapsed", s.limiter.Elapsed()).
			Msg("search-depth")
		if math.Abs(score) >= WinScore {
			break
		}
	}

	s.limiter.EvaluateStopReason(res.Depth, s.nodes, 0)
	res.Nodes = s.nodes
	res.StopReason = s.limiter.StopReason()
	res.Elapsed = s.limiter.Elapsed()
	if work.MoveCount() != g.MoveCount() {
		return res, errors.Errorf("search: work board left %d moves deep", work.MoveCount()-g.MoveCount())
	}
	return res, nil
}

// root searches the moves of the current position with a full window.
// The first move reaching the best score wins.
func (s *Searcher) root(g *weiqi.Game, depth int) (int, float64, bool) {
	alpha, beta := math.Inf(-1), math.Inf(1)
	best, bestMove := math.Inf(-1), weiqi.Pass
	for i, m := range g.LegalMoves() {
		if err := g.Push(m); err != nil {
			continue
		}
		v, ok := s.negamax(g, depth-1, -beta, -alpha)
		g.MustPop()
		if !ok {
			return bestMove, best, false
		}
		v = -v
		if v > best || i == 0 {
			best, bestMove = v, m
		}
		if best > alpha {
			alpha = best
		}
	}
	return bestMove, best, true
}

// negamax returns the score for the side to move, false when the limiter stopped it
func (s *Searcher) negamax(g *weiqi.Game, depth int, alpha, beta float64) (float64, bool) {
	s.nodes++
	if s.bounded && !s.limiter.Ok(0, s.nodes, 0) {
		return 0, false
	}
	if g.IsGameOver() {
		return terminal(g, depth), true
	}
	if depth == 0 {
		return Evaluate(g, s.cfg.Weights), true
	}

	var key ttKey
	moves := g.LegalMoves()
	alphaOrig := alpha
	if s.tt != nil {
		key = keyOf(g)
		if e, found, exact := s.tt.lookup(key, depth); found {
			if exact {
				switch e.flag {
				case ttExact:
					return e.score, true
				case ttLower:
					alpha = math.Max(alpha, e.score)
				case ttUpper:
					beta = math.Min(beta, e.score)
				}
				if alpha >= beta {
					return e.score, true
				}
			}
			moves = ordered(moves, e.move)
		}
	}

	best, bestMove := math.Inf(-1), weiqi.Pass
	for _, m := range moves {
		if err := g.Push(m); err != nil {
			continue
		}
		v, ok := s.negamax(g, depth-1, -beta, -alpha)
		g.MustPop()
		if !ok {
			return 0, false
		}
		if v = -v; v > best {
			best, bestMove = v, m
		}
		if best > alpha {
			alpha = best
		}
		if s.cfg.Pruning && alpha >= beta {
			break
		}
	}

	if s.tt != nil {
		flag := ttExact
		if s.cfg.Pruning {
			switch {
			case best <= alphaOrig:
				flag = ttUpper
			case best >= beta:
				flag = ttLower
			}
		}
		s.tt.store(key, ttEntry{depth: depth, score: best, flag: flag, move: bestMove})
	}
	return best, true
}
