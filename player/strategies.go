package player

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/dodgebc/weiqi-agents/gtp"
	"github.com/dodgebc/weiqi-agents/montecarlo"
	"github.com/dodgebc/weiqi-agents/search"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// SearchStrategy plays the best move of a negamax search
type SearchStrategy struct {
	name     string
	searcher *search.Searcher
}

// NewAlphaBeta searches with pruning
func NewAlphaBeta(cfg search.Config) (*SearchStrategy, error) {
	cfg.Pruning = true
	return newSearchStrategy("alphabeta", cfg)
}

// NewMinimax searches every node
func NewMinimax(cfg search.Config) (*SearchStrategy, error) {
	cfg.Pruning = false
	return newSearchStrategy("minimax", cfg)
}

func newSearchStrategy(name string, cfg search.Config) (*SearchStrategy, error) {
	s, err := search.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &SearchStrategy{name: name, searcher: s}, nil
}

func (s *SearchStrategy) Name() string { return s.name }

func (s *SearchStrategy) SelectMove(ctx context.Context, g *weiqi.Game) (int, error) {
	res, err := s.searcher.Search(ctx, g)
	if err != nil {
		return weiqi.Pass, err
	}
	log.Debug().
		Str("strategy", s.name).
		Int("depth", res.Depth).
		Float64("score", res.Score).
		Uint64("nodes", res.Nodes).
		Stringer("stop", res.StopReason).
		Dur("elapsed", res.Elapsed).
		Msg("select-move")
	return res.Move, nil
}

// MonteCarloStrategy plays the move with the best playout win rate
type MonteCarloStrategy struct {
	searcher *montecarlo.Searcher
}

func NewMonteCarlo(cfg montecarlo.Config) (*MonteCarloStrategy, error) {
	s, err := montecarlo.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "montecarlo")
	}
	return &MonteCarloStrategy{searcher: s}, nil
}

func (s *MonteCarloStrategy) Name() string { return "montecarlo" }

func (s *MonteCarloStrategy) SelectMove(ctx context.Context, g *weiqi.Game) (int, error) {
	res, err := s.searcher.Search(ctx, g)
	if err != nil {
		return weiqi.Pass, err
	}
	log.Debug().
		Str("strategy", s.Name()).
		Float64("winrate", res.WinRate).
		Int("rollouts", res.Rollouts).
		Stringer("stop", res.StopReason).
		Dur("elapsed", res.Elapsed).
		Msg("select-move")
	return res.Move, nil
}

// RandomStrategy plays any legal move, pass included, with equal chance
type RandomStrategy struct {
	rng *frand.RNG
}

func NewRandom(seed int64) *RandomStrategy {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return &RandomStrategy{rng: frand.NewCustom(key, 64, 8)}
}

func (s *RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) SelectMove(_ context.Context, g *weiqi.Game) (int, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return weiqi.Pass, nil
	}
	return moves[s.rng.Intn(len(moves))], nil
}

// ExternalStrategy relays to a GTP engine, keeping the engine's board in
// step with the game it is asked about
type ExternalStrategy struct {
	name   string
	engine gtp.Engine
	size   int
	played []int
}

func NewExternal(name string, engine gtp.Engine) *ExternalStrategy {
	if name == "" {
		name = "gtp"
	}
	return &ExternalStrategy{name: name, engine: engine}
}

func (s *ExternalStrategy) Name() string { return s.name }

func (s *ExternalStrategy) SelectMove(ctx context.Context, g *weiqi.Game) (int, error) {
	if err := ctx.Err(); err != nil {
		return weiqi.Pass, err
	}
	if err := s.sync(g); err != nil {
		return weiqi.Pass, err
	}
	vertex, err := s.engine.GenMove(g.Turn())
	if err != nil {
		return weiqi.Pass, errors.Wrap(err, s.name)
	}
	name, err := gtp.FromVertex(vertex)
	if err != nil {
		return weiqi.Pass, errors.Wrap(err, s.name)
	}
	m, err := ParseMove(name, g.Size())
	if err != nil {
		return weiqi.Pass, errors.Wrap(err, s.name)
	}
	s.played = append(s.played, m)
	return m, nil
}

// sync replays on the engine whatever it has not seen yet, starting over
// when the game is not a continuation of what it has
func (s *ExternalStrategy) sync(g *weiqi.Game) error {
	moves := g.Moves()
	if s.size != g.Size() || !isPrefix(s.played, moves) {
		if err := s.engine.BoardSize(g.Size()); err != nil {
			return errors.Wrap(err, s.name)
		}
		if err := s.engine.ClearBoard(); err != nil {
			return errors.Wrap(err, s.name)
		}
		if err := s.engine.Komi(g.Komi()); err != nil {
			return errors.Wrap(err, s.name)
		}
		s.size = g.Size()
		s.played = s.played[:0]
	}

	// every move switches sides, so the first mover follows from the turn
	color := g.Turn()
	if len(moves)%2 == 1 {
		color = color.Opponent()
	}
	for i, m := range moves {
		c := color
		if i%2 == 1 {
			c = c.Opponent()
		}
		if i < len(s.played) {
			continue
		}
		if err := s.engine.Play(c, gtp.ToVertex(FormatMove(m, g.Size()))); err != nil {
			return errors.Wrap(err, s.name)
		}
		s.played = append(s.played, m)
	}
	return nil
}

func isPrefix(prefix, moves []int) bool {
	if len(prefix) > len(moves) {
		return false
	}
	for i := range prefix {
		if prefix[i] != moves[i] {
			return false
		}
	}
	return true
}
