package search

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodgebc/weiqi-agents/limit"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// at converts a name like "E5" on a 9x9 board
func at(name string) int {
	x := int(name[0] - 'A')
	if name[0] > 'I' {
		x--
	}
	return int(name[1]-'1')*9 + x
}

func setup(t *testing.T, g *weiqi.Game, c weiqi.Color, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, g.Setup(c, at(name)))
	}
}

func randomGame(t *testing.T, size, moves int, seed int64) *weiqi.Game {
	g := weiqi.MustNewGame(weiqi.WithSize(size))
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < moves && !g.IsGameOver(); i++ {
		legal := g.LegalMoves()
		m := legal[r.Intn(len(legal))]
		if m == weiqi.Pass {
			m = legal[0]
		}
		require.NoError(t, g.Push(m))
	}
	return g
}

func TestConfigValidate(t *testing.T) {
	var cfgErr *weiqi.ConfigurationError

	cfg := DefaultConfig()
	cfg.MaxDepth = 0
	_, err := New(cfg)
	assert.True(t, errors.As(err, &cfgErr))

	cfg = DefaultConfig()
	cfg.Movetime = -1
	_, err = New(cfg)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = New(DefaultConfig())
	assert.NoError(t, err)
}

func TestPositionTableMatchesClassic9x9(t *testing.T) {
	classic := []float64{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 2, 2, 2, 1, 2, 2, 2, 0,
		0, 2, 2, 2, 1, 2, 2, 2, 0,
		0, 2, 2, 1, 1, 1, 2, 2, 0,
		0, 1, 1, 1, 1, 1, 1, 1, 0,
		0, 2, 2, 1, 1, 1, 2, 2, 0,
		0, 2, 2, 2, 1, 2, 2, 2, 0,
		0, 2, 2, 2, 1, 2, 2, 2, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, classic, PositionTable(9))
	assert.Len(t, PositionTable(19), 361)
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	g := randomGame(t, 9, 30, 3)
	w := DefaultWeights()
	before := Evaluate(g, w)
	require.NoError(t, g.Push(weiqi.Pass))
	assert.Equal(t, -before, Evaluate(g, w))
}

func TestDepthOneTakesCapture(t *testing.T) {
	for _, pruning := range []bool{true, false} {
		g := weiqi.MustNewGame()
		setup(t, g, weiqi.Black, "D5", "F5", "E6", "C3")
		setup(t, g, weiqi.White, "E5", "G7", "B7")

		cfg := DefaultConfig()
		cfg.MaxDepth = 1
		cfg.Pruning = pruning
		s, err := New(cfg)
		require.NoError(t, err)

		res, err := s.Search(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, at("E4"), res.Move, "pruning=%v", pruning)
		assert.Equal(t, 1, res.Depth)
	}
}

func TestMinimaxAgreesWithAlphaBeta(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := randomGame(t, 5, 8, seed)

		cfg := DefaultConfig()
		cfg.MaxDepth = 3
		cfg.Iterative = false
		cfg.Transpositions = false
		ab, err := New(cfg)
		require.NoError(t, err)
		cfg.Pruning = false
		mm, err := New(cfg)
		require.NoError(t, err)

		r1, err := ab.Search(context.Background(), g)
		require.NoError(t, err)
		r2, err := mm.Search(context.Background(), g)
		require.NoError(t, err)

		assert.Equal(t, r2.Move, r1.Move, "seed %d", seed)
		assert.Equal(t, r2.Score, r1.Score, "seed %d", seed)
		assert.LessOrEqual(t, r1.Nodes, r2.Nodes, "pruning should not visit more nodes")
	}
}

func TestTranspositionsKeepMoveAndScore(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		for _, pruning := range []bool{true, false} {
			g := randomGame(t, 5, 6, seed)

			cfg := DefaultConfig()
			cfg.MaxDepth = 3
			cfg.Pruning = pruning
			with, err := New(cfg)
			require.NoError(t, err)
			cfg.Transpositions = false
			without, err := New(cfg)
			require.NoError(t, err)

			r1, err := with.Search(context.Background(), g)
			require.NoError(t, err)
			r2, err := without.Search(context.Background(), g)
			require.NoError(t, err)

			assert.Equal(t, r2.Move, r1.Move, "seed %d pruning %v", seed, pruning)
			assert.Equal(t, r2.Score, r1.Score, "seed %d pruning %v", seed, pruning)
			if !pruning {
				assert.LessOrEqual(t, r1.Nodes, r2.Nodes, "seed %d", seed)
			}
		}
	}
}

func TestTranspositionsOffUnderSuperko(t *testing.T) {
	g := weiqi.MustNewGame(weiqi.WithSize(5), weiqi.WithKoRule(weiqi.KoPositional))
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	_, err = s.Search(context.Background(), g)
	require.NoError(t, err)
	assert.Nil(t, s.tt)

	g = weiqi.MustNewGame(weiqi.WithSize(5))
	_, err = s.Search(context.Background(), g)
	require.NoError(t, err)
	assert.NotEmpty(t, s.tt)
}

func TestOrderedMovesBestFirst(t *testing.T) {
	assert.Equal(t, []int{7, 1, 4, 9, -1}, ordered([]int{1, 4, 7, 9, -1}, 7))
	assert.Equal(t, []int{-1, 1, 4}, ordered([]int{1, 4, -1}, -1))
	assert.Equal(t, []int{1, 4}, ordered([]int{1, 4}, 6))
}

func TestSearchIsDeterministicAndLeavesGameAlone(t *testing.T) {
	g := randomGame(t, 9, 20, 5)
	hash, moves, turn := g.Hash(), g.MoveCount(), g.Turn()

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	s, err := New(cfg)
	require.NoError(t, err)

	r1, err := s.Search(context.Background(), g)
	require.NoError(t, err)
	r2, err := s.Search(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, r1.Move, r2.Move)
	assert.Equal(t, r1.Score, r2.Score)
	assert.Equal(t, hash, g.Hash())
	assert.Equal(t, moves, g.MoveCount())
	assert.Equal(t, turn, g.Turn())
	assert.True(t, g.IsLegal(r1.Move))
}

func TestCancelledSearchStillMoves(t *testing.T) {
	g := randomGame(t, 9, 10, 9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.MaxDepth = 4
	s, err := New(cfg)
	require.NoError(t, err)

	res, err := s.Search(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth)
	assert.True(t, res.StopReason&limit.StopInterrupt != 0, "stop reason %v", res.StopReason)
	assert.True(t, g.IsLegal(res.Move))
}

func TestCompletedSearchReportsDepth(t *testing.T) {
	g := randomGame(t, 5, 4, 2)
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	s, err := New(cfg)
	require.NoError(t, err)

	res, err := s.Search(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth)
	assert.Equal(t, limit.StopDepth, res.StopReason)
	assert.Greater(t, res.Nodes, uint64(0))
}

func TestSearchFinishedGamePasses(t *testing.T) {
	g := weiqi.MustNewGame()
	require.NoError(t, g.Push(weiqi.Pass))
	require.NoError(t, g.Push(weiqi.Pass))

	s, err := New(DefaultConfig())
	require.NoError(t, err)
	res, err := s.Search(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, weiqi.Pass, res.Move)
}
