package montecarlo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodgebc/weiqi-agents/limit"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

func smallGame(t *testing.T) *weiqi.Game {
	g := weiqi.MustNewGame(weiqi.WithSize(5))
	for _, m := range []int{12, 7, 11, 13, 17} {
		require.NoError(t, g.Push(m))
	}
	return g
}

func TestConfigValidate(t *testing.T) {
	var cfgErr *weiqi.ConfigurationError
	for _, cfg := range []Config{
		{Rollouts: 0, Workers: 1},
		{Rollouts: 1, Workers: 0},
		{Rollouts: 1, Workers: 1, MaxRolloutDepth: -1},
		{Rollouts: 1, Workers: 1, Movetime: -1},
	} {
		_, err := New(cfg)
		assert.True(t, errors.As(err, &cfgErr), "config %+v gave %v", cfg, err)
	}
	_, err := New(DefaultConfig())
	assert.NoError(t, err)
}

func TestSearchIsDeterministic(t *testing.T) {
	g := smallGame(t)

	cfg := DefaultConfig()
	cfg.Rollouts = 4
	cfg.Seed = 42
	one, err := New(cfg)
	require.NoError(t, err)
	cfg.Workers = 4
	four, err := New(cfg)
	require.NoError(t, err)

	r1, err := one.Search(context.Background(), g)
	require.NoError(t, err)
	r2, err := one.Search(context.Background(), g)
	require.NoError(t, err)
	r3, err := four.Search(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, r1.Move, r2.Move)
	assert.Equal(t, r1.Candidates, r2.Candidates)
	assert.Equal(t, r1.Move, r3.Move)
	assert.Equal(t, r1.WinRate, r3.WinRate)
	assert.Equal(t, r1.Candidates, r3.Candidates)
}

func TestSearchStatistics(t *testing.T) {
	g := smallGame(t)
	hash, moves := g.Hash(), g.MoveCount()

	cfg := DefaultConfig()
	cfg.Rollouts = 3
	cfg.Workers = 2
	s, err := New(cfg)
	require.NoError(t, err)
	res, err := s.Search(context.Background(), g)
	require.NoError(t, err)

	legal := g.LegalMoves()
	require.Len(t, res.Candidates, len(legal))
	best := -1.0
	for i, c := range res.Candidates {
		assert.Equal(t, legal[i], c.Move)
		assert.Equal(t, 3, c.Rollouts)
		assert.True(t, c.WinRate() >= 0 && c.WinRate() <= 1)
		if c.WinRate() > best {
			best = c.WinRate()
		}
	}
	assert.Equal(t, best, res.WinRate)
	for _, c := range res.Candidates {
		if c.WinRate() == best {
			assert.Equal(t, c.Move, res.Move, "ties go to the first candidate")
			break
		}
	}
	assert.Equal(t, 3*len(legal), res.Rollouts)
	assert.Equal(t, limit.StopNone, res.StopReason)
	assert.Equal(t, hash, g.Hash())
	assert.Equal(t, moves, g.MoveCount())
	assert.True(t, g.IsLegal(res.Move))
}

func TestCancelledSearchRunsOneRolloutEach(t *testing.T) {
	g := smallGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Rollouts = 10
	s, err := New(cfg)
	require.NoError(t, err)
	res, err := s.Search(ctx, g)
	require.NoError(t, err)
	for _, c := range res.Candidates {
		assert.Equal(t, 1, c.Rollouts)
	}
	assert.True(t, res.StopReason&limit.StopInterrupt != 0)
	assert.True(t, g.IsLegal(res.Move))
}

func TestTotalRolloutsBudget(t *testing.T) {
	g := smallGame(t)
	cfg := DefaultConfig()
	cfg.Rollouts = 10
	cfg.TotalRollouts = 12
	s, err := New(cfg)
	require.NoError(t, err)
	res, err := s.Search(context.Background(), g)
	require.NoError(t, err)

	// one worker takes the candidates in order
	require.Greater(t, len(res.Candidates), 2)
	assert.Equal(t, 10, res.Candidates[0].Rollouts)
	assert.Equal(t, 2, res.Candidates[1].Rollouts)
	for _, c := range res.Candidates[2:] {
		assert.Equal(t, 1, c.Rollouts)
	}
	assert.Equal(t, 12+len(res.Candidates)-2, res.Rollouts)
	assert.Equal(t, limit.StopRollouts, res.StopReason)

	cfg.TotalRollouts = -1
	_, err = New(cfg)
	assert.Error(t, err)
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

func TestPlayoutKeepsOwnEyes(t *testing.T) {
	// Black owns the whole 3x3 board apart from two eyes
	g := weiqi.MustNewGame(weiqi.WithSize(3))
	for _, p := range []int{1, 2, 3, 4, 5, 6, 7} {
		require.NoError(t, g.Setup(weiqi.Black, p))
	}
	p := &playout{board: g, rng: newRNG(1, 0), maxDepth: 10}
	require.True(t, p.step())
	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, weiqi.Pass, last)
}

func TestPlayoutRestoresBoard(t *testing.T) {
	g := smallGame(t)
	hash, moves := g.Hash(), g.MoveCount()
	p := &playout{board: g, rng: newRNG(7, 3), maxDepth: 50}
	for i := 0; i < 5; i++ {
		outcome := p.run(weiqi.Black)
		assert.Contains(t, []float64{0, 0.5, 1}, outcome)
		assert.Equal(t, hash, g.Hash())
		assert.Equal(t, moves, g.MoveCount())
	}
}
