package player

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodgebc/weiqi-agents/gtp"
	"github.com/dodgebc/weiqi-agents/montecarlo"
	"github.com/dodgebc/weiqi-agents/search"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

func TestMoveNamesRoundTrip(t *testing.T) {
	for _, size := range []int{9, 19} {
		for m := 0; m < size*size; m++ {
			name := FormatMove(m, size)
			back, err := ParseMove(name, size)
			require.NoError(t, err, name)
			assert.Equal(t, m, back)
		}
	}
	assert.Equal(t, "A1", FormatMove(0, 9))
	assert.Equal(t, "J9", FormatMove(80, 9))
	assert.Equal(t, "T19", FormatMove(360, 19))
	assert.Equal(t, PassName, FormatMove(weiqi.Pass, 9))
	assert.Equal(t, "", FormatMove(81, 9))
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" c7 ", 9)
	require.NoError(t, err)
	assert.Equal(t, 6*9+2, m)

	m, err = ParseMove("pass", 9)
	require.NoError(t, err)
	assert.Equal(t, weiqi.Pass, m)

	for _, bad := range []string{"I5", "Z1", "", "A", "AA", "5A", "A+1", "A01", "A-1", "A 1", "A1x"} {
		_, err := ParseMove(bad, 9)
		assert.Error(t, err, bad)
	}
	for _, outside := range []string{"A10", "A0", "K1"} {
		_, err := ParseMove(outside, 9)
		assert.True(t, errors.Is(err, weiqi.ErrOutsideBoard), outside)
	}
}

func TestRandomAgentsPlayAGame(t *testing.T) {
	opts := []weiqi.Option{weiqi.WithSize(5)}
	black, err := NewAgent("", NewRandom(1), opts...)
	require.NoError(t, err)
	white, err := NewAgent("white", NewRandom(2), opts...)
	require.NoError(t, err)
	assert.Equal(t, "random", black.Name())
	assert.Equal(t, "white", white.Name())

	require.NoError(t, black.NewGame(weiqi.Black))
	require.NoError(t, white.NewGame(weiqi.White))

	ctx := context.Background()
	toMove, waiting := black, white
	for i := 0; i < 200 && !black.Game().IsGameOver(); i++ {
		move, err := toMove.GenMove(ctx)
		require.NoError(t, err)
		require.NoError(t, waiting.PlayMove(move))
		assert.Equal(t, black.Game().Hash(), white.Game().Hash())
		toMove, waiting = waiting, toMove
	}
	if black.Game().IsGameOver() {
		move, err := toMove.GenMove(ctx)
		require.NoError(t, err)
		assert.Equal(t, PassName, move)
	}
}

func TestGenMoveAfterGameOver(t *testing.T) {
	a, err := NewAgent("r", NewRandom(3), weiqi.WithSize(5))
	require.NoError(t, err)
	require.NoError(t, a.NewGame(weiqi.White))
	require.NoError(t, a.PlayMove("pass"))
	require.NoError(t, a.PlayMove("pass"))

	move, err := a.GenMove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PassName, move)
	assert.Error(t, a.PlayMove("C3"))
}

func TestGenMoveOutOfTurn(t *testing.T) {
	a, err := NewAgent("r", NewRandom(3))
	require.NoError(t, err)
	require.NoError(t, a.NewGame(weiqi.White))
	_, err = a.GenMove(context.Background())
	assert.Error(t, err)

	var cfgErr *weiqi.ConfigurationError
	assert.True(t, errors.As(a.NewGame(weiqi.Empty), &cfgErr))
}

func TestNewAgentChecksOptions(t *testing.T) {
	_, err := NewAgent("x", NewRandom(1), weiqi.WithSize(1))
	assert.Error(t, err)
	_, err = NewAgent("x", nil)
	assert.Error(t, err)
}

// captureHistory leaves the white stone on E5 in atari with Black to move
var captureHistory = []string{"D5", "E5", "F5", "G7", "E6", "B7"}

func TestNextMoveTakesCapture(t *testing.T) {
	for _, pruning := range []bool{true, false} {
		cfg := search.DefaultConfig()
		cfg.MaxDepth = 1
		var s Strategy
		var err error
		if pruning {
			s, err = NewAlphaBeta(cfg)
		} else {
			s, err = NewMinimax(cfg)
		}
		require.NoError(t, err)
		a, err := NewAgent("", s)
		require.NoError(t, err)

		move, err := a.NextMove(context.Background(), captureHistory, weiqi.Black, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "E4", move, s.Name())
	}
}

func TestNextMoveLeavesAgentAlone(t *testing.T) {
	a, err := NewAgent("", NewRandom(5))
	require.NoError(t, err)
	require.NoError(t, a.NewGame(weiqi.Black))
	before := a.Game().Hash()

	move, err := a.NextMove(context.Background(), captureHistory, weiqi.Black, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, move)
	assert.Equal(t, before, a.Game().Hash())
	assert.Equal(t, 0, a.Game().MoveCount())

	_, err = a.NextMove(context.Background(), captureHistory, weiqi.White, 0)
	assert.Error(t, err)
	_, err = a.NextMove(context.Background(), []string{"D5", "D5"}, weiqi.Black, 0)
	assert.Error(t, err)
	_, err = a.NextMove(context.Background(), []string{"Q5"}, weiqi.White, 0)
	assert.Error(t, err)

	move, err = a.NextMove(context.Background(), []string{"pass", "pass"}, weiqi.Black, 0)
	require.NoError(t, err)
	assert.Equal(t, PassName, move)
}

func TestMonteCarloStrategy(t *testing.T) {
	cfg := montecarlo.DefaultConfig()
	cfg.Rollouts = 4
	cfg.Seed = 9
	s, err := NewMonteCarlo(cfg)
	require.NoError(t, err)
	a, err := NewAgent("", s, weiqi.WithSize(5))
	require.NoError(t, err)
	assert.Equal(t, "montecarlo", a.Name())

	first, err := a.NextMove(context.Background(), []string{"C3"}, weiqi.White, 0)
	require.NoError(t, err)
	second, err := a.NextMove(context.Background(), []string{"C3"}, weiqi.White, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cfg.Rollouts = 0
	_, err = NewMonteCarlo(cfg)
	assert.Error(t, err)
}

// scriptedEngine records commands and answers genmove from a script
type scriptedEngine struct {
	commands []string
	replies  []string
}

func (e *scriptedEngine) BoardSize(n int) error {
	e.commands = append(e.commands, fmt.Sprintf("boardsize %d", n))
	return nil
}

func (e *scriptedEngine) ClearBoard() error {
	e.commands = append(e.commands, "clear_board")
	return nil
}

func (e *scriptedEngine) Komi(komi float64) error {
	e.commands = append(e.commands, fmt.Sprintf("komi %g", komi))
	return nil
}

func (e *scriptedEngine) Play(c weiqi.Color, vertex string) error {
	e.commands = append(e.commands, fmt.Sprintf("play %s %s", c, vertex))
	return nil
}

func (e *scriptedEngine) GenMove(c weiqi.Color) (string, error) {
	e.commands = append(e.commands, fmt.Sprintf("genmove %s", c))
	reply := e.replies[0]
	e.replies = e.replies[1:]
	return reply, nil
}

func TestExternalKeepsEngineInStep(t *testing.T) {
	e := &scriptedEngine{replies: []string{"c3", "pass", "resign"}}
	s := NewExternal("", e)
	assert.Equal(t, "gtp", s.Name())

	g := weiqi.MustNewGame()
	require.NoError(t, g.Push(mustParse(t, "D5")))
	require.NoError(t, g.Push(mustParse(t, "E5")))

	m, err := s.SelectMove(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "C3", FormatMove(m, 9))
	assert.Equal(t, []string{
		"boardsize 9",
		"clear_board",
		"komi 0",
		"play black D5",
		"play white E5",
		"genmove black",
	}, e.commands)

	// only the new move is sent
	e.commands = nil
	require.NoError(t, g.Push(m))
	require.NoError(t, g.Push(mustParse(t, "F5")))
	m, err = s.SelectMove(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, weiqi.Pass, m)
	assert.Equal(t, []string{"play white F5", "genmove black"}, e.commands)

	// a different game starts the engine over
	e.commands = nil
	g.Reset()
	_, err = s.SelectMove(context.Background(), g)
	assert.True(t, errors.Is(err, gtp.ErrResign))
	assert.Equal(t, []string{"boardsize 9", "clear_board", "komi 0", "genmove black"}, e.commands)
}

func mustParse(t *testing.T, name string) int {
	t.Helper()
	m, err := ParseMove(name, 9)
	require.NoError(t, err)
	return m
}
