package montecarlo

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

const (
	rngBufSize = 1024
	rngRounds  = 12
)

// newRNG derives the generator of one candidate from the search seed
func newRNG(seed int64, candidate int) *frand.RNG {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key[0:8], uint64(seed))
	binary.LittleEndian.PutUint64(key[8:16], uint64(candidate))
	return frand.NewCustom(key, rngBufSize, rngRounds)
}

// playout plays random moves on a private board and undoes them afterwards
type playout struct {
	board    *weiqi.Game
	rng      *frand.RNG
	maxDepth int
	strict   bool
	moves    []int
}

// run plays one game out and scores it for color: win 1, draw 0.5, loss 0
func (p *playout) run(color weiqi.Color) float64 {
	depth := 0
	for depth < p.maxDepth && !p.board.IsGameOver() {
		if !p.step() {
			break
		}
		depth++
	}
	result := p.board.Result()
	for ; depth > 0; depth-- {
		p.board.MustPop()
	}
	switch result {
	case color:
		return 1
	case weiqi.Draw:
		return 0.5
	}
	return 0
}

// step pushes a random stone that does not fill one of the mover's own eyes,
// dropping any the board rejects, and passes when none is left
func (p *playout) step() bool {
	b := p.board
	var all []int
	if p.strict {
		all = b.LegalMoves()
	} else {
		all = b.WeakLegalMoves()
	}
	p.moves = p.moves[:0]
	for _, m := range all {
		if m != weiqi.Pass && !b.IsEye(m, b.Turn()) {
			p.moves = append(p.moves, m)
		}
	}
	for len(p.moves) > 0 {
		i := p.rng.Intn(len(p.moves))
		if b.Push(p.moves[i]) == nil {
			return true
		}
		last := len(p.moves) - 1
		p.moves[i] = p.moves[last]
		p.moves = p.moves[:last]
	}
	return b.Push(weiqi.Pass) == nil
}
