package search

import "github.com/dodgebc/weiqi-agents/weiqi"

type ttFlag int8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

// maxTTEntries bounds the table, later positions are simply not stored
const maxTTEntries = 1 << 20

// ttKey is everything the value of a node depends on under simple ko: the
// stones, the side to move, the ko point, the passes that end the game and
// the captures the evaluation counts
type ttKey struct {
	hash     uint64
	turn     weiqi.Color
	ko       int
	passes   int
	captures [2]int
}

type ttEntry struct {
	depth int
	score float64
	flag  ttFlag
	move  int
}

func keyOf(g *weiqi.Game) ttKey {
	return ttKey{
		hash:     g.Hash(),
		turn:     g.Turn(),
		ko:       g.Ko(),
		passes:   g.Passes(),
		captures: [2]int{g.Captures(weiqi.Black), g.Captures(weiqi.White)},
	}
}

// transpositions lives for one Search call and is shared by its iterations
type transpositions map[ttKey]ttEntry

// lookup returns the stored entry for g. Terminal scores depend on the depth
// left, so a score is only reused at the exact depth it was searched to.
func (tt transpositions) lookup(k ttKey, depth int) (ttEntry, bool, bool) {
	e, ok := tt[k]
	if !ok {
		return e, false, false
	}
	return e, true, e.depth == depth
}

// store keeps the deepest entry for a position, the newer one on equal depth
func (tt transpositions) store(k ttKey, e ttEntry) {
	if old, ok := tt[k]; ok {
		if e.depth < old.depth {
			return
		}
	} else if len(tt) >= maxTTEntries {
		return
	}
	tt[k] = e
}

// ordered puts first at the front of moves, keeping the rest in order
func ordered(moves []int, first int) []int {
	for i, m := range moves {
		if m != first {
			continue
		}
		copy(moves[1:i+1], moves[:i])
		moves[0] = first
		break
	}
	return moves
}
