package search

import (
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// WinScore is the value of a finished game won by the side to move
const WinScore = 1e9

var positionTables = make(map[int][]float64)

func init() {
	for n := weiqi.MinSize; n <= weiqi.MaxSize; n++ {
		positionTables[n] = newPositionTable(n)
	}
}

// newPositionTable scores the edge 0, the centre lines and centre 3x3 1,
// and everything else 2
func newPositionTable(n int) []float64 {
	table := make([]float64, n*n)
	c := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 || y == 0 || x == n-1 || y == n-1:
				table[y*n+x] = 0
			case x == c || y == c:
				table[y*n+x] = 1
			case abs(x-c) <= 1 && abs(y-c) <= 1:
				table[y*n+x] = 1
			default:
				table[y*n+x] = 2
			}
		}
	}
	return table
}

// PositionTable returns the positional weights for a board size (read only)
func PositionTable(size int) []float64 {
	return positionTables[size]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Evaluate scores a position for the side to move
func Evaluate(g *weiqi.Game, w Weights) float64 {
	me := g.Turn()
	opp := me.Opponent()

	stones := float64(g.Stones(me) - g.Stones(opp))
	captures := float64(g.Captures(me) - g.Captures(opp))
	black, white := g.LibertyTotals()
	liberties := float64(black - white)
	if me == weiqi.White {
		liberties = -liberties
	}

	var position float64
	table := PositionTable(g.Size())
	for p, v := range table {
		switch g.At(p) {
		case me:
			position += v
		case opp:
			position -= v
		}
	}

	return w.Stones*stones + w.Liberties*liberties + w.Captures*captures + w.Position*position
}

// terminal scores a finished game, quicker wins score higher
func terminal(g *weiqi.Game, depth int) float64 {
	switch g.Result() {
	case g.Turn():
		return WinScore + float64(depth)
	case weiqi.Draw:
		return 0
	}
	return -WinScore - float64(depth)
}
