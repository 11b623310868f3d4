package weiqi

import "strconv"

// IsGameOver is true after two consecutive passes. A side with nowhere
// legal to put a stone still has to pass.
func (g *Game) IsGameOver() bool {
	return g.passes >= 2
}

// Result picks the winner with a quick local count: stones on the board plus
// empty points whose occupied neighbours all have one color, komi to White.
// Empty points surrounded only by empty points count for nobody, so a large
// open area can make Result disagree with Score.
func (g *Game) Result() Color {
	black := float64(g.stones[Black.index()])
	white := float64(g.stones[White.index()]) + g.komi
	b := g.board
	for p, c := range b.cells {
		if c != Empty {
			continue
		}
		switch g.localOwner(p) {
		case Black:
			black++
		case White:
			white++
		}
	}
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Draw
}

func (g *Game) localOwner(p int) Color {
	owner := Empty
	for _, n := range g.board.adj[p] {
		c := g.board.cells[n]
		if c == Empty {
			continue
		}
		if owner != Empty && c != owner {
			return Empty
		}
		owner = c
	}
	return owner
}

// Territory flood fills the empty regions. A region belongs to a color only
// if every stone bordering it has that color; everything else is dame.
func (g *Game) Territory() (black, white, dame int) {
	b := g.board
	done := make([]bool, len(b.cells))
	var region []int
	for p, c := range b.cells {
		if c != Empty || done[p] {
			continue
		}
		var byBlack, byWhite bool
		region, byBlack, byWhite = b.region(p, region[:0])
		for _, q := range region {
			done[q] = true
		}
		switch {
		case byBlack && !byWhite:
			black += len(region)
		case byWhite && !byBlack:
			white += len(region)
		default:
			dame += len(region)
		}
	}
	return black, white, dame
}

// Score is the area score (stones plus territory), komi to White
func (g *Game) Score() (black, white float64) {
	tb, tw, _ := g.Territory()
	black = float64(g.stones[Black.index()] + tb)
	white = float64(g.stones[White.index()]+tw) + g.komi
	return black, white
}

// FinalGoScore formats Score as "B+x", "W+x" or "0"
func (g *Game) FinalGoScore() string {
	black, white := g.Score()
	switch d := black - white; {
	case d > 0:
		return "B+" + strconv.FormatFloat(d, 'f', -1, 64)
	case d < 0:
		return "W+" + strconv.FormatFloat(-d, 'f', -1, 64)
	}
	return "0"
}
