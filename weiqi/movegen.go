package weiqi

// LegalMoves lists every empty point the side to move may play, in ascending
// order, followed by Pass. Pass is always there until the game is over.
func (g *Game) LegalMoves() []int {
	if g.IsGameOver() {
		return nil
	}
	moves := g.placements(true, make([]int, 0, len(g.board.cells)+1))
	return append(moves, Pass)
}

// WeakLegalMoves is LegalMoves without the ko checks. It may contain a ko
// recapture, so the error from Push still has to be checked.
func (g *Game) WeakLegalMoves() []int {
	if g.IsGameOver() {
		return nil
	}
	moves := g.placements(false, make([]int, 0, len(g.board.cells)+1))
	return append(moves, Pass)
}

// IsLegal reports whether Push(m) would succeed
func (g *Game) IsLegal(m int) bool {
	return g.Check(m) == nil
}

// IsEye reports whether p is an empty point surrounded only by stones of color c
func (g *Game) IsEye(p int, c Color) bool {
	if g.At(p) != Empty {
		return false
	}
	for _, n := range g.board.adj[p] {
		if g.board.cells[n] != c {
			return false
		}
	}
	return true
}

// placements appends the non-suicidal empty points, and with strict also
// drops those forbidden by the ko rule
func (g *Game) placements(strict bool, dst []int) []int {
	t := g.groups()
	b := g.board
	for p, c := range b.cells {
		if c != Empty || t.suicide(b, p, g.turn) {
			continue
		}
		if strict && g.koForbids(p) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}

// koForbids checks a non-suicidal empty point against the ko rule
func (g *Game) koForbids(p int) bool {
	switch g.koRule {
	case KoSimple:
		return p == g.ko
	case KoPositional:
		start := len(g.capStack)
		if err := g.place(p, g.turn); err != nil {
			return true
		}
		g.unplace(p, g.turn, start)
	}
	return false
}
