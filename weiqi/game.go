/*
Package weiqi implements Go game logic for square boards.

Ko rules available:

    simple (default)     "simple"      (no immediate recapture)
    positional superko   "positional"  (no earlier position may repeat)
    unrestricted         "none"        (no ko rule)

Suicide is always forbidden. Moves are flat indices y*size+x with y counted
from the bottom row, and Pass is -1.*/
package weiqi

// undo holds what Pop needs to reverse one move
type undo struct {
	move     int
	color    Color
	captured int // start of this move's stones on the capture stack
	ko       int
	passes   int
}

// Game stores Go game information and its methods allow for game control
type Game struct {
	// game state
	board    *board
	turn     Color
	ko       int
	passes   int
	stones   [2]int
	captures [2]int // stones captured by each color

	// game history
	history  []uint64 // position hash after each move, history[0] is the start
	seen     map[uint64]int
	trail    []undo
	capStack []int

	// game rules
	komi   float64
	koRule KoRule

	// these eliminate new allocations on each turn
	work  []int
	table groupTable
}

// NewGame starts a new 9x9 game with simple ko and no komi unless configured
func NewGame(opts ...Option) (*Game, error) {
	o := options{size: DefaultSize, ko: KoSimple}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	g := &Game{
		board:  newBoard(o.size),
		komi:   o.komi,
		koRule: o.ko,
	}
	g.Reset()
	return g, nil
}

// MustNewGame is NewGame for options known to be valid
func MustNewGame(opts ...Option) *Game {
	g, err := NewGame(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// SetRules configures the ko rule by name (see ParseKoRule)
func (g *Game) SetRules(ruleset string) error {
	r, err := ParseKoRule(ruleset)
	if err != nil {
		return err
	}
	g.koRule = r
	g.table.ok = false
	return nil
}

// Reset returns the game to its starting state
func (g *Game) Reset() {
	g.board.clear()
	g.turn = Black
	g.ko = Pass
	g.passes = 0
	g.stones = [2]int{}
	g.captures = [2]int{}
	g.trail = g.trail[:0]
	g.capStack = g.capStack[:0]
	g.history = append(g.history[:0], g.board.hash)
	g.seen = map[uint64]int{g.board.hash: 1}
	g.table.ok = false
}

// Push plays a move for the side to move if it is legal.
// On error the game is left exactly as it was.
func (g *Game) Push(m int) error {
	color := g.turn
	if g.IsGameOver() {
		return &IllegalMoveError{m, color, ErrGameOver}
	}
	u := undo{move: m, color: color, captured: len(g.capStack), ko: g.ko, passes: g.passes}

	if m == Pass {
		g.passes++
		g.ko = Pass
	} else {
		if err := g.place(m, color); err != nil {
			return &IllegalMoveError{m, color, err}
		}
		captured := len(g.capStack) - u.captured
		g.ko = g.koAfter(m, captured)
		g.passes = 0
		g.stones[color.index()]++
		g.stones[(-color).index()] -= captured
		g.captures[color.index()] += captured
	}

	g.trail = append(g.trail, u)
	g.history = append(g.history, g.board.hash)
	g.seen[g.board.hash]++
	g.turn = -color
	g.table.ok = false
	return nil
}

// Pop exactly reverses the last Push
func (g *Game) Pop() error {
	if len(g.trail) == 0 {
		return ErrNothingToUndo
	}
	u := g.trail[len(g.trail)-1]
	g.trail = g.trail[:len(g.trail)-1]

	h := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	if g.seen[h]--; g.seen[h] <= 0 {
		delete(g.seen, h)
	}

	if u.move != Pass {
		captured := len(g.capStack) - u.captured
		g.unplace(u.move, u.color, u.captured)
		g.stones[u.color.index()]--
		g.stones[(-u.color).index()] += captured
		g.captures[u.color.index()] -= captured
	}
	g.ko = u.ko
	g.passes = u.passes
	g.turn = u.color
	g.table.ok = false
	return nil
}

// MustPop is Pop for callers that just pushed, where an empty undo log
// means the game was corrupted
func (g *Game) MustPop() {
	if err := g.Pop(); err != nil {
		panic(err)
	}
}

// Check checks move legality but does not alter the game state
func (g *Game) Check(m int) error {
	color := g.turn
	if g.IsGameOver() {
		return &IllegalMoveError{m, color, ErrGameOver}
	}
	if m == Pass {
		return nil
	}
	start := len(g.capStack)
	if err := g.place(m, color); err != nil {
		return &IllegalMoveError{m, color, err}
	}
	g.unplace(m, color, start)
	return nil
}

// Setup places a stone without turn or ko checks, for building positions.
// Opposing chains left without liberties are removed; occupied points and
// suicide are still rejected. Only allowed before the first move.
func (g *Game) Setup(c Color, p int) error {
	if c != Black && c != White {
		return &ConfigurationError{Field: "setup color", Value: c, Reason: "must be black or white"}
	}
	if len(g.trail) > 0 {
		return &IllegalMoveError{p, c, ErrSetupAfterMoves}
	}
	saved := g.koRule
	g.koRule = KoNone
	err := g.place(p, c)
	g.koRule = saved
	if err != nil {
		return &IllegalMoveError{p, c, err}
	}
	captured := len(g.capStack)
	g.stones[c.index()]++
	g.stones[(-c).index()] -= captured
	g.capStack = g.capStack[:0]

	g.history = append(g.history[:0], g.board.hash)
	g.seen = map[uint64]int{g.board.hash: 1}
	g.table.ok = false
	return nil
}

// SetTurn chooses the side to move, only allowed before the first move
func (g *Game) SetTurn(c Color) error {
	if c != Black && c != White {
		return &ConfigurationError{Field: "turn", Value: c, Reason: "must be black or white"}
	}
	if len(g.trail) > 0 {
		return ErrSetupAfterMoves
	}
	g.turn = c
	g.table.ok = false
	return nil
}

// place puts a stone for color at m and resolves captures.
// On error the board is left untouched.
func (g *Game) place(m int, color Color) error {
	b := g.board
	if !b.exists(m) {
		return ErrOutsideBoard
	}
	if b.cells[m] != Empty {
		return ErrVertexNotEmpty
	}
	if g.koRule == KoSimple && m == g.ko {
		return ErrKo
	}

	start := len(g.capStack)
	b.place(m, color)
	for _, n := range b.adj[m] {
		if b.cells[n] != -color {
			continue
		}
		var dead bool
		g.work, dead = b.chainIfDead(n, g.work[:0])
		if dead {
			for _, s := range g.work {
				b.remove(s)
			}
			g.capStack = append(g.capStack, g.work...)
		}
	}

	if len(g.capStack) == start {
		var dead bool
		g.work, dead = b.chainIfDead(m, g.work[:0])
		if dead {
			b.remove(m)
			return ErrSuicide
		}
	}

	if g.koRule == KoPositional && g.seen[b.hash] > 0 {
		g.unplace(m, color, start)
		return ErrPositionalSuperko
	}
	return nil
}

// unplace removes the stone at m and restores what it captured
func (g *Game) unplace(m int, color Color, start int) {
	b := g.board
	for _, s := range g.capStack[start:] {
		b.place(s, -color)
	}
	g.capStack = g.capStack[:start]
	b.remove(m)
}

// koAfter finds the point an immediate recapture would be played at.
// Only a single stone capturing a single stone and left in atari makes one.
func (g *Game) koAfter(m, captured int) int {
	if captured != 1 {
		return Pass
	}
	var libs int
	g.work, libs = g.board.chain(m, g.work[:0])
	if len(g.work) != 1 || libs != 1 {
		return Pass
	}
	return g.capStack[len(g.capStack)-1]
}

// groups returns the chain table of the current position
func (g *Game) groups() *groupTable {
	if !g.table.ok {
		g.table.build(g.board)
	}
	return &g.table
}

// Copy returns an independent game that can be pushed and popped separately
func (g *Game) Copy() *Game {
	g2 := &Game{
		board:    g.board.copy(),
		turn:     g.turn,
		ko:       g.ko,
		passes:   g.passes,
		stones:   g.stones,
		captures: g.captures,
		komi:     g.komi,
		koRule:   g.koRule,
	}
	g2.history = append([]uint64(nil), g.history...)
	g2.trail = append([]undo(nil), g.trail...)
	g2.capStack = append([]int(nil), g.capStack...)
	g2.seen = make(map[uint64]int, len(g.seen))
	for h, n := range g.seen {
		g2.seen[h] = n
	}
	return g2
}

// Size is the board width
func (g *Game) Size() int { return g.board.size }

// Turn is the side to move
func (g *Game) Turn() Color { return g.turn }

// Komi is added to White's score
func (g *Game) Komi() float64 { return g.komi }

// KoRule in force
func (g *Game) KoRule() KoRule { return g.koRule }

// Hash is the Zobrist hash of the stones on the board
func (g *Game) Hash() uint64 { return g.board.hash }

// Ko is the point forbidden as an immediate recapture, or Pass
func (g *Game) Ko() int { return g.ko }

// Passes is the number of consecutive passes just played
func (g *Game) Passes() int { return g.passes }

// MoveCount is the number of moves pushed, passes included
func (g *Game) MoveCount() int { return len(g.trail) }

// At returns the color at p (Empty when p is off the board)
func (g *Game) At(p int) Color {
	if !g.board.exists(p) {
		return Empty
	}
	return g.board.cells[p]
}

// Stones counts the stones of color c on the board
func (g *Game) Stones(c Color) int {
	if c == Empty {
		return 0
	}
	return g.stones[c.index()]
}

// Captures counts the stones captured by color c
func (g *Game) Captures(c Color) int {
	if c == Empty {
		return 0
	}
	return g.captures[c.index()]
}

// LastMove returns the last move pushed, false if there is none
func (g *Game) LastMove() (int, bool) {
	if len(g.trail) == 0 {
		return Pass, false
	}
	return g.trail[len(g.trail)-1].move, true
}

// Moves lists every move pushed so far
func (g *Game) Moves() []int {
	moves := make([]int, len(g.trail))
	for i, u := range g.trail {
		moves[i] = u.move
	}
	return moves
}

// Point converts column x and row y (both from 0, row 0 at the bottom)
func (g *Game) Point(x, y int) int {
	if x < 0 || y < 0 || x >= g.board.size || y >= g.board.size {
		return Pass
	}
	return y*g.board.size + x
}

// XY splits a point into column and row
func (g *Game) XY(p int) (int, int) {
	return p % g.board.size, p / g.board.size
}

// Neighbors lists the orthogonal neighbours of p
func (g *Game) Neighbors(p int) []int {
	if !g.board.exists(p) {
		return nil
	}
	return append([]int(nil), g.board.adj[p]...)
}

// Group lists the stones connected to p, nil for an empty point
func (g *Game) Group(p int) []int {
	if g.At(p) == Empty {
		return nil
	}
	return newGroup(p, g.board).stones
}

// Liberties counts the liberties of the chain at p, 0 for an empty point
func (g *Game) Liberties(p int) int {
	if g.At(p) == Empty {
		return 0
	}
	return g.groups().liberties(p)
}

// LibertyTotals sums the liberties of every chain of each color
func (g *Game) LibertyTotals() (black, white int) {
	t := g.groups()
	for id, libs := range t.libs {
		if t.color[id] == Black {
			black += libs
		} else {
			white += libs
		}
	}
	return black, white
}

func (g *Game) String() string {
	return g.board.String()
}
