package weiqi

import (
	"math/rand"
	"strings"
)

// maximum precomputed hash table size
const preMaxSize = MaxSize

// Zobrist keys, two per point. Seeded so hashes are stable between runs.
var preHashTable []uint64

func init() {
	r := rand.New(rand.NewSource(1))
	preHashTable = make([]uint64, preMaxSize*preMaxSize*2)
	for i := range preHashTable {
		preHashTable[i] = r.Uint64()
	}
}

func zobrist(p int, c Color) uint64 {
	return preHashTable[p*2+c.index()]
}

// board holds the stones and the flood fill scratch space
type board struct {
	size  int
	cells []Color
	hash  uint64
	adj   [][]int // orthogonal neighbours, shared read-only between copies

	marks []uint32
	epoch uint32
}

func newBoard(size int) *board {
	b := &board{size: size}
	b.cells = make([]Color, size*size)
	b.marks = make([]uint32, size*size)
	b.adj = make([][]int, size*size)
	for p := range b.adj {
		x, y := p%size, p/size
		n := make([]int, 0, 4)
		if x+1 < size {
			n = append(n, p+1)
		}
		if x > 0 {
			n = append(n, p-1)
		}
		if y+1 < size {
			n = append(n, p+size)
		}
		if y > 0 {
			n = append(n, p-size)
		}
		b.adj[p] = n
	}
	return b
}

// exists checks if the point is on the board
func (b *board) exists(p int) bool {
	return p >= 0 && p < len(b.cells)
}

// place puts a stone and updates the board hash
func (b *board) place(p int, c Color) {
	b.cells[p] = c
	b.hash ^= zobrist(p, c)
}

// remove takes a stone off and updates the board hash
func (b *board) remove(p int) {
	b.hash ^= zobrist(p, b.cells[p])
	b.cells[p] = Empty
}

// clear removes all stones and resets hash
func (b *board) clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.hash = 0
}

// nextEpoch starts a new flood fill without clearing the marks
func (b *board) nextEpoch() uint32 {
	b.epoch++
	if b.epoch == 0 {
		for i := range b.marks {
			b.marks[i] = 0
		}
		b.epoch = 1
	}
	return b.epoch
}

// chain appends the stones connected to p and returns the liberty count
func (b *board) chain(p int, stones []int) ([]int, int) {
	color := b.cells[p]
	e := b.nextEpoch()
	start := len(stones)
	stones = append(stones, p)
	b.marks[p] = e
	libs := 0
	for i := start; i < len(stones); i++ {
		for _, n := range b.adj[stones[i]] {
			if b.marks[n] == e {
				continue
			}
			switch b.cells[n] {
			case color:
				b.marks[n] = e
				stones = append(stones, n)
			case Empty:
				b.marks[n] = e
				libs++
			}
		}
	}
	return stones, libs
}

// chainIfDead stops expanding as soon as a liberty is found (for speed)
func (b *board) chainIfDead(p int, stones []int) ([]int, bool) {
	color := b.cells[p]
	e := b.nextEpoch()
	start := len(stones)
	stones = append(stones, p)
	b.marks[p] = e
	for i := start; i < len(stones); i++ {
		for _, n := range b.adj[stones[i]] {
			switch b.cells[n] {
			case Empty:
				return stones[:start], false
			case color:
				if b.marks[n] != e {
					b.marks[n] = e
					stones = append(stones, n)
				}
			}
		}
	}
	return stones, true
}

// region appends the empty points connected to p and reports which colors border them
func (b *board) region(p int, points []int) ([]int, bool, bool) {
	e := b.nextEpoch()
	start := len(points)
	points = append(points, p)
	b.marks[p] = e
	var black, white bool
	for i := start; i < len(points); i++ {
		for _, n := range b.adj[points[i]] {
			switch b.cells[n] {
			case Black:
				black = true
			case White:
				white = true
			default:
				if b.marks[n] != e {
					b.marks[n] = e
					points = append(points, n)
				}
			}
		}
	}
	return points, black, white
}

func (b *board) equals(b2 *board) bool {
	if b.size != b2.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != b2.cells[i] {
			return false
		}
	}
	return true
}

func (b *board) copy() *board {
	b2 := &board{size: b.size, hash: b.hash, adj: b.adj}
	b2.cells = make([]Color, len(b.cells))
	copy(b2.cells, b.cells)
	b2.marks = make([]uint32, len(b.marks))
	return b2
}

// star points for the usual board sizes
func hoshi(size int) []int {
	var lines []int
	switch size {
	case 9:
		lines = []int{2, 6}
	case 13:
		lines = []int{3, 9}
	case 19:
		lines = []int{3, 9, 15}
	}
	var points []int
	for _, y := range lines {
		for _, x := range lines {
			points = append(points, y*size+x)
		}
	}
	if size == 9 || size == 13 {
		points = append(points, (size/2)*size+size/2)
	}
	return points
}

func (b *board) String() string {
	crosses := make(map[int]bool)
	for _, p := range hoshi(b.size) {
		crosses[p] = true
	}

	var sb strings.Builder
	header := "   "
	for x := 0; x < b.size; x++ {
		header += string(columnLetters[x]) + " "
	}
	sb.WriteString(header + "\n")
	for y := b.size - 1; y >= 0; y-- {
		label := rowLabel(y)
		sb.WriteString(label + " ")
		for x := 0; x < b.size; x++ {
			p := y*b.size + x
			c := b.cells[p]
			if c == Empty && crosses[p] {
				sb.WriteString("+ ")
			} else {
				sb.WriteByte(c.Symbol())
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strings.TrimSpace(label) + "\n")
	}
	sb.WriteString(header + "\n")
	return sb.String()
}

// columnLetters skips I, as on a real board
const columnLetters = "ABCDEFGHJKLMNOPQRST"

func rowLabel(y int) string {
	n := y + 1
	if n < 10 {
		return " " + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
