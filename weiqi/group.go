package weiqi

// groupTable labels every stone with its chain and the chain's liberty count
type groupTable struct {
	id    []int // chain id per point, -1 when empty
	libs  []int
	size  []int
	color []Color
	ok    bool
}

// build relabels the whole board in one pass
func (t *groupTable) build(b *board) {
	if len(t.id) != len(b.cells) {
		t.id = make([]int, len(b.cells))
	}
	for i := range t.id {
		t.id[i] = -1
	}
	t.libs = t.libs[:0]
	t.size = t.size[:0]
	t.color = t.color[:0]

	var stones []int
	for p, c := range b.cells {
		if c == Empty || t.id[p] >= 0 {
			continue
		}
		var libs int
		stones, libs = b.chain(p, stones[:0])
		id := len(t.libs)
		for _, s := range stones {
			t.id[s] = id
		}
		t.libs = append(t.libs, libs)
		t.size = append(t.size, len(stones))
		t.color = append(t.color, c)
	}
	t.ok = true
}

// liberties of the chain at p, 0 for an empty point
func (t *groupTable) liberties(p int) int {
	if t.id[p] < 0 {
		return 0
	}
	return t.libs[t.id[p]]
}

// suicide reports whether color playing at the empty point p leaves its chain
// without liberties, captures included
func (t *groupTable) suicide(b *board, p int, color Color) bool {
	for _, n := range b.adj[p] {
		switch c := b.cells[n]; c {
		case Empty:
			return false
		case color:
			if t.libs[t.id[n]] > 1 {
				return false
			}
		default:
			if t.libs[t.id[n]] == 1 {
				return false
			}
		}
	}
	return true
}

// group is a chain of connected stones and its liberties
type group struct {
	color     Color
	stones    []int
	liberties []int
}

// newGroup finds all the connected stones from a point
func newGroup(p int, b *board) group {
	g := group{color: b.cells[p]}
	g.stones, _ = b.chain(p, make([]int, 0, 8))
	seen := make(map[int]bool)
	for _, s := range g.stones {
		for _, n := range b.adj[s] {
			if b.cells[n] == Empty && !seen[n] {
				seen[n] = true
				g.liberties = append(g.liberties, n)
			}
		}
	}
	return g
}
