package perm

import (
	"strconv"
	"strings"
)

// Cycles decomposes σ into its disjoint cycles.
//
// Points are scanned in ascending order; each unvisited point is walked
// (current ← σ(current)) until the walk returns to its start, and the walk
// is kept as one cycle when it moved at all. Fixed points are dropped —
// they are implicit self-loops. Cycles are therefore ordered by their
// smallest element, and each cycle starts at its smallest element.
//
// The identity decomposes into the empty cycle list.
//
// Complexity: O(n) time, O(n) space — every point is visited exactly once.
func (p Perm) Cycles() [][]int {
	n := len(p.img)
	visited := make([]bool, n+1)
	var cycles [][]int
	for start := 1; start <= n; start++ {
		if visited[start] {
			continue
		}
		var cycle []int
		for current := start; !visited[current]; current = p.img[current-1] {
			visited[current] = true
			cycle = append(cycle, current)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}

	return cycles
}

// CycleString renders σ in cycle notation: "e" for the identity, else the
// concatenation of each cycle as a parenthesized, space-separated point
// list, in Cycles order.
//
//	MustImages(2, 3, 1, 4).CycleString() == "(1 2 3)"
//
// The string is a canonical fingerprint within a fixed degree; it is not
// unique across degrees (the identity of every degree renders as "e").
func (p Perm) CycleString() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "e"
	}

	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, point := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(point))
		}
		b.WriteByte(')')
	}

	return b.String()
}
