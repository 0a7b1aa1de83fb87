package perm

import "strconv"

// maxFactorialArg is the largest n with n! representable in int64.
const maxFactorialArg = 20

// Factorial returns n! as an int64.
//
// Panics for n < 0 and for n > 20 (21! overflows int64); enumeration of
// S_n beyond n = 20 is far outside practical reach anyway.
func Factorial(n int) int64 {
	if n < 0 || n > maxFactorialArg {
		panic("perm: factorial argument out of range: " + strconv.Itoa(n))
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}

	return result
}

// Enumerator is a lazy, finite, restartable producer of all n! elements of
// S_n in lexicographic order over the image row. It is the bounded-memory
// counterpart of Generate: same elements, same order, O(n) live memory.
//
// An Enumerator is a single-goroutine cursor; wrap access in your own
// synchronization if you must share one.
type Enumerator struct {
	n         int
	cur       []int // image row to emit next; nil once exhausted
	remaining int64
}

// NewEnumerator returns an Enumerator positioned at the first permutation
// (the identity). Panics for n < 0 or n > 20, as Factorial does.
func NewEnumerator(n int) *Enumerator {
	e := &Enumerator{n: n}
	e.Reset()

	return e
}

// Reset rewinds the enumerator to the identity permutation. The sequence
// replayed after Reset is identical to the original one.
func (e *Enumerator) Reset() {
	e.cur = make([]int, e.n)
	for i := range e.cur {
		e.cur[i] = i + 1
	}
	e.remaining = Factorial(e.n)
}

// Count returns the total number of elements the enumerator yields per
// pass: n!.
func (e *Enumerator) Count() int64 { return Factorial(e.n) }

// Remaining returns how many elements are left in the current pass.
func (e *Enumerator) Remaining() int64 { return e.remaining }

// Next returns the next permutation and true, or the zero Perm and false
// once the pass is exhausted. Every returned Perm owns its image row;
// callers may retain them indefinitely.
func (e *Enumerator) Next() (Perm, bool) {
	if e.cur == nil {
		return Perm{}, false
	}
	img := make([]int, e.n)
	copy(img, e.cur)
	if !nextLex(e.cur) {
		e.cur = nil
	}
	e.remaining--

	return Perm{img: img}, true
}

// Generate returns all n! elements of S_n as validated Perm values, in
// lexicographic order over the image row. The result is duplicate-free and
// deterministic across runs; callers must not depend on the order beyond
// reproducibility.
//
// Generate is a pure function of n. For large n prefer NewEnumerator:
// materializing S_13 already costs ≈ 6·10⁹ values.
//
// Complexity: O(n·n!) time and memory.
func Generate(n int) []Perm {
	e := NewEnumerator(n)
	out := make([]Perm, 0, int(e.Count()))
	for p, ok := e.Next(); ok; p, ok = e.Next() {
		out = append(out, p)
	}

	return out
}

// nextLex advances a to its lexicographic successor in place, returning
// false when a is already the last (descending) arrangement.
func nextLex(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}
