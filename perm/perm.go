package perm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Perm is an immutable bijection of {1..n} onto itself.
//
// The backing image row is never exposed or mutated after construction, so
// Perm values may be shared freely across goroutines. The zero value is the
// empty permutation (degree 0), which is its own identity and inverse.
type Perm struct {
	// img[i-1] = σ(i) for i in 1..n.
	img []int
}

// New constructs a Perm from a mapping {1: σ(1), ..., n: σ(n)} and
// validates it. A mapping is a valid permutation exactly when its key set
// and value set are both {1..n} for n = len(mapping).
//
// Returns ErrNotBijective (wrapped, naming the mismatched domain and
// codomain sets) when the mapping is not a bijection of {1..n}.
//
// Complexity: O(n) time, O(n) space. The input map is copied defensively.
func New(mapping map[int]int) (Perm, error) {
	n := len(mapping)
	img := make([]int, n)
	seen := make([]bool, n+1)
	valid := true
	for k, v := range mapping {
		if k < 1 || k > n || v < 1 || v > n || seen[v] {
			valid = false
			break
		}
		seen[v] = true
		img[k-1] = v
	}
	if !valid {
		return Perm{}, fmt.Errorf("%w: domain %v != codomain %v",
			ErrNotBijective, sortedKeys(mapping), sortedValues(mapping))
	}

	return Perm{img: img}, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples
// where the mapping is a compile-time constant.
func MustNew(mapping map[int]int) Perm {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}

	return p
}

// FromImages constructs a Perm from its image row: images[i-1] = σ(i).
// Validation and error behavior match New. The slice is copied defensively.
func FromImages(images []int) (Perm, error) {
	n := len(images)
	seen := make([]bool, n+1)
	for _, v := range images {
		if v < 1 || v > n || seen[v] {
			domain := make([]int, n)
			for i := range domain {
				domain[i] = i + 1
			}

			return Perm{}, fmt.Errorf("%w: domain %v != codomain %v",
				ErrNotBijective, domain, sortedInts(images))
		}
		seen[v] = true
	}
	img := make([]int, n)
	copy(img, images)

	return Perm{img: img}, nil
}

// MustImages is FromImages that panics on error.
//
// Example: MustImages(2, 1, 3) is the transposition (1 2) in S_3.
func MustImages(images ...int) Perm {
	p, err := FromImages(images)
	if err != nil {
		panic(err)
	}

	return p
}

// Identity returns the identity permutation e on {1..n}: e(i) = i.
// Total for every n ≥ 0; negative n is treated as 0.
func Identity(n int) Perm {
	if n < 0 {
		n = 0
	}
	img := make([]int, n)
	for i := range img {
		img[i] = i + 1
	}

	return Perm{img: img}
}

// Degree returns n, the size of the set {1..n} the permutation acts on.
func (p Perm) Degree() int { return len(p.img) }

// Apply returns σ(i). Panics if i is outside 1..Degree(); use Fixes for a
// total membership-style query.
func (p Perm) Apply(i int) int {
	if i < 1 || i > len(p.img) {
		panic("perm: point out of range " + strconv.Itoa(i))
	}

	return p.img[i-1]
}

// Fixes reports whether σ(point) = point. Points outside 1..Degree() are
// never fixed.
func (p Perm) Fixes(point int) bool {
	return point >= 1 && point <= len(p.img) && p.img[point-1] == point
}

// Images returns a copy of the image row [σ(1), ..., σ(n)].
func (p Perm) Images() []int {
	out := make([]int, len(p.img))
	copy(out, p.img)

	return out
}

// Equal reports whether p and q agree on every point (and have the same
// degree). Permutations are pure values; this is the only notion of
// identity they carry.
func (p Perm) Equal(q Perm) bool {
	if len(p.img) != len(q.img) {
		return false
	}
	for i, v := range p.img {
		if q.img[i] != v {
			return false
		}
	}

	return true
}

// IsIdentity reports whether p fixes every point of its domain.
func (p Perm) IsIdentity() bool {
	for i, v := range p.img {
		if v != i+1 {
			return false
		}
	}

	return true
}

// Key returns the canonical membership key of p: the image row in domain
// order, comma-joined. Two permutations of the same degree are equal iff
// their Keys are equal, so Key is safe for map-based set membership and
// deduplication. Keys are unique only within a fixed degree.
func (p Perm) Key() string {
	var b strings.Builder
	for i, v := range p.img {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders p in cycle notation; the identity renders as "e".
func (p Perm) String() string { return p.CycleString() }

// sortedKeys returns the key set of mapping in ascending order.
func sortedKeys(mapping map[int]int) []int {
	out := make([]int, 0, len(mapping))
	for k := range mapping {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// sortedValues returns the value set of mapping in ascending order.
func sortedValues(mapping map[int]int) []int {
	out := make([]int, 0, len(mapping))
	for _, v := range mapping {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// sortedInts returns a sorted copy of values.
func sortedInts(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)

	return out
}
