package action

import (
	"sort"

	"github.com/katalvlaran/symgroup/perm"
)

// Stabilizer returns the elements of group fixing point:
// Stab(x) = { σ ∈ G | σ(x) = x }, in group order.
//
// When group is all of S_n and x ∈ 1..n, the result is a subgroup of
// size (n−1)! (it passes subgroup.IsSubgroup; VerifyStabilizer proves it
// per n). Elements too small to contain point never fix it.
//
// Complexity: O(|group|) time.
func Stabilizer(group []perm.Perm, point int) []perm.Perm {
	var out []perm.Perm
	for _, sigma := range group {
		if sigma.Fixes(point) {
			out = append(out, sigma)
		}
	}

	return out
}

// Orbit returns the orbit of point under group: Orb(x) = { σ(x) | σ ∈ G },
// as a sorted, duplicate-free slice. For the full S_n acting on {1..n}
// the orbit of any point is the entire set.
//
// Complexity: O(|group| + n log n) time.
func Orbit(group []perm.Perm, point int) []int {
	seen := map[int]struct{}{}
	for _, sigma := range group {
		if point >= 1 && point <= sigma.Degree() {
			seen[sigma.Apply(point)] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for image := range seen {
		out = append(out, image)
	}
	sort.Ints(out)

	return out
}

// LeftCoset returns σ·H = { σ∘h | h ∈ H } in subgroup order, σ applied
// in the outer (left) position.
//
// Returns ErrDomainMismatch (from Compose) when σ and a subgroup element
// act on sets of different size.
//
// Complexity: O(|H|·n) time.
func LeftCoset(sigma perm.Perm, subgroup []perm.Perm) ([]perm.Perm, error) {
	out := make([]perm.Perm, 0, len(subgroup))
	for _, h := range subgroup {
		sh, err := perm.Compose(sigma, h)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}

	return out, nil
}

// CosetDecomposition partitions group into disjoint left cosets of
// subgroup:
//
//	G = H ∪ σ₁H ∪ σ₂H ∪ …
//
// Elements are scanned in group order; each uncovered element seeds a new
// coset and the whole coset is marked covered, so the cosets are pairwise
// disjoint and their union is exactly the group — the Lagrange partition,
// enforced by construction rather than checked after the fact. The coset
// equal to the subgroup itself (the identity coset) is moved to the front
// of the result for presentation stability; the rest keep discovery order.
//
// Complexity: O(|G|·n) time, O(|G|) extra space (each element is composed
// into exactly one coset).
func CosetDecomposition(group, subgroup []perm.Perm) ([][]perm.Perm, error) {
	subgroupKeys := make(map[string]struct{}, len(subgroup))
	for _, h := range subgroup {
		subgroupKeys[h.Key()] = struct{}{}
	}

	covered := make(map[string]struct{}, len(group))
	var cosets [][]perm.Perm
	identityCoset := -1

	for _, sigma := range group {
		if _, done := covered[sigma.Key()]; done {
			continue
		}
		coset, err := LeftCoset(sigma, subgroup)
		if err != nil {
			return nil, err
		}
		for _, element := range coset {
			covered[element.Key()] = struct{}{}
		}
		if len(coset) > 0 {
			if _, in := subgroupKeys[coset[0].Key()]; in {
				identityCoset = len(cosets)
			}
		}
		cosets = append(cosets, coset)
	}

	// Reorder the identity coset to the front, wherever it was found.
	if identityCoset > 0 {
		front := cosets[identityCoset]
		copy(cosets[1:identityCoset+1], cosets[:identityCoset])
		cosets[0] = front
	}

	return cosets, nil
}
