package subgroup

import (
	"github.com/katalvlaran/symgroup/perm"
)

// NCycle returns the n-cycle c = (1 2 … n): c(i) = i+1, wrapping n to 1.
// For n ≤ 1 the n-cycle degenerates to the identity.
//
// In the scheduler interpretation c is one round-robin step: every
// process advances one slot and the head wraps to the back.
func NCycle(n int) perm.Perm {
	if n < 0 {
		n = 0
	}
	img := make([]int, n)
	for i := 0; i < n-1; i++ {
		img[i] = i + 2
	}
	if n > 0 {
		img[n-1] = 1
	}

	return perm.MustImages(img...)
}

// Cyclic returns the cyclic subgroup ⟨c⟩ = {c⁰, c¹, …, cⁿ⁻¹} generated by
// NCycle(n), identity first, in exponent order. |⟨c⟩| = n for n ≥ 1;
// for n ≤ 1 the result is the trivial group {e}.
//
// Complexity: O(n²) time — n incremental compositions of degree n.
func Cyclic(n int) []perm.Perm {
	if n < 1 {
		return []perm.Perm{perm.Identity(n)}
	}

	c := NCycle(n)
	out := make([]perm.Perm, 0, n)
	cur := perm.Identity(n)
	for k := 0; k < n; k++ {
		out = append(out, cur)
		next, err := perm.Compose(cur, c)
		if err != nil {
			// cur and c share degree n by construction.
			panic(err)
		}
		cur = next
	}

	return out
}

// VerifyCyclic reports whether ⟨c⟩ behaves as claimed for the given n:
//
//  1. ⟨c⟩ passes the subgroup axioms in S_n;
//  2. |⟨c⟩| = n;
//  3. order(c) = n.
//
// Each check is logged at Info level through opts. Requires n ≥ 1;
// smaller n is reported and rejected.
func VerifyCyclic(n int, opts Options) bool {
	logger := opts.logger()
	if n < 1 {
		logger.Warn("cyclic verification requires n ≥ 1", "n", n)

		return false
	}

	cyclic := Cyclic(n)

	subOK := IsSubgroup(cyclic, n, opts)
	logger.Info("cyclic subgroup axioms", "n", n, "ok", subOK)

	sizeOK := len(cyclic) == n
	logger.Info("cyclic subgroup order", "n", n, "size", len(cyclic), "want", n, "ok", sizeOK)

	orderOK := NCycle(n).Order() == n
	logger.Info("generator order", "n", n, "order", NCycle(n).Order(), "want", n, "ok", orderOK)

	return subOK && sizeOK && orderOK
}
