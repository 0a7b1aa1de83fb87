package action

import (
	"github.com/katalvlaran/symgroup/perm"
	"github.com/katalvlaran/symgroup/subgroup"
)

// VerifyStabilizer runs the composite verification pipeline for the
// stabilizer of fixedPoint in S_n:
//
//  1. Stab(x) passes the subgroup axioms;
//  2. |Stab(x)| = (n−1)!;
//  3. orbit–stabilizer: |S_n| = |Orb(x)| · |Stab(x)|;
//  4. index [S_n : Stab(x)] = n;
//  5. the coset decomposition yields exactly n cosets whose sizes sum
//     to n!.
//
// Every check is logged through opts; the result is true only when all
// five pass. This is the authoritative correctness oracle for the
// package and the primary target of property testing.
//
// Returns ErrPointOutOfRange for n < 1 or fixedPoint outside 1..n.
// A false result with a nil error is the expected outcome for a failing
// candidate, never an error.
//
// Complexity: O((n!)²) worst case, dominated by the closure check over
// the (n−1)!-element stabilizer. Practical for the small n this kind of
// exhaustive proof is meant for.
func VerifyStabilizer(n, fixedPoint int, opts Options) (bool, error) {
	if n < 1 || fixedPoint < 1 || fixedPoint > n {
		return false, ErrPointOutOfRange
	}
	logger := opts.logger()

	sn := perm.Generate(n)
	stab := Stabilizer(sn, fixedPoint)
	orb := Orbit(sn, fixedPoint)

	// 1. Subgroup axioms.
	subOK := subgroup.IsSubgroup(stab, n, subgroup.Options{Logger: opts.Logger})
	logger.Info("stabilizer subgroup axioms", "n", n, "x", fixedPoint, "ok", subOK)

	// 2. |Stab(x)| = (n-1)!.
	wantSize := perm.Factorial(n - 1)
	sizeOK := int64(len(stab)) == wantSize
	logger.Info("stabilizer order", "n", n, "x", fixedPoint,
		"size", len(stab), "want", wantSize, "ok", sizeOK)

	// 3. Orbit–stabilizer identity.
	osOK := int64(len(sn)) == int64(len(orb))*int64(len(stab))
	logger.Info("orbit-stabilizer identity", "n", n, "x", fixedPoint,
		"group", len(sn), "orbit", len(orb), "stabilizer", len(stab), "ok", osOK)

	// 4. Index [S_n : Stab(x)] = n.
	indexOK := false
	if len(stab) > 0 {
		indexOK = len(sn)/len(stab) == n
		logger.Info("subgroup index", "n", n, "x", fixedPoint,
			"index", len(sn)/len(stab), "want", n, "ok", indexOK)
	}

	// 5. Coset partition: n cosets covering S_n exactly once.
	cosets, err := CosetDecomposition(sn, stab)
	if err != nil {
		return false, err
	}
	total := 0
	for _, coset := range cosets {
		total += len(coset)
	}
	cosetOK := len(cosets) == n && total == len(sn)
	logger.Info("coset decomposition", "n", n, "x", fixedPoint,
		"cosets", len(cosets), "covered", total, "group", len(sn), "ok", cosetOK)

	return subOK && sizeOK && osOK && indexOK && cosetOK, nil
}
