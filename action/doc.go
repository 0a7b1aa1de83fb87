// Package action computes the structure of the natural S_n action on
// {1..n}: stabilizers, orbits and left-coset decompositions — and chains
// them into the verification pipeline proving the orbit–stabilizer and
// Lagrange identities for concrete n.
//
// 🚀 What does action provide?
//
//   - Stabilizer: the subgroup { σ | σ(x) = x } of permutations fixing x
//   - Orbit: the image set { σ(x) | σ ∈ G } of a point
//   - LeftCoset: σ∘H for a representative σ and subgroup H
//   - CosetDecomposition: the Lagrange partition of a group into pairwise
//     disjoint left cosets, the identity coset first
//   - VerifyStabilizer: the authoritative five-check oracle —
//     subgroup axioms, |Stab(x)| = (n−1)!, |S_n| = |Orb(x)|·|Stab(x)|,
//     index [S_n : Stab(x)] = n, and an n-coset partition summing to n!
//
// ⚙️ Usage:
//
//	sn := perm.Generate(4)
//	stab := action.Stabilizer(sn, 1)            // 6 = 3! elements
//	cosets, _ := action.CosetDecomposition(sn, stab)
//	ok, _ := action.VerifyStabilizer(4, 1, action.DefaultOptions())
//
// In the scheduler interpretation, Stab(x) is the set of mutex-admissible
// schedules for critical slot x, and every other coset is one equivalence
// class of violations — the coset representative names which process has
// stolen the slot.
//
// All functions are pure; groups are passed and returned as plain slices
// of immutable perm.Perm values.
package action
