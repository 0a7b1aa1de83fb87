// Package perm implements the atomic value of the symmetric group S_n:
// an immutable, validated bijection of {1..n} onto itself — together with
// the group operations and the S_n enumerator everything else is built on.
//
// 🚀 What does perm provide?
//
//   - Perm: an immutable permutation value with value semantics — equality,
//     a canonical membership Key, and cycle-notation rendering
//   - Construction: New (from a mapping), FromImages (from an image row),
//     Identity; bijectivity is enforced at construction time, so every
//     Perm in circulation is well-formed
//   - Algebra: Compose (σ∘τ, τ first), Inverse, Power, Order
//   - Cycle structure: Cycles and CycleString ("e" for the identity)
//   - Enumeration: Generate (eager n! slice) and Enumerator (lazy,
//     finite, restartable — same elements, same order)
//
// ⚙️ Usage:
//
//	σ := perm.MustImages(2, 1, 3)        // (1 2)
//	τ := perm.MustImages(1, 3, 2)        // (2 3)
//	ρ, _ := perm.Compose(σ, τ)           // (1 2 3)
//	fmt.Println(ρ.CycleString())         // "(1 2 3)"
//	fmt.Println(ρ.Order())               // 3
//
// Enumeration order is lexicographic over the image sequence. It is
// deterministic and reproducible across runs, but callers must not attach
// meaning to the order beyond that.
//
// Performance:
//
//   - Compose/Inverse/Apply: O(n)
//   - Order: O(n·order(σ)) — order(σ) = lcm of cycle lengths ≤ n! worst case
//   - Generate: O(n·n!) time, O(n·n!) memory; use Enumerator to bound memory
//
// Errors: ErrNotBijective (construction), ErrDomainMismatch (Compose).
// All other operations are total over constructed Perm values.
package perm
