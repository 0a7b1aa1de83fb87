// Package symgroup is your in-memory playground for exact computation
// over the symmetric group S_n — from permutation primitives to subgroup
// structure, cosets and the orbit–stabilizer correspondence.
//
// 🚀 What is symgroup?
//
//	A small, algebraically exact library that brings together:
//		• Permutation values: validated bijections of {1..n}, immutable
//		• Group operations: compose, inverse, power, order
//		• Enumeration: all n! elements of S_n, eager or lazy/restartable
//		• Cycle structure: disjoint-cycle decomposition & notation strings
//		• Subgroups: axiom verification, cyclic subgroups ⟨c⟩
//		• Group actions: stabilizers, orbits, left-coset decompositions
//		• Scheduler model: mutex / round-robin / deadlock as symmetry
//		  restrictions (the original motivating application)
//
// ✨ Why choose symgroup?
//
//   - Exact, not heuristic – every operation satisfies the group axioms,
//     and the verification pipelines prove Lagrange and orbit–stabilizer
//     identities rather than assuming them
//   - Pure values – permutations and groups are immutable; every function
//     is a pure function of its inputs, safe to call from any goroutine
//   - Honest failure modes – malformed mappings fail at construction,
//     never mid-computation; a non-subgroup is a boolean, not an error
//
// Under the hood, everything is organized under four subpackages:
//
//	perm/       — Perm value, validation, algebra, cycles, S_n generation
//	subgroup/   — subgroup-axiom verifier & cyclic subgroup ⟨c⟩
//	action/     — stabilizer, orbit, left cosets, verification pipeline
//	schedmodel/ — OS-scheduling interpretation of S_n (mutex, round-robin,
//	              deadlock) built purely on the packages above
//
// Quick algebra example:
//
//	σ = (1 2), τ = (2 3)   ⇒   σ∘τ = (1 2 3)
//
//	three processes: swap the first two after swapping the last two,
//	and the whole queue rotates.
//
// The cmd/symgroup CLI demonstrates the full verification suite, schedule
// classification tables and coset reports for small n.
//
//	go get github.com/katalvlaran/symgroup/perm
package symgroup
