// Package subgroup verifies the subgroup axioms over candidate sets of
// permutations, and constructs the cyclic subgroup ⟨c⟩ generated by the
// n-cycle.
//
// 🚀 What does subgroup provide?
//
//   - IsSubgroup: checks identity membership, closure under composition
//     and closure under inverse for a candidate subset of S_n. A failed
//     axiom is a normal boolean outcome, never an error; the first
//     violation is reported through the Options logger and the check
//     short-circuits there.
//   - NCycle / Cyclic: the rotation c = (1 2 … n) and its generated
//     subgroup ⟨c⟩ = {c⁰, …, cⁿ⁻¹} — the round-robin schedules of the
//     scheduler model.
//   - VerifyCyclic: the boolean pipeline proving ⟨c⟩ is a subgroup of
//     order n whose generator has order n.
//
// ⚙️ Usage:
//
//	sn := perm.Generate(3)
//	ok := subgroup.IsSubgroup(sn, 3, subgroup.DefaultOptions()) // true
//
//	opts := subgroup.DefaultOptions()
//	opts.Logger = log.New(os.Stderr) // see which axiom failed
//	subgroup.IsSubgroup(sn[1:], 3, opts) // false: identity missing
//
// Complexity: IsSubgroup is O(|subset|²·n) dominated by the closure
// check; it short-circuits on the first violation rather than building
// the full composition table.
package subgroup
