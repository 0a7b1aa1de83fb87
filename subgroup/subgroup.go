package subgroup

import (
	"github.com/katalvlaran/symgroup/perm"
)

// IsSubgroup reports whether subset forms a subgroup of S_n.
//
// The axioms are checked in order:
//  1. identity — Identity(n) is a member (membership is by canonical
//     Key, not value identity);
//  2. closure — for every ordered pair (s, t), including s = t,
//     s∘t is a member;
//  3. inverses — for every s, s⁻¹ is a member.
//
// The first violation is logged through opts and the check returns false
// immediately; false is an expected outcome for non-subgroups, not an
// error. Elements whose degree differs from n can never satisfy axiom 1
// or 2 and are reported the same way.
//
// Complexity: O(|subset|²·n) time, O(|subset|) extra space.
func IsSubgroup(subset []perm.Perm, n int, opts Options) bool {
	logger := opts.logger()

	members := make(map[string]struct{}, len(subset))
	for _, s := range subset {
		members[s.Key()] = struct{}{}
	}

	// 1. Identity.
	if _, ok := members[perm.Identity(n).Key()]; !ok {
		logger.Warn("subgroup check failed: identity not in subset", "n", n, "size", len(subset))

		return false
	}

	// 2. Closure under composition.
	for _, s := range subset {
		for _, t := range subset {
			st, err := perm.Compose(s, t)
			if err != nil {
				logger.Warn("subgroup check failed: mixed degrees in subset",
					"s", s.CycleString(), "t", t.CycleString())

				return false
			}
			if _, ok := members[st.Key()]; !ok {
				logger.Warn("subgroup check failed: not closed under composition",
					"s", s.CycleString(), "t", t.CycleString(), "product", st.CycleString())

				return false
			}
		}
	}

	// 3. Closure under inverse.
	for _, s := range subset {
		if _, ok := members[s.Inverse().Key()]; !ok {
			logger.Warn("subgroup check failed: inverse not in subset",
				"element", s.CycleString(), "inverse", s.Inverse().CycleString())

			return false
		}
	}

	return true
}
