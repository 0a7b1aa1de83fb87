package schedmodel

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/symgroup/action"
	"github.com/katalvlaran/symgroup/perm"
	"github.com/katalvlaran/symgroup/subgroup"
)

// Options configures diagnostic reporting for VerifyAll.
type Options struct {
	// Logger receives one Info record per claim per n. A nil Logger
	// discards everything.
	Logger *log.Logger
}

// DefaultOptions returns Options that discard all diagnostics.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// DefaultNs is the range VerifyAll covers when given no explicit list:
// large enough to be convincing, small enough to enumerate exhaustively.
var DefaultNs = []int{2, 3, 4, 5, 6}

// VerifyAll proves the four scheduling claims for each n in ns (DefaultNs
// when ns is empty):
//
//  1. the scheduling space is exactly S_n: |S_n| = n!;
//  2. mutual exclusion is the stabilizer subgroup — the full
//     action.VerifyStabilizer pipeline for the critical slot;
//  3. round-robin is the cyclic subgroup — subgroup.VerifyCyclic;
//  4. deadlock is the unique all-fixing element: the identity, once.
//
// Returns true only when every claim passes for every n.
func VerifyAll(ns []int, opts Options) bool {
	if len(ns) == 0 {
		ns = DefaultNs
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	allPassed := true
	for _, n := range ns {
		sn := perm.Generate(n)

		// Claim 1 — full scheduling space.
		c1 := int64(len(sn)) == perm.Factorial(n)
		logger.Info("claim 1: scheduling space", "n", n, "size", len(sn), "ok", c1)

		// Claim 2 — mutual exclusion as stabilizer.
		c2, err := action.VerifyStabilizer(n, CriticalSlot, action.Options{Logger: opts.Logger})
		if err != nil {
			c2 = false
		}
		logger.Info("claim 2: mutex as stabilizer", "n", n, "ok", c2)

		// Claim 3 — round-robin as cyclic subgroup.
		c3 := subgroup.VerifyCyclic(n, subgroup.Options{Logger: opts.Logger})
		logger.Info("claim 3: round-robin as cyclic subgroup", "n", n, "ok", c3)

		// Claim 4 — the identity is the unique all-fixing schedule.
		fixAll := 0
		for _, sigma := range sn {
			if sigma.IsIdentity() {
				fixAll++
			}
		}
		c4 := fixAll == 1
		logger.Info("claim 4: unique deadlock state", "n", n, "ok", c4)

		allPassed = allPassed && c1 && c2 && c3 && c4
	}

	return allPassed
}
