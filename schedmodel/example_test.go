package schedmodel_test

import (
	"fmt"

	"github.com/katalvlaran/symgroup/schedmodel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleModel_Classify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Classify every schedule of a 3-process system. The identity is the
//	deadlock state (and trivially mutex-safe and a zero rotation); the
//	two 3-cycles are the genuine round-robin steps; (2 3) respects the
//	mutex on slot 1 without being a rotation.
func ExampleModel_Classify() {
	m, err := schedmodel.New(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range m.ClassifyAll() {
		flags := ""
		if c.Deadlock {
			flags += " DEADLOCK"
		}
		if c.Mutex {
			flags += " mutex-ok"
		}
		if c.RoundRobin {
			flags += " round-robin"
		}
		if flags == "" {
			flags = " unconstrained"
		}
		fmt.Printf("%-10s%s\n", c.Notation, flags)
	}
	// Output:
	// e          DEADLOCK mutex-ok round-robin
	// (2 3)      mutex-ok
	// (1 2)      unconstrained
	// (1 2 3)    round-robin
	// (1 3 2)    round-robin
	// (1 3)      unconstrained
}
