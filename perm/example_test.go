package perm_test

import (
	"fmt"

	"github.com/katalvlaran/symgroup/perm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompose
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The textbook S_3 computation: swap the last two elements, then swap
//	the first two.
//	  σ = (1 2), τ = (2 3)
//
// τ applies first, so 1 ↦ 1 ↦ 2, 2 ↦ 3 ↦ 3, 3 ↦ 2 ↦ 1: the 3-cycle.
//
// Complexity: O(n) time, O(n) memory.
func ExampleCompose() {
	sigma := perm.MustImages(2, 1, 3) // (1 2)
	tau := perm.MustImages(1, 3, 2)   // (2 3)

	st, err := perm.Compose(sigma, tau)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(st.CycleString())
	// Output:
	// (1 2 3)
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePerm_Order
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The 4-cycle (1 2 3 4) rotates four elements; four applications bring
//	every element home, and no fewer do.
func ExamplePerm_Order() {
	c := perm.MustNew(map[int]int{1: 2, 2: 3, 3: 4, 4: 1})
	fmt.Printf("order of %s = %d\n", c, c.Order())
	// Output:
	// order of (1 2 3 4) = 4
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate all 3! = 6 elements of S_3 in their deterministic
//	(lexicographic) order and print each in cycle notation.
//
// Complexity: O(n·n!) time and memory; use Enumerator for bounded memory.
func ExampleGenerate() {
	for _, sigma := range perm.Generate(3) {
		fmt.Println(sigma.CycleString())
	}
	// Output:
	// e
	// (2 3)
	// (1 2)
	// (1 2 3)
	// (1 3 2)
	// (1 3)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewEnumerator
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Walk S_4 lazily, counting fixed-point-free permutations (derangements)
//	without materializing the 24-element group.
//
// Complexity: O(n) live memory regardless of n!.
func ExampleNewEnumerator() {
	e := perm.NewEnumerator(4)
	derangements := 0
	for sigma, ok := e.Next(); ok; sigma, ok = e.Next() {
		fixesAny := false
		for point := 1; point <= 4; point++ {
			if sigma.Fixes(point) {
				fixesAny = true

				break
			}
		}
		if !fixesAny {
			derangements++
		}
	}
	fmt.Printf("derangements of 4 elements: %d\n", derangements)
	// Output:
	// derangements of 4 elements: 9
}
