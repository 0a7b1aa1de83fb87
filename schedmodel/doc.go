// Package schedmodel interprets the symmetric group S_n as the scheduling
// space of n processes and expresses three OS synchronization concepts as
// symmetry restrictions:
//
//   - mutual exclusion  — the stabilizer subgroup Stab(x): schedules that
//     never move the process out of critical slot x
//   - round-robin       — the cyclic subgroup ⟨c⟩: pure rotations of the
//     process queue
//   - deadlock          — the identity element e: no process makes progress
//
// A Model is built once per n and holds the full space S_n, Stab(1), ⟨c⟩
// and e as immutable values; every query is a pure membership or
// classification check on top of the perm, subgroup and action packages.
//
// ⚙️ Usage:
//
//	m, err := schedmodel.New(3)
//	...
//	for _, c := range m.ClassifyAll() {
//	    fmt.Println(c.Notation, c.Mutex, c.RoundRobin, c.Deadlock)
//	}
//
//	ok := schedmodel.VerifyAll([]int{2, 3, 4, 5}, schedmodel.DefaultOptions())
//
// VerifyAll is the library's end-to-end proof: per n it checks
// |S_n| = n!, the full stabilizer pipeline, the cyclic pipeline, and
// uniqueness of the identity as the all-fixing element.
package schedmodel
