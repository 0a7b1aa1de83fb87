package schedmodel

import (
	"errors"

	"github.com/katalvlaran/symgroup/action"
	"github.com/katalvlaran/symgroup/perm"
	"github.com/katalvlaran/symgroup/subgroup"
)

// CriticalSlot is the default protected resource slot: the first queue
// position.
const CriticalSlot = 1

// ErrTooFewProcesses indicates n < 2 passed to New — a scheduling space
// needs at least two processes to restrict.
var ErrTooFewProcesses = errors.New("schedmodel: need at least 2 processes (n ≥ 2)")

// Model is the scheduling space of n processes: S_n plus the three
// restriction subsets. All fields are built once by New and never
// mutated, so a Model may be shared across goroutines.
type Model struct {
	n      int
	sn     []perm.Perm
	e      perm.Perm
	stab   []perm.Perm // Stab(CriticalSlot): mutex-admissible schedules
	cyclic []perm.Perm // ⟨c⟩: round-robin schedules

	cyclicKeys map[string]struct{}
}

// New builds the scheduling model for n processes. Returns
// ErrTooFewProcesses for n < 2.
//
// Complexity: O(n·n!) — the full space is materialized once.
func New(n int) (*Model, error) {
	if n < 2 {
		return nil, ErrTooFewProcesses
	}

	sn := perm.Generate(n)
	m := &Model{
		n:      n,
		sn:     sn,
		e:      perm.Identity(n),
		stab:   action.Stabilizer(sn, CriticalSlot),
		cyclic: subgroup.Cyclic(n),
	}
	m.cyclicKeys = make(map[string]struct{}, n)
	for _, h := range m.cyclic {
		m.cyclicKeys[h.Key()] = struct{}{}
	}

	return m, nil
}

// N returns the number of processes.
func (m *Model) N() int { return m.n }

// SpaceSize returns |S_n| = n!, the number of distinct schedules.
func (m *Model) SpaceSize() int { return len(m.sn) }

// Schedules returns all n! schedules in enumeration order. The returned
// slice is shared; treat it as read-only.
func (m *Model) Schedules() []perm.Perm { return m.sn }

// IsMutexAdmissible reports whether sigma respects mutual exclusion on
// slot: the process in the protected slot stays put, σ(slot) = slot —
// membership in Stab(slot) without materializing it.
func (m *Model) IsMutexAdmissible(sigma perm.Perm, slot int) bool {
	return sigma.Fixes(slot)
}

// MutexAdmissible returns every schedule admissible under mutual
// exclusion on slot: the stabilizer Stab(slot), (n−1)! schedules.
func (m *Model) MutexAdmissible(slot int) []perm.Perm {
	return action.Stabilizer(m.sn, slot)
}

// IsRoundRobin reports whether sigma is a rotation of the process queue:
// membership in ⟨c⟩, decided by canonical Key.
func (m *Model) IsRoundRobin(sigma perm.Perm) bool {
	_, in := m.cyclicKeys[sigma.Key()]

	return in && sigma.Degree() == m.n
}

// RoundRobin returns the n round-robin schedules: ⟨c⟩ in exponent order.
// The returned slice is shared; treat it as read-only.
func (m *Model) RoundRobin() []perm.Perm { return m.cyclic }

// IsDeadlock reports whether sigma is the deadlock state: the identity,
// under which no process makes forward progress.
func (m *Model) IsDeadlock(sigma perm.Perm) bool { return sigma.Equal(m.e) }

// DeadlockState returns the deadlock state, the identity permutation.
func (m *Model) DeadlockState() perm.Perm { return m.e }

// Classification labels one schedule by the constraints it satisfies.
type Classification struct {
	// Notation is the schedule in cycle notation ("e" for the identity).
	Notation string

	// Deadlock: σ = e.
	Deadlock bool

	// Mutex: σ ∈ Stab(CriticalSlot).
	Mutex bool

	// RoundRobin: σ ∈ ⟨c⟩.
	RoundRobin bool
}

// Classify labels sigma against all three constraints (mutex w.r.t. the
// default CriticalSlot).
func (m *Model) Classify(sigma perm.Perm) Classification {
	return Classification{
		Notation:   sigma.CycleString(),
		Deadlock:   m.IsDeadlock(sigma),
		Mutex:      m.IsMutexAdmissible(sigma, CriticalSlot),
		RoundRobin: m.IsRoundRobin(sigma),
	}
}

// ClassifyAll labels every schedule in S_n, in enumeration order.
func (m *Model) ClassifyAll() []Classification {
	out := make([]Classification, len(m.sn))
	for i, sigma := range m.sn {
		out[i] = m.Classify(sigma)
	}

	return out
}
