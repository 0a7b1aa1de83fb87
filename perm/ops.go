package perm

// Compose returns the composition σ∘τ: (σ∘τ)(i) = σ(τ(i)).
// τ is applied first, σ second (standard right-to-left composition).
//
// Returns ErrDomainMismatch when σ and τ act on sets of different size.
// Composition is associative and has Identity(n) as its two-sided unit;
// those are invariants of the group, verified in tests rather than
// asserted here.
//
// Complexity: O(n) time, O(n) space.
func Compose(sigma, tau Perm) (Perm, error) {
	if len(sigma.img) != len(tau.img) {
		return Perm{}, ErrDomainMismatch
	}
	img := make([]int, len(tau.img))
	for i, t := range tau.img {
		img[i] = sigma.img[t-1]
	}

	return Perm{img: img}, nil
}

// compose is Compose for callers that already hold equal-degree operands.
func compose(sigma, tau Perm) Perm {
	img := make([]int, len(tau.img))
	for i, t := range tau.img {
		img[i] = sigma.img[t-1]
	}

	return Perm{img: img}
}

// Inverse returns σ⁻¹, the permutation with σ⁻¹(σ(i)) = i for every i.
// Total for any Perm: bijectivity guarantees the swapped pairs collide
// nowhere.
//
// Complexity: O(n) time, O(n) space.
func (p Perm) Inverse() Perm {
	img := make([]int, len(p.img))
	for i, v := range p.img {
		img[v-1] = i + 1
	}

	return Perm{img: img}
}

// Power returns σ^k.
//
//	k = 0 : Identity(n)
//	k > 0 : σ composed with itself k times
//	k < 0 : σ⁻¹ composed with itself |k| times
//
// Satisfies σ^(a+b) = σ^a ∘ σ^b for all integers a, b, and σ^(-1) = σ⁻¹.
//
// Complexity: O(n·|k|) time.
func (p Perm) Power(k int) Perm {
	result := Identity(len(p.img))
	if k == 0 {
		return result
	}

	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}
	for ; k > 0; k-- {
		result = compose(result, base)
	}

	return result
}

// Order returns the order of σ: the least k > 0 with σ^k = e.
//
// Computed by iterated composition. Termination is guaranteed for every
// constructed Perm — the order equals the lcm of the cycle lengths and
// divides n! (Lagrange). Typical inputs are O(n); adversarial inputs may
// reach n! steps. The identity (any degree, including 0) has order 1.
func (p Perm) Order() int {
	current := p
	k := 1
	for !current.IsIdentity() {
		current = compose(current, p)
		k++
	}

	return k
}
