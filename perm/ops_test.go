package perm_test

import (
	"testing"

	"github.com/katalvlaran/symgroup/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompose_Concrete checks the canonical S_3 scenario:
// (1 2) ∘ (2 3) = (1 2 3), with τ applied first.
func TestCompose_Concrete(t *testing.T) {
	sigma := perm.MustNew(map[int]int{1: 2, 2: 1, 3: 3}) // (1 2)
	tau := perm.MustNew(map[int]int{1: 1, 2: 3, 3: 2})   // (2 3)

	st, err := perm.Compose(sigma, tau)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 1}, st.Images(), "(1 2)∘(2 3) maps 1↦2, 2↦3, 3↦1")
	assert.Equal(t, "(1 2 3)", st.CycleString())
}

// TestCompose_DomainMismatch verifies the degree precondition.
func TestCompose_DomainMismatch(t *testing.T) {
	_, err := perm.Compose(perm.Identity(3), perm.Identity(4))
	assert.ErrorIs(t, err, perm.ErrDomainMismatch, "mixed degrees must error")
}

// TestCompose_Associativity exhaustively verifies associativity over all
// of S_3: (σ∘τ)∘ρ = σ∘(τ∘ρ).
func TestCompose_Associativity(t *testing.T) {
	s3 := perm.Generate(3)
	for _, sigma := range s3 {
		for _, tau := range s3 {
			for _, rho := range s3 {
				st, err := perm.Compose(sigma, tau)
				require.NoError(t, err)
				left, err := perm.Compose(st, rho)
				require.NoError(t, err)

				tr, err := perm.Compose(tau, rho)
				require.NoError(t, err)
				right, err := perm.Compose(sigma, tr)
				require.NoError(t, err)

				require.True(t, left.Equal(right),
					"associativity failed at σ=%s τ=%s ρ=%s", sigma, tau, rho)
			}
		}
	}
}

// TestCompose_IdentityUnit verifies that Identity(n) is a two-sided unit
// for every element of S_4.
func TestCompose_IdentityUnit(t *testing.T) {
	e := perm.Identity(4)
	for _, sigma := range perm.Generate(4) {
		right, err := perm.Compose(sigma, e)
		require.NoError(t, err)
		left, err := perm.Compose(e, sigma)
		require.NoError(t, err)

		require.True(t, right.Equal(sigma), "σ∘e must equal σ for %s", sigma)
		require.True(t, left.Equal(sigma), "e∘σ must equal σ for %s", sigma)
	}
}

// TestInverse_Law verifies σ∘σ⁻¹ = e = σ⁻¹∘σ over all of S_4.
func TestInverse_Law(t *testing.T) {
	for _, sigma := range perm.Generate(4) {
		inv := sigma.Inverse()

		right, err := perm.Compose(sigma, inv)
		require.NoError(t, err)
		left, err := perm.Compose(inv, sigma)
		require.NoError(t, err)

		require.True(t, right.IsIdentity(), "σ∘σ⁻¹ must be e for %s", sigma)
		require.True(t, left.IsIdentity(), "σ⁻¹∘σ must be e for %s", sigma)
	}
}

// TestPower_AdditionLaw verifies σ^(a+b) = σ^a ∘ σ^b across a grid of
// exponents including negatives and zero.
func TestPower_AdditionLaw(t *testing.T) {
	sigma := perm.MustImages(2, 3, 1, 5, 4) // (1 2 3)(4 5), order 6

	for a := -6; a <= 6; a++ {
		for b := -6; b <= 6; b++ {
			sum := sigma.Power(a + b)
			split, err := perm.Compose(sigma.Power(a), sigma.Power(b))
			require.NoError(t, err)

			require.True(t, sum.Equal(split),
				"σ^(a+b) != σ^a∘σ^b at a=%d b=%d", a, b)
		}
	}
}

// TestPower_SpecialExponents pins the k = 0, 1, -1 cases.
func TestPower_SpecialExponents(t *testing.T) {
	sigma := perm.MustImages(2, 3, 1)

	assert.True(t, sigma.Power(0).IsIdentity(), "σ^0 = e")
	assert.True(t, sigma.Power(1).Equal(sigma), "σ^1 = σ")
	assert.True(t, sigma.Power(-1).Equal(sigma.Inverse()), "σ^-1 = σ⁻¹")
}

// TestOrder_Concrete pins order of the 4-cycle (1 2 3 4) at 4 and of the
// identity at 1.
func TestOrder_Concrete(t *testing.T) {
	c := perm.MustNew(map[int]int{1: 2, 2: 3, 3: 4, 4: 1})
	assert.Equal(t, 4, c.Order(), "4-cycle has order 4")

	assert.Equal(t, 1, perm.Identity(4).Order(), "identity has order 1")
	assert.Equal(t, 1, perm.Identity(0).Order(), "empty permutation has order 1")

	mixed := perm.MustImages(2, 3, 1, 5, 4) // lcm(3, 2) = 6
	assert.Equal(t, 6, mixed.Order(), "(1 2 3)(4 5) has order 6")
}

// TestOrder_DividesGroupOrder verifies Lagrange for elements: order(σ)
// divides n! for every σ in S_4 and S_5.
func TestOrder_DividesGroupOrder(t *testing.T) {
	for n := 1; n <= 5; n++ {
		size := perm.Factorial(n)
		for _, sigma := range perm.Generate(n) {
			k := sigma.Order()
			require.Zerof(t, size%int64(k),
				"order %d of %s must divide %d! = %d", k, sigma, n, size)
		}
	}
}

// TestOrder_EqualsLCMOfCycleLengths cross-checks Order against the cycle
// decomposition over all of S_5.
func TestOrder_EqualsLCMOfCycleLengths(t *testing.T) {
	for _, sigma := range perm.Generate(5) {
		want := 1
		for _, cycle := range sigma.Cycles() {
			want = lcm(want, len(cycle))
		}
		require.Equal(t, want, sigma.Order(), "order mismatch for %s", sigma)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
