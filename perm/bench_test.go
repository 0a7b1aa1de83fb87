package perm_test

import (
	"testing"

	"github.com/katalvlaran/symgroup/perm"
)

// benchmarkCompose composes two fixed degree-n permutations b.N times.
func benchmarkCompose(b *testing.B, n int) {
	c := perm.Identity(n)
	rot := rotation(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		c, err = perm.Compose(c, rot)
		if err != nil {
			b.Fatalf("Compose failed: %v", err)
		}
	}
}

// rotation returns the n-cycle image row (2, 3, ..., n, 1) as a Perm.
func rotation(n int) perm.Perm {
	img := make([]int, n)
	for i := 0; i < n-1; i++ {
		img[i] = i + 2
	}
	if n > 0 {
		img[n-1] = 1
	}

	return perm.MustImages(img...)
}

// BenchmarkCompose_N64 measures composition on a 64-point domain.
func BenchmarkCompose_N64(b *testing.B) { benchmarkCompose(b, 64) }

// BenchmarkCompose_N1024 measures composition on a 1024-point domain.
func BenchmarkCompose_N1024(b *testing.B) { benchmarkCompose(b, 1024) }

// BenchmarkGenerate_S7 measures eager enumeration of all 5040 elements.
func BenchmarkGenerate_S7(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if got := perm.Generate(7); len(got) != 5040 {
			b.Fatalf("|S_7| = %d, want 5040", len(got))
		}
	}
}

// BenchmarkEnumerator_S7 measures the lazy walk over the same group.
func BenchmarkEnumerator_S7(b *testing.B) {
	e := perm.NewEnumerator(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Reset()
		count := 0
		for _, ok := e.Next(); ok; _, ok = e.Next() {
			count++
		}
		if count != 5040 {
			b.Fatalf("enumerated %d elements, want 5040", count)
		}
	}
}

// BenchmarkOrder_LongCycle measures Order on a single n-cycle, the
// worst case for a fixed degree.
func BenchmarkOrder_LongCycle(b *testing.B) {
	rot := rotation(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if rot.Order() != 512 {
			b.Fatal("order of a 512-cycle must be 512")
		}
	}
}
