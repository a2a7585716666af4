// Package simdops provides the vector kernels used by the coefficient evaluator
// and table builders.
//
// Two kernel sets are available: one backed by github.com/tphakala/simd, and a
// scalar set used as a reference and when SIMD is disabled. Both operate on
// float64 only since every fit constant is published in double precision.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops is a set of vector kernels.
// Function pointers let callers switch implementations without branching in
// hot paths.
type Ops struct {
	// DotProduct returns Σ a[i]*b[i] over the shorter of the two slices.
	DotProduct func(a, b []float64) float64

	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

// Pre-instantiated kernel sets.
var (
	simdOps = Ops{
		DotProduct:       f64.DotProduct,
		DotProductUnsafe: f64.DotProductUnsafe,
		Scale:            f64.Scale,
		Sum:              f64.Sum,
	}
	scalarOps = Ops{
		DotProduct:       dotScalar,
		DotProductUnsafe: dotScalar,
		Scale:            scaleScalar,
		Sum:              sumScalar,
	}
)

// For returns the SIMD kernels when enableSIMD is true, the scalar kernels otherwise.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return &simdOps
	}
	return &scalarOps
}

// Default returns the SIMD-backed kernels.
func Default() *Ops {
	return &simdOps
}

func dotScalar(a, b []float64) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func scaleScalar(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := 0; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func sumScalar(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}
