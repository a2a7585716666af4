// Package fits evaluates the PhenomD phenomenological coefficient fits.
//
// Every coefficient is a polynomial in the symmetric mass ratio eta and the
// post-Newtonian spin chiPN:
//
//	c0 + c1*eta
//	   + x   * (c2 + c3*eta + c4*eta²)
//	   + x²  * (c5 + c6*eta + c7*eta²)
//	   + x³  * (c8 + c9*eta + c10*eta²)
//
// with x = chiPN - 1. Rows are independent, so the evaluator builds the
// eleven-term basis once and takes one dot product per row.
package fits

import (
	"github.com/tphakala/go-phenomd/internal/simdops"
)

// Table dimensions.
const (
	NumRows  = 19 // rho1..rho3, v2, gamma1..gamma3, sig1..sig4, beta1..beta3, a1..a5
	NumTerms = 11 // basis terms per row
)

// Evaluator computes coefficient vectors with a fixed set of vector kernels.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	ops *simdops.Ops
}

// NewEvaluator creates an evaluator. When enableSIMD is false the scalar
// reference kernels are used.
func NewEvaluator(enableSIMD bool) *Evaluator {
	return &Evaluator{ops: simdops.For(enableSIMD)}
}

// Evaluate returns all NumRows coefficients at (eta, chiPN).
// NaN inputs propagate to every output.
func (e *Evaluator) Evaluate(eta, chiPN float64) [NumRows]float64 {
	b := basis(eta, chiPN)

	var out [NumRows]float64
	for i := range table {
		out[i] = e.ops.DotProductUnsafe(table[i][:], b[:])
	}
	return out
}

// EvaluateRow returns a single coefficient at (eta, chiPN).
func (e *Evaluator) EvaluateRow(row int, eta, chiPN float64) float64 {
	b := basis(eta, chiPN)
	return e.ops.DotProductUnsafe(table[row][:], b[:])
}

// Row returns a copy of the calibration constants for one coefficient.
func Row(row int) [NumTerms]float64 {
	return table[row]
}

// basis returns the eleven monomials multiplying the table columns.
func basis(eta, chiPN float64) [NumTerms]float64 {
	eta2 := eta * eta
	x := chiPN - 1.0
	x2 := x * x
	x3 := x2 * x

	return [NumTerms]float64{
		1.0, eta,
		x, x * eta, x * eta2,
		x2, x2 * eta, x2 * eta2,
		x3, x3 * eta, x3 * eta2,
	}
}
