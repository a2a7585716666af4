// Package mathutil provides small numeric helpers shared by the fit evaluators.
package mathutil

import (
	"math"
)

// Horner evaluates the polynomial c[0] + c[1]*x + ... + c[n-1]*x^(n-1)
// using Horner's scheme. An empty coefficient list evaluates to zero.
func Horner(x float64, c ...float64) float64 {
	var result float64
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

// HornerDerivative evaluates the first derivative of the polynomial with
// ascending coefficients c at x.
func HornerDerivative(x float64, c ...float64) float64 {
	var result float64
	for i := len(c) - 1; i >= 1; i-- {
		result = result*x + float64(i)*c[i]
	}
	return result
}

// SymmetricMassRatio returns m1*m2/(m1+m2)², capped at 0.25.
// Rounding can push nearly equal masses a few ulps past the cap, where
// [Seta] would be NaN. NaN inputs give NaN.
func SymmetricMassRatio(m1, m2 float64) float64 {
	total := m1 + m2
	return min(m1*m2/(total*total), equalMassEta)
}

// Seta returns sqrt(1 - 4*eta), the normalised mass difference |m1-m2|/M.
// It is NaN for eta > 0.25.
func Seta(eta float64) float64 {
	return math.Sqrt(1.0 - quarterInverse*eta)
}
