package phenomd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-phenomd/internal/mathutil"
)

// numDeltas is the number of coefficients of the intermediate amplitude polynomial.
const numDeltas = 5

// BoundaryConstraints fixes the intermediate amplitude polynomial: values
// V1, V2, V3 at F1, F2, F3 and slopes D1, D3 at F1 and F3.
type BoundaryConstraints struct {
	F1, F2, F3 float64
	V1, V2, V3 float64
	D1, D3     float64
}

// Validate checks that the three frequencies are finite and pairwise distinct.
func (c BoundaryConstraints) Validate() error {
	for _, f := range []float64{c.F1, c.F2, c.F3} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: frequency %g is not finite", ErrDegenerateFrequencies, f)
		}
	}
	if c.F1 == c.F2 || c.F1 == c.F3 || c.F2 == c.F3 {
		return fmt.Errorf("%w: f1=%g, f2=%g, f3=%g must be distinct", ErrDegenerateFrequencies, c.F1, c.F2, c.F3)
	}
	return nil
}

// DeltaCoefficients are the coefficients of
//
//	p(f) = Delta[0] + Delta[1]*f + Delta[2]*f² + Delta[3]*f³ + Delta[4]*f⁴
type DeltaCoefficients [numDeltas]float64

// Eval returns p(f).
func (d DeltaCoefficients) Eval(f float64) float64 {
	return mathutil.Horner(f, d[:]...)
}

// Derivative returns p'(f).
func (d DeltaCoefficients) Derivative(f float64) float64 {
	return mathutil.HornerDerivative(f, d[:]...)
}

// SolveDeltas returns the unique quartic matching c using the closed-form
// solution. Coincident frequencies yield Inf or NaN; use
// [BoundaryConstraints.Validate] to reject them first.
func SolveDeltas(c BoundaryConstraints) DeltaCoefficients {
	return DeltaCoefficients{
		Delta0(c.F1, c.F2, c.F3, c.V1, c.V2, c.V3, c.D1, c.D3),
		Delta1(c.F1, c.F2, c.F3, c.V1, c.V2, c.V3, c.D1, c.D3),
		Delta2(c.F1, c.F2, c.F3, c.V1, c.V2, c.V3, c.D1, c.D3),
		Delta3(c.F1, c.F2, c.F3, c.V1, c.V2, c.V3, c.D1, c.D3),
		Delta4(c.F1, c.F2, c.F3, c.V1, c.V2, c.V3, c.D1, c.D3),
	}
}

// SolveDeltasLU solves the same 5x5 system numerically with an LU
// factorization. It returns an error for degenerate or ill-conditioned input.
func SolveDeltasLU(c BoundaryConstraints) (DeltaCoefficients, error) {
	if err := c.Validate(); err != nil {
		return DeltaCoefficients{}, err
	}

	value := func(f float64) []float64 { return []float64{1, f, f * f, f * f * f, f * f * f * f} }
	slope := func(f float64) []float64 { return []float64{0, 1, 2 * f, 3 * f * f, 4 * f * f * f} }

	rows := [][]float64{value(c.F1), value(c.F2), value(c.F3), slope(c.F1), slope(c.F3)}
	data := make([]float64, 0, numDeltas*numDeltas)
	for _, r := range rows {
		data = append(data, r...)
	}

	a := mat.NewDense(numDeltas, numDeltas, data)
	b := mat.NewVecDense(numDeltas, []float64{c.V1, c.V2, c.V3, c.D1, c.D3})

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return DeltaCoefficients{}, fmt.Errorf("solving boundary system: %w", err)
	}

	var d DeltaCoefficients
	for i := range d {
		d[i] = x.AtVec(i)
	}
	return d, nil
}

// Delta0 returns the constant coefficient of the intermediate amplitude quartic.
func Delta0(f1, f2, f3, v1, v2, v3, d1, d3 float64) float64 {
	f12, f13, f23 := f1-f2, f1-f3, f2-f3

	return (-(d3 * sq(f1) * sq(f12) * f2 * f13 * f23 * f3) +
		d1*f1*f12*f2*f13*sq(f23)*sq(f3) +
		sq(f3)*(f2*sq(f23)*(-4*sq(f1)+3*f1*f2+2*f1*f3-f2*f3)*v1+
			sq(f1)*cube(f13)*v2) +
		sq(f1)*sq(f12)*f2*(f1*f2-2*f1*f3-3*f2*f3+4*sq(f3))*v3) /
		(sq(f12) * cube(f13) * sq(f23))
}

// Delta1 returns the linear coefficient of the intermediate amplitude quartic.
func Delta1(f1, f2, f3, v1, v2, v3, d1, d3 float64) float64 {
	f12, f13, f23 := f1-f2, f1-f3, f2-f3

	return (d3*f1*f13*f23*(2*f2*f3+f1*(f2+f3)) -
		(f3*(d1*f12*f13*sq(f23)*(2*f1*f2+(f1+f2)*f3)+
			2*f1*(pow4(f3)*(v1-v2)+
				3*pow4(f2)*(v1-v3)+
				pow4(f1)*(v2-v3)+
				4*cube(f2)*f3*(-v1+v3)+
				2*cube(f1)*f3*(-v2+v3)+
				f1*(2*cube(f3)*(-v1+v2)+
					6*sq(f2)*f3*(v1-v3)+
					4*cube(f2)*(-v1+v3)))))/
			sq(f12)) /
		(cube(f13) * sq(f23))
}

// Delta2 returns the quadratic coefficient of the intermediate amplitude quartic.
func Delta2(f1, f2, f3, v1, v2, v3, d1, d3 float64) float64 {
	f12, f13, f23 := f1-f2, f1-f3, f2-f3

	return (d1*f12*f13*sq(f23)*(f1*f2+2*(f1+f2)*f3+sq(f3)) -
		d3*sq(f12)*f13*f23*(sq(f1)+f2*f3+2*f1*(f2+f3)) -
		4*sq(f1)*cube(f2)*v1 +
		3*f1*pow4(f2)*v1 -
		4*f1*cube(f2)*f3*v1 +
		3*pow4(f2)*f3*v1 +
		12*sq(f1)*f2*sq(f3)*v1 -
		4*cube(f2)*sq(f3)*v1 -
		8*sq(f1)*cube(f3)*v1 +
		f1*pow4(f3)*v1 +
		pow5(f3)*v1 +
		pow5(f1)*v2 +
		pow4(f1)*f3*v2 -
		8*cube(f1)*sq(f3)*v2 +
		8*sq(f1)*cube(f3)*v2 -
		f1*pow4(f3)*v2 -
		pow5(f3)*v2 -
		sq(f12)*(cube(f1)+
			f2*(3*f2-4*f3)*f3+
			sq(f1)*(2*f2+f3)+
			f1*(3*f2-4*f3)*(f2+2*f3))*v3) /
		(sq(f12) * cube(f13) * sq(f23))
}

// Delta3 returns the cubic coefficient of the intermediate amplitude quartic.
func Delta3(f1, f2, f3, v1, v2, v3, d1, d3 float64) float64 {
	f12, f13, f23 := f1-f2, f1-f3, f2-f3

	return ((d3*f13*(2*f1+f2+f3))/f23 -
		(d1*f13*(f1+f2+2*f3))/f12 +
		(2*(pow4(f3)*(-v1+v2)+
			2*sq(f1)*sq(f23)*(v1-v3)+
			2*sq(f2)*sq(f3)*(v1-v3)+
			2*cube(f1)*f3*(v2-v3)+
			pow4(f2)*(-v1+v3)+
			pow4(f1)*(-v2+v3)+
			2*f1*f3*(sq(f3)*(v1-v2)+sq(f2)*(v1-v3)+2*f2*f3*(-v1+v3))))/
			(sq(f12)*sq(f23))) /
		cube(f13)
}

// Delta4 returns the quartic coefficient of the intermediate amplitude quartic.
func Delta4(f1, f2, f3, v1, v2, v3, d1, d3 float64) float64 {
	f12, f13, f23 := f1-f2, f1-f3, f2-f3

	return (-(d3 * sq(f12) * f13 * f23) +
		d1*f12*f13*sq(f23) -
		3*f1*sq(f2)*v1 +
		2*cube(f2)*v1 +
		6*f1*f2*f3*v1 -
		3*sq(f2)*f3*v1 -
		3*f1*sq(f3)*v1 +
		cube(f3)*v1 +
		cube(f1)*v2 -
		3*sq(f1)*f3*v2 +
		3*f1*sq(f3)*v2 -
		cube(f3)*v2 -
		sq(f12)*(f1+2*f2-3*f3)*v3) /
		(sq(f12) * cube(f13) * sq(f23))
}

func sq(x float64) float64   { return x * x }
func cube(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return sq(sq(x)) }
func pow5(x float64) float64 { return pow4(x) * x }
