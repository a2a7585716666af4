package phenomd

import (
	"fmt"
	"math"

	"github.com/tphakala/go-phenomd/internal/mathutil"
)

// BinaryParameters describes an aligned-spin binary.
type BinaryParameters struct {
	// M1 and M2 are the component masses in solar masses.
	M1, M2 float64

	// Chi1 and Chi2 are the dimensionless spin projections onto the orbital
	// angular momentum, each in [-1, 1].
	Chi1, Chi2 float64
}

// FromTheta builds parameters from the (m1, m2, chi1, chi2) tuple.
func FromTheta(theta [4]float64) BinaryParameters {
	return BinaryParameters{M1: theta[0], M2: theta[1], Chi1: theta[2], Chi2: theta[3]}
}

// Theta returns the (m1, m2, chi1, chi2) tuple.
func (p BinaryParameters) Theta() [4]float64 {
	return [4]float64{p.M1, p.M2, p.Chi1, p.Chi2}
}

// TotalMass returns m1 + m2 in solar masses.
func (p BinaryParameters) TotalMass() float64 {
	return p.M1 + p.M2
}

// Swap exchanges the labels of the two bodies.
func (p BinaryParameters) Swap() BinaryParameters {
	return BinaryParameters{M1: p.M2, M2: p.M1, Chi1: p.Chi2, Chi2: p.Chi1}
}

// Canonical returns the parameters labelled so that M1 >= M2.
// The fits assume the first body is the heavier one.
func (p BinaryParameters) Canonical() BinaryParameters {
	if p.M2 > p.M1 {
		return p.Swap()
	}
	return p
}

// Validate checks that masses are positive and finite and spins lie in [-1, 1].
func (p BinaryParameters) Validate() error {
	for _, m := range []struct {
		name  string
		value float64
	}{{"m1", p.M1}, {"m2", p.M2}} {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrDomain, m.name, m.value)
		}
	}

	for _, s := range []struct {
		name  string
		value float64
	}{{"chi1", p.Chi1}, {"chi2", p.Chi2}} {
		if math.IsNaN(s.value) || math.Abs(s.value) > maxSpinMagnitude {
			return fmt.Errorf("%w: %s must be in [-1, 1], got %g", ErrDomain, s.name, s.value)
		}
	}
	return nil
}

// MassSpinDerived holds the mass and spin combinations entering the fits.
type MassSpinDerived struct {
	TotalMass       float64 // solar masses
	GeometrizedMass float64 // total mass in seconds
	Eta             float64 // symmetric mass ratio
	Seta            float64 // sqrt(1 - 4*eta)
	ChiS            float64 // (chi1 + chi2) / 2
	ChiA            float64 // (chi1 - chi2) / 2
	ChiPN           float64 // post-Newtonian effective spin
	S               float64 // mass-squared-weighted total spin
	FinalSpin       float64 // remnant spin estimate
}

// Derive computes the derived mass and spin combinations for p.
// Parameters are put in canonical order first.
func Derive(p BinaryParameters) MassSpinDerived {
	p = p.Canonical()
	m1s := p.M1 * MTSun
	m2s := p.M2 * MTSun
	ms := m1s + m2s
	eta := mathutil.SymmetricMassRatio(m1s, m2s)
	s := totalSpin(m1s, m2s, p.Chi1, p.Chi2)

	return MassSpinDerived{
		TotalMass:       p.TotalMass(),
		GeometrizedMass: ms,
		Eta:             eta,
		Seta:            mathutil.Seta(eta),
		ChiS:            0.5 * (p.Chi1 + p.Chi2),
		ChiA:            0.5 * (p.Chi1 - p.Chi2),
		ChiPN:           ChiPN(eta, p.Chi1, p.Chi2),
		S:               s,
		FinalSpin:       FinalSpin(eta, s),
	}
}

// ChiPN returns the post-Newtonian spin combination
//
//	chiPN = chi_s*(1 - 76*eta/113) + sqrt(1-4*eta)*chi_a
//
// where chi1 belongs to the heavier body. It is NaN for eta > 0.25.
func ChiPN(eta, chi1, chi2 float64) float64 {
	chiS := 0.5 * (chi1 + chi2)
	chiA := 0.5 * (chi1 - chi2)
	return chiS*(1-chiPNEtaWeight*eta) + mathutil.Seta(eta)*chiA
}

// totalSpin weights the spins by the squared geometrized masses.
// This differs from the unit-mass weighting inside [Erad].
func totalSpin(m1s, m2s, chi1, chi2 float64) float64 {
	ms := m1s + m2s
	return (chi1*m1s*m1s + chi2*m2s*m2s) / (ms * ms)
}
