package phenomd

import (
	"github.com/tphakala/go-phenomd/internal/mathutil"
)

// Erad returns the fraction of the total mass radiated in gravitational
// waves for a binary with symmetric mass ratio eta and spins chi1, chi2.
// chi1 is the spin of the heavier body.
//
// The component masses are re-derived from eta for unit total mass, and the
// spins are averaged with weights m1², m2². The result is NaN for eta > 0.25.
func Erad(eta, chi1, chi2 float64) float64 {
	seta := mathutil.Seta(eta)
	m1 := 0.5 * (1.0 + seta)
	m2 := 0.5 * (1.0 - seta)
	m1s := m1 * m1
	m2s := m2 * m2
	s := (m1s*chi1 + m2s*chi2) / (m1s + m2s)

	return EradFromSpin(eta, s)
}

// EradFromSpin evaluates the radiated-energy rational fit at symmetric mass
// ratio eta and effective spin s.
func EradFromSpin(eta, s float64) float64 {
	energy := mathutil.Horner(eta, eradEnergy[:]...)
	num := 1.0 + mathutil.Horner(eta, eradNumSpin[:]...)*s
	den := 1.0 + mathutil.Horner(eta, eradDenSpin[:]...)*s
	return energy * num / den
}

// FinalSpin returns the dimensionless spin of the remnant for symmetric mass
// ratio eta and mass-weighted total spin s. It diverges as eta approaches 0.
func FinalSpin(eta, s float64) float64 {
	s2 := s * s
	s3 := s2 * s

	spinTerm := (1.0/eta + finalSpinS[0][0] + finalSpinS[0][1]*eta) +
		(finalSpinS[1][0]+finalSpinS[1][1]*eta)*s +
		(finalSpinS[2][0]+finalSpinS[2][1]*eta)*s2 +
		(finalSpinS[3][0]+finalSpinS[3][1]*eta)*s3

	return eta * (mathutil.Horner(eta, finalSpinEta[:]...) + s*spinTerm)
}
