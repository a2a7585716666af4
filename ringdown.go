package phenomd

import (
	"github.com/tphakala/go-phenomd/internal/mathutil"
)

// Ringdown holds the remnant's ringdown and damping frequencies in Hz.
type Ringdown struct {
	FRD   float64
	FDamp float64
}

// RingdownFrequencies returns the ringdown and damping frequencies of the
// remnant of p in Hz.
//
// The remnant spin selects a point of the QNM table; the interpolated
// frequencies are corrected for the radiated energy, then converted from
// units of 1/M to Hz. Spins outside the table clamp to its boundary values.
func (m *Model) RingdownFrequencies(p BinaryParameters) Ringdown {
	p = p.Canonical()
	m1s := p.M1 * MTSun
	m2s := p.M2 * MTSun
	ms := m1s + m2s
	eta := mathutil.SymmetricMassRatio(m1s, m2s)

	a := FinalSpin(eta, totalSpin(m1s, m2s, p.Chi1, p.Chi2))
	remnant := 1.0 - Erad(eta, p.Chi1, p.Chi2)
	fRD, fdamp := m.table.Interpolate(a)

	return Ringdown{
		FRD:   fRD / remnant / ms,
		FDamp: fdamp / remnant / ms,
	}
}
