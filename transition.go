package phenomd

import (
	"math"
)

// Transitions holds the regime boundaries of the phase and amplitude models
// together with the ringdown frequencies they derive from. All values in Hz.
type Transitions struct {
	F1 float64 // phase: inspiral / intermediate
	F2 float64 // phase: intermediate / merger-ringdown
	F3 float64 // amplitude: inspiral / intermediate
	F4 float64 // amplitude: intermediate / merger-ringdown (peak)

	FRD   float64
	FDamp float64
}

// TransitionFrequencies returns the transition frequencies of p for the
// merger-ringdown amplitude shape parameters gamma2 and gamma3.
func (m *Model) TransitionFrequencies(p BinaryParameters, gamma2, gamma3 float64) Transitions {
	rd := m.RingdownFrequencies(p)
	ms := p.TotalMass() * MTSun

	return Transitions{
		F1:    phaseJoinFrequency / ms,
		F2:    rd.FRD / mergerFrequencyDivisor,
		F3:    amplitudeJoinFrequency / ms,
		F4:    PeakFrequency(rd.FRD, rd.FDamp, gamma2, gamma3),
		FRD:   rd.FRD,
		FDamp: rd.FDamp,
	}
}

// TransitionsFor returns the transition frequencies of p using gamma2 and
// gamma3 from the coefficient fits.
func (m *Model) TransitionsFor(p BinaryParameters) Transitions {
	c := m.Coefficients(p)
	return m.TransitionFrequencies(p, c.Get(Gamma2), c.Get(Gamma3))
}

// PeakFrequency returns the frequency at which the merger-ringdown amplitude
// ansatz peaks. Both branch formulas are pure, so callers evaluating many
// parameter sets may compute them unconditionally and select afterwards.
func PeakFrequency(fRD, fdamp, gamma2, gamma3 float64) float64 {
	if gamma2 >= 1 {
		return PeakFrequencyOverdamped(fRD, fdamp, gamma2, gamma3)
	}
	return PeakFrequencyUnderdamped(fRD, fdamp, gamma2, gamma3)
}

// PeakFrequencyOverdamped is the gamma2 >= 1 branch: |fRD - fdamp*gamma3/gamma2|.
func PeakFrequencyOverdamped(fRD, fdamp, gamma2, gamma3 float64) float64 {
	return math.Abs(fRD - fdamp*gamma3/gamma2)
}

// PeakFrequencyUnderdamped is the gamma2 < 1 branch:
// |fRD + fdamp*(sqrt(1-gamma2²)-1)*gamma3/gamma2|. It is NaN for |gamma2| > 1.
func PeakFrequencyUnderdamped(fRD, fdamp, gamma2, gamma3 float64) float64 {
	return math.Abs(fRD + fdamp*(math.Sqrt(1-gamma2*gamma2)-1)*gamma3/gamma2)
}
