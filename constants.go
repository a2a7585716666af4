package phenomd

// Physical constants (SI) used to geometrize masses.
const (
	// MassSun is the nominal solar mass in kg.
	MassSun = 1.988409902147041637325262574352366540e30

	// GravitationalConstant is Newton's constant in m³ kg⁻¹ s⁻².
	GravitationalConstant = 6.67430e-11

	// SpeedOfLight is the speed of light in vacuum in m/s.
	SpeedOfLight = 299792458.0
)

// MTSun is G*Msun/c³: one solar mass expressed in seconds.
const MTSun = GravitationalConstant * MassSun / (SpeedOfLight * SpeedOfLight * SpeedOfLight)

// Dimensionless (Mf) transition frequencies
const (
	phaseJoinFrequency     = 0.018 // inspiral/intermediate phase boundary
	amplitudeJoinFrequency = 0.014 // inspiral/intermediate amplitude boundary
	mergerFrequencyDivisor = 2.0   // f2 = fRD / 2
)

// Spin limits
const (
	maxSpinMagnitude = 1.0
	chiPNEtaWeight   = 76.0 / 113.0 // leading spin-orbit weighting of chiPN
)

// Radiated-energy fit of Husa et al. (2016).
// Polynomials are in ascending powers of eta.
var (
	eradEnergy  = [...]float64{0, 0.055974469826360077, 0.5809510763115132, -0.9606726679372312, 3.352411249771192}
	eradNumSpin = [...]float64{-0.0030302335878845507, -2.0066110851351073, 7.7050567802399215}
	eradDenSpin = [...]float64{-0.6714403054720589, -1.4756929437702908, 7.304676214885011}
)

// Final-spin fit of Husa et al. (2016). finalSpinEta is the non-spinning part in ascending powers
// of eta; finalSpinS[k] holds the eta-linear coefficients of S^(k+1), with
// the leading term's 1/eta contribution added separately.
var (
	finalSpinEta = [...]float64{3.4641016151377544, -4.399247300629289, 9.397292189321194, -13.180949901606242}
	finalSpinS   = [...][2]float64{
		{-0.0850917821418767, -5.837029316602263},
		{0.1014665242971878, -2.0967746996832157},
		{-1.3546806617824356, 4.108962025369336},
		{-0.8676969352555539, 2.064046835273906},
	}
)
