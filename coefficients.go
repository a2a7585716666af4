package phenomd

import (
	"fmt"

	"github.com/tphakala/go-phenomd/internal/fits"
	"github.com/tphakala/go-phenomd/internal/mathutil"
)

// Coefficient names one phenomenological coefficient of the model.
type Coefficient int

// Coefficients in calibration-table order.
const (
	// Inspiral amplitude.
	Rho1 Coefficient = iota
	Rho2
	Rho3

	// Intermediate amplitude collocation value.
	V2

	// Merger-ringdown amplitude.
	Gamma1
	Gamma2
	Gamma3

	// Inspiral phase.
	Sig1
	Sig2
	Sig3
	Sig4

	// Intermediate phase.
	Beta1
	Beta2
	Beta3

	// Merger-ringdown phase.
	A1
	A2
	A3
	A4
	A5

	// NumCoefficients is the length of a CoefficientVector.
	NumCoefficients
)

// The enumeration must cover the calibration table row for row.
var _ [fits.NumRows]struct{} = [NumCoefficients]struct{}{}

var coefficientNames = [NumCoefficients]string{
	"rho1", "rho2", "rho3",
	"v2",
	"gamma1", "gamma2", "gamma3",
	"sig1", "sig2", "sig3", "sig4",
	"beta1", "beta2", "beta3",
	"a1", "a2", "a3", "a4", "a5",
}

// String returns the coefficient name, e.g. "gamma2".
func (c Coefficient) String() string {
	if c < 0 || c >= NumCoefficients {
		return fmt.Sprintf("Coefficient(%d)", int(c))
	}
	return coefficientNames[c]
}

// ParseCoefficient returns the coefficient with the given name.
func ParseCoefficient(name string) (Coefficient, error) {
	for i, n := range coefficientNames {
		if n == name {
			return Coefficient(i), nil
		}
	}
	return 0, fmt.Errorf("unknown coefficient %q", name)
}

// CoefficientVector holds every phenomenological coefficient, indexed by [Coefficient].
type CoefficientVector [NumCoefficients]float64

// Get returns the value of coefficient c.
func (v CoefficientVector) Get(c Coefficient) float64 {
	return v[c]
}

// Map returns the coefficients keyed by name.
func (v CoefficientVector) Map() map[string]float64 {
	out := make(map[string]float64, NumCoefficients)
	for i, value := range v {
		out[coefficientNames[i]] = value
	}
	return out
}

// Coefficients evaluates every coefficient fit for p.
// Input is not validated; non-physical masses or spins give non-finite or
// meaningless results, see [BinaryParameters.Validate].
func (m *Model) Coefficients(p BinaryParameters) CoefficientVector {
	p = p.Canonical()
	eta := mathutil.SymmetricMassRatio(p.M1*MTSun, p.M2*MTSun)

	return CoefficientVector(m.fits.Evaluate(eta, ChiPN(eta, p.Chi1, p.Chi2)))
}
