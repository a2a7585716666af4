package qnm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNoConvergence indicates the mode solver failed to converge.
var ErrNoConvergence = errors.New("QNM solver did not converge")

// mode is a Kerr quasi-normal mode in Leaver's units (2M = 1): the complex
// frequency, with negative imaginary part, and the angular separation constant.
type mode struct {
	omega complex128
	sep   complex128
}

// frequency converts a mode to M*omega_R and the damping rate M*omega_I.
func (m mode) frequency() (omegaR, omegaI float64) {
	return real(m.omega) / 2, -imag(m.omega) / 2
}

// radialFraction evaluates Leaver's radial continued fraction truncated at
// depth. Modes are roots in omega for fixed dimensionless spin aL = a/(2M).
// It diverges as |aL| reaches 1/2.
func radialFraction(m mode, aL float64, depth int) complex128 {
	w, sep := m.omega, m.sep
	b := math.Sqrt(1 - 4*aL*aL)
	j := complex(aL, 0)
	bc := complex(b, 0)

	t := (w/2 - j*azimuthalNumber) / bc
	c0 := 1 - spinWeight - 1i*w - 2i*t
	c1 := -4 + 2i*w*complex(2+b, 0) + 4i*t
	c2 := spinWeight + 3 - 3i*w - 2i*t
	c3 := w*w*complex(4+2*b-aL*aL, 0) - 2*j*azimuthalNumber*w - spinWeight - 1 +
		complex(2+b, 0)*1i*w - sep + (4*w+2i)*t
	c4 := spinWeight + 1 - 2*w*w - (2*spinWeight+3)*1i*w - (4*w+2i)*t

	var tail complex128
	for n := depth; n > 0; n-- {
		k := complex(float64(n), 0)
		alpha := (k-1)*(k-1) + (c0+1)*(k-1) + c0
		beta := -2*k*k + (c1+2)*k + c3
		gamma := k*k + (c2-3)*k + c4 - c2 + 2
		tail = alpha * gamma / (beta - tail)
	}
	return c3 - tail
}

// angularFraction evaluates Leaver's continued fraction for the spin-weighted
// spheroidal harmonic. Its roots in sep are the separation constants.
func angularFraction(m mode, aL float64) complex128 {
	k1 := math.Abs(azimuthalNumber-spinWeight) / 2
	k2 := math.Abs(azimuthalNumber+spinWeight) / 2
	ks := complex(k1+k2, 0)
	aw := complex(aL, 0) * m.omega

	beta := func(k complex128) complex128 {
		return k*(k-1) + 2*k*(ks+1-2*aw) -
			(2*aw*complex(2*k1+spinWeight+1, 0) - ks*(ks+1)) -
			(aw*aw + spinWeight*(spinWeight+1) + m.sep)
	}

	var tail complex128
	for n := angularDepth; n > 0; n-- {
		k := complex(float64(n), 0)
		alpha := -2 * k * (k + complex(2*k1, 0))
		gamma := 2 * aw * (k + ks + spinWeight)
		tail = alpha * gamma / (beta(k) - tail)
	}
	return beta(0) - tail
}

// radialDepth doubles the truncation depth until the radial fraction at m
// stops changing.
func radialDepth(m mode, aL float64) (int, error) {
	depth := minRadialDepth
	prev := radialFraction(m, aL, depth)
	for depth < maxRadialDepth {
		next := radialFraction(m, aL, 2*depth)
		depth *= 2
		if cmplx.Abs(next-prev) <= depthTolerance*math.Max(1, cmplx.Abs(next)) {
			return depth, nil
		}
		prev = next
	}
	return 0, fmt.Errorf("%w: radial fraction at a=%g needs more than %d terms",
		ErrNoConvergence, 2*aL, maxRadialDepth)
}

// solveMode finds the mode at spin a (units of M) nearest seed by Newton
// iteration on the radial and angular fractions jointly.
func solveMode(a float64, seed mode) (mode, error) {
	aL := a / 2
	depth, err := radialDepth(seed, aL)
	if err != nil {
		return mode{}, err
	}

	cur := seed
	for range maxNewtonIters {
		r0 := radialFraction(cur, aL, depth)
		q0 := angularFraction(cur, aL)

		hw := complex(newtonStep*cmplx.Abs(cur.omega), 0)
		hs := complex(newtonStep*math.Max(1, cmplx.Abs(cur.sep)), 0)
		byOmega := mode{omega: cur.omega + hw, sep: cur.sep}
		bySep := mode{omega: cur.omega, sep: cur.sep + hs}

		rw := (radialFraction(byOmega, aL, depth) - r0) / hw
		qw := (angularFraction(byOmega, aL) - q0) / hw
		rs := (radialFraction(bySep, aL, depth) - r0) / hs
		qs := (angularFraction(bySep, aL) - q0) / hs

		det := rw*qs - rs*qw
		if det == 0 {
			return mode{}, fmt.Errorf("%w: singular Jacobian at a=%g", ErrNoConvergence, a)
		}
		dw := (r0*qs - rs*q0) / det
		ds := (rw*q0 - r0*qw) / det
		cur.omega -= dw
		cur.sep -= ds

		if cmplx.IsNaN(cur.omega) || cmplx.IsInf(cur.omega) {
			return mode{}, fmt.Errorf("%w: diverged at a=%g", ErrNoConvergence, a)
		}
		if cmplx.Abs(dw) <= newtonTolerance*cmplx.Abs(cur.omega) &&
			cmplx.Abs(ds) <= newtonTolerance*math.Max(1, cmplx.Abs(cur.sep)) {
			return cur, nil
		}
	}
	return mode{}, fmt.Errorf("%w: a=%g after %d iterations", ErrNoConvergence, a, maxNewtonIters)
}

// continuation tracks one mode along the spin axis.
type continuation struct {
	spin float64
	mode mode
}

// newContinuation starts at the Schwarzschild mode.
func newContinuation() (*continuation, error) {
	seed := mode{omega: schwarzschildSeed, sep: polarIndex*(polarIndex+1) - spinWeight*(spinWeight+1)}
	m, err := solveMode(0, seed)
	if err != nil {
		return nil, err
	}
	return &continuation{spin: 0, mode: m}, nil
}

// advance moves the mode to spin to in steps of at most maxContinuationStep.
func (c *continuation) advance(to float64) error {
	from := c.spin
	steps := max(1, int(math.Ceil(math.Abs(to-from)/maxContinuationStep)))
	for k := 1; k <= steps; k++ {
		a := from + (to-from)*float64(k)/float64(steps)
		m, err := solveMode(a, c.mode)
		if err != nil {
			return err
		}
		c.spin, c.mode = a, m
	}
	return nil
}

// retrogradeLimit returns the a=-1 mode by quadratic extrapolation from
// three spins just inside the extremal limit, where the fraction diverges.
func (c *continuation) retrogradeLimit() (float64, float64, error) {
	var w [3]complex128
	for i, k := range []float64{3, 2, 1} {
		if err := c.advance(defaultSpinMin + k*extremalOffset); err != nil {
			return 0, 0, err
		}
		w[i] = c.mode.omega
	}
	omegaR, omegaI := mode{omega: 3*w[2] - 3*w[1] + w[0]}.frequency()
	return omegaR, omegaI, nil
}
