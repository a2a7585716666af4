package qnm

import (
	"fmt"
	"math"

	"github.com/tphakala/go-phenomd/internal/simdops"
)

// Generate solves the l=m=2, n=0 Kerr quasi-normal mode on n uniformly spaced
// spins in [-1, 1] and returns the resulting table. Frequencies are in units
// of 1/M. Negative spins carry the counter-rotating continuation of the mode.
func Generate(n int) (*Table, error) {
	if n < minTableLength {
		return nil, fmt.Errorf("%w: need at least %d nodes, got %d", ErrInvalidTable, minTableLength, n)
	}

	spin := make([]float64, n)
	span := defaultSpinMax - defaultSpinMin
	for i := range spin {
		spin[i] = defaultSpinMin + span*float64(i)/float64(n-1)
	}

	omegaR := make([]float64, n)
	omegaI := make([]float64, n)

	up, err := newContinuation()
	if err != nil {
		return nil, fmt.Errorf("generating QNM table: %w", err)
	}
	down := *up

	for i, a := range spin {
		if a < 0 {
			continue
		}
		if a >= defaultSpinMax {
			omegaR[i], omegaI[i] = extremalOmega, 0
			continue
		}
		if err := up.advance(a); err != nil {
			return nil, fmt.Errorf("generating QNM table: %w", err)
		}
		omegaR[i], omegaI[i] = up.mode.frequency()
	}

	for i := n - 1; i >= 0; i-- {
		a := spin[i]
		if a >= 0 {
			continue
		}
		if a <= defaultSpinMin {
			omegaR[i], omegaI[i], err = down.retrogradeLimit()
		} else {
			err = down.advance(a)
			omegaR[i], omegaI[i] = down.mode.frequency()
		}
		if err != nil {
			return nil, fmt.Errorf("generating QNM table: %w", err)
		}
	}

	// Angular to cyclic frequency.
	ops := simdops.Default()
	fRD := make([]float64, n)
	fdamp := make([]float64, n)
	ops.Scale(fRD, omegaR, 1/(2*math.Pi))
	ops.Scale(fdamp, omegaI, 1/(2*math.Pi))

	return New(spin, fRD, fdamp)
}

// ModeFrequency returns M*omega_R and the damping rate M*omega_I of the
// l=m=2, n=0 mode of a Kerr hole with dimensionless spin a in [-1, 1].
// At a = 1 the mode is undamped with M*omega_R = 1.
func ModeFrequency(a float64) (omegaR, omegaI float64, err error) {
	if math.IsNaN(a) || a < defaultSpinMin || a > defaultSpinMax {
		return 0, 0, fmt.Errorf("spin %g outside [%g, %g]", a, defaultSpinMin, defaultSpinMax)
	}
	if a >= defaultSpinMax {
		return extremalOmega, 0, nil
	}

	c, err := newContinuation()
	if err != nil {
		return 0, 0, err
	}
	if a <= defaultSpinMin {
		return c.retrogradeLimit()
	}
	if err := c.advance(a); err != nil {
		return 0, 0, err
	}
	omegaR, omegaI = c.mode.frequency()
	return omegaR, omegaI, nil
}
