// Package qnm provides the quasi-normal-mode lookup table used to map the
// remnant spin to the ringdown and damping frequencies.
//
// A [Table] holds three parallel sequences sorted by spin. Lookups use
// piecewise-linear interpolation and clamp to the boundary values outside
// the grid, so an out-of-range spin is never an error.
package qnm

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/interp"
)

// ErrInvalidTable indicates malformed table data.
var ErrInvalidTable = errors.New("invalid QNM table")

// Table is an immutable QNM lookup table. It is safe for concurrent use.
type Table struct {
	spin     []float64
	ringdown []float64
	damping  []float64

	ringdownFit interp.PiecewiseLinear
	dampingFit  interp.PiecewiseLinear
}

// New builds a table from the spin grid a and the dimensionless ringdown
// (fRD) and damping (fdamp) frequencies sampled on it. The slices are copied.
// The spin grid must be finite and strictly increasing with at least two nodes.
func New(a, fRD, fdamp []float64) (*Table, error) {
	if len(a) != len(fRD) || len(a) != len(fdamp) {
		return nil, fmt.Errorf("%w: column lengths differ (a=%d, fRD=%d, fdamp=%d)",
			ErrInvalidTable, len(a), len(fRD), len(fdamp))
	}
	if len(a) < minTableLength {
		return nil, fmt.Errorf("%w: need at least %d nodes, got %d", ErrInvalidTable, minTableLength, len(a))
	}
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: spin node %d is not finite", ErrInvalidTable, i)
		}
		if i > 0 && v <= a[i-1] {
			return nil, fmt.Errorf("%w: spin grid not strictly increasing at node %d (%g <= %g)",
				ErrInvalidTable, i, v, a[i-1])
		}
	}

	t := &Table{
		spin:     append([]float64(nil), a...),
		ringdown: append([]float64(nil), fRD...),
		damping:  append([]float64(nil), fdamp...),
	}
	if err := t.ringdownFit.Fit(t.spin, t.ringdown); err != nil {
		return nil, fmt.Errorf("%w: ringdown column: %w", ErrInvalidTable, err)
	}
	if err := t.dampingFit.Fit(t.spin, t.damping); err != nil {
		return nil, fmt.Errorf("%w: damping column: %w", ErrInvalidTable, err)
	}
	return t, nil
}

// Interpolate returns the ringdown and damping frequencies at spin a.
// Outside the grid the boundary values are returned. NaN yields NaN.
func (t *Table) Interpolate(a float64) (fRD, fdamp float64) {
	return t.FRD(a), t.FDamp(a)
}

// FRD returns the interpolated ringdown frequency at spin a.
func (t *Table) FRD(a float64) float64 {
	// PiecewiseLinear clamps NaN to the last node; keep NaN propagation explicit.
	if math.IsNaN(a) {
		return math.NaN()
	}
	return t.ringdownFit.Predict(a)
}

// FDamp returns the interpolated damping frequency at spin a.
func (t *Table) FDamp(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return t.dampingFit.Predict(a)
}

// Len returns the number of grid nodes.
func (t *Table) Len() int {
	return len(t.spin)
}

// Node returns the spin, ringdown and damping values stored at node i.
func (t *Table) Node(i int) (a, fRD, fdamp float64) {
	return t.spin[i], t.ringdown[i], t.damping[i]
}

// Bounds returns the first and last spin of the grid.
func (t *Table) Bounds() (lo, hi float64) {
	return t.spin[0], t.spin[len(t.spin)-1]
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Generate(defaultGridSize)
	if err != nil {
		panic(fmt.Sprintf("qnm: building default table: %v", err))
	}
	return t
})

// Default returns the process-wide table of Leaver continued-fraction
// solutions on a uniform spin grid over [-1, 1]. It is built on first use.
func Default() *Table {
	return defaultTable()
}
