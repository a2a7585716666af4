package qnm

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-phenomd/internal/testutil"
)

// TestDefault_Grid verifies the shape of the generated table.
func TestDefault_Grid(t *testing.T) {
	tbl := Default()
	require.Equal(t, defaultGridSize, tbl.Len())

	lo, hi := tbl.Bounds()
	assert.InDelta(t, -1.0, lo, 0)
	assert.InDelta(t, 1.0, hi, 0)
	assert.Same(t, tbl, Default(), "default table must be built once")
}

// TestInterpolate_ExactAtNodes verifies interpolation reproduces every node.
func TestInterpolate_ExactAtNodes(t *testing.T) {
	tbl := Default()
	for i := 0; i < tbl.Len(); i++ {
		a, fRD, fdamp := tbl.Node(i)
		gotRD, gotDamp := tbl.Interpolate(a)
		if !assert.InDelta(t, fRD, gotRD, 0, "fRD at node %d (a=%g)", i, a) ||
			!assert.InDelta(t, fdamp, gotDamp, 0, "fdamp at node %d (a=%g)", i, a) {
			return
		}
	}
}

// TestInterpolate_Linear verifies midpoints are the average of adjacent nodes.
func TestInterpolate_Linear(t *testing.T) {
	tbl := Default()
	for _, i := range []int{0, 137, 499, 500, 842, tbl.Len() - 2} {
		a0, r0, d0 := tbl.Node(i)
		a1, r1, d1 := tbl.Node(i + 1)
		fRD, fdamp := tbl.Interpolate(0.5 * (a0 + a1))
		assert.InDelta(t, 0.5*(r0+r1), fRD, 1e-15, "fRD midpoint after node %d", i)
		assert.InDelta(t, 0.5*(d0+d1), fdamp, 1e-15, "fdamp midpoint after node %d", i)
	}
}

// TestInterpolate_ClampsOutsideGrid verifies boundary values are returned off-grid.
func TestInterpolate_ClampsOutsideGrid(t *testing.T) {
	tbl := Default()
	_, firstRD, firstDamp := tbl.Node(0)
	_, lastRD, lastDamp := tbl.Node(tbl.Len() - 1)

	fRD, fdamp := tbl.Interpolate(-3.5)
	assert.InDelta(t, firstRD, fRD, 0)
	assert.InDelta(t, firstDamp, fdamp, 0)

	fRD, fdamp = tbl.Interpolate(1.2)
	assert.InDelta(t, lastRD, fRD, 0)
	assert.InDelta(t, lastDamp, fdamp, 0)
}

// TestInterpolate_NaN verifies NaN spins are not clamped.
func TestInterpolate_NaN(t *testing.T) {
	fRD, fdamp := Default().Interpolate(math.NaN())
	assert.True(t, math.IsNaN(fRD))
	assert.True(t, math.IsNaN(fdamp))
}

// TestDefault_ReferenceModes checks table nodes against converged Kerr modes.
func TestDefault_ReferenceModes(t *testing.T) {
	tests := []struct {
		a              float64
		omegaR, omegaI float64
		tolerance      float64
	}{
		{0, 0.37367168441804, 0.08896231568894, 1e-10},
		{0.7, 0.5326002436, 0.0807928732, 1e-9},
		{0.9, 0.6716142721, 0.0648692359, 1e-9},
		{0.99, 0.8708926587, 0.0293904242, 1e-9},
	}

	tbl := Default()
	for _, tt := range tests {
		fRD, fdamp := tbl.Interpolate(tt.a)
		testutil.AssertRelativeError(t, tt.omegaR, 2*math.Pi*fRD, tt.tolerance, "omegaR at a=%g", tt.a)
		testutil.AssertRelativeError(t, tt.omegaI, 2*math.Pi*fdamp, tt.tolerance, "omegaI at a=%g", tt.a)
	}
}

// TestDefault_SmoothAcrossZero verifies the retrograde and prograde halves join
// without a step at a=0.
func TestDefault_SmoothAcrossZero(t *testing.T) {
	tbl := Default()
	center := tbl.Len() / 2
	a, _, _ := tbl.Node(center)
	require.InDelta(t, 0.0, a, 0)

	for _, column := range []func(i int) float64{
		func(i int) float64 { _, v, _ := tbl.Node(i); return v },
		func(i int) float64 { _, _, v := tbl.Node(i); return v },
	} {
		backward := column(center) - column(center-1)
		forward := column(center+1) - column(center)
		assert.InDelta(t, forward, backward, 0.05*math.Abs(forward))
	}
}

// TestDefault_ProgradeMonotonic verifies fRD grows with prograde spin.
func TestDefault_ProgradeMonotonic(t *testing.T) {
	tbl := Default()
	var prograde, retrograde []float64
	for i := 0; i < tbl.Len(); i++ {
		a, fRD, fdamp := tbl.Node(i)
		if a >= 0 {
			prograde = append(prograde, fRD)
		} else {
			retrograde = append(retrograde, fRD)
		}
		testutil.AssertInRange(t, fdamp, 0, 0.02)
	}
	testutil.AssertMonotonic(t, prograde)
	testutil.AssertMonotonic(t, retrograde)
}

// TestModeFrequency_Extremal verifies both extremal limits.
func TestModeFrequency_Extremal(t *testing.T) {
	omegaR, omegaI, err := ModeFrequency(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, omegaR, 0)
	assert.InDelta(t, 0.0, omegaI, 0, "extremal prograde mode is undamped")

	omegaR, omegaI, err = ModeFrequency(-1)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, 0.2915535, omegaR, 1e-6)
	testutil.AssertRelativeError(t, 0.0880258, omegaI, 1e-6)

	fRD, fdamp := Default().Interpolate(-1)
	testutil.AssertRelativeError(t, omegaR, 2*math.Pi*fRD, 1e-12)
	testutil.AssertRelativeError(t, omegaI, 2*math.Pi*fdamp, 1e-12)
}

// TestModeFrequency_MatchesTable verifies single-spin solves agree with the grid.
func TestModeFrequency_MatchesTable(t *testing.T) {
	tbl := Default()
	for _, i := range []int{100, 250, 500, 750, 900} {
		a, fRD, fdamp := tbl.Node(i)
		omegaR, omegaI, err := ModeFrequency(a)
		require.NoError(t, err)
		testutil.AssertRelativeError(t, 2*math.Pi*fRD, omegaR, 1e-10, "omegaR at a=%g", a)
		testutil.AssertRelativeError(t, 2*math.Pi*fdamp, omegaI, 1e-10, "omegaI at a=%g", a)
	}
}

// TestModeFrequency_OutOfRange verifies spins beyond the Kerr bound are rejected.
func TestModeFrequency_OutOfRange(t *testing.T) {
	for _, a := range []float64{-1.01, 1.5, math.NaN()} {
		_, _, err := ModeFrequency(a)
		assert.Error(t, err, "a=%g", a)
	}
}

// TestGenerate_CoarseGrid verifies small grids solve every node.
func TestGenerate_CoarseGrid(t *testing.T) {
	tbl, err := Generate(5)
	require.NoError(t, err)
	require.Equal(t, 5, tbl.Len())

	a, fRD, fdamp := tbl.Node(1)
	assert.InDelta(t, -0.5, a, 0)
	testutil.AssertRelativeError(t, 0.3243073143, 2*math.Pi*fRD, 1e-9)
	testutil.AssertRelativeError(t, 0.0890315451, 2*math.Pi*fdamp, 1e-9)

	_, fRD, fdamp = tbl.Node(4)
	assert.InDelta(t, 1/(2*math.Pi), fRD, 1e-15)
	assert.InDelta(t, 0.0, fdamp, 0)
}

// TestNew_Errors verifies malformed tables are rejected.
func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		a     []float64
		fRD   []float64
		fdamp []float64
		msg   string
	}{
		{"Length mismatch", []float64{0, 1}, []float64{1}, []float64{1, 2}, "column lengths differ"},
		{"Too short", []float64{0}, []float64{1}, []float64{1}, "at least 2 nodes"},
		{"Not increasing", []float64{0, 0.5, 0.5}, []float64{1, 2, 3}, []float64{1, 2, 3}, "strictly increasing"},
		{"Decreasing", []float64{1, 0}, []float64{1, 2}, []float64{1, 2}, "strictly increasing"},
		{"NaN spin", []float64{0, math.NaN()}, []float64{1, 2}, []float64{1, 2}, "not finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.a, tt.fRD, tt.fdamp)
			require.ErrorIs(t, err, ErrInvalidTable)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

// TestNew_CopiesInput verifies later mutation of the inputs has no effect.
func TestNew_CopiesInput(t *testing.T) {
	a := []float64{0, 1}
	fRD := []float64{0.1, 0.2}
	fdamp := []float64{0.01, 0.02}
	tbl, err := New(a, fRD, fdamp)
	require.NoError(t, err)

	fRD[0] = 99
	a[1] = 42
	got, _ := tbl.Interpolate(0)
	assert.InDelta(t, 0.1, got, 0)
	_, hi := tbl.Bounds()
	assert.InDelta(t, 1.0, hi, 0)
}

// TestGenerate_TooFewNodes verifies the grid size is validated.
func TestGenerate_TooFewNodes(t *testing.T) {
	_, err := Generate(1)
	require.ErrorIs(t, err, ErrInvalidTable)
}

// TestLoad reads a small CSV table with a header and comments.
func TestLoad(t *testing.T) {
	data := strings.Join([]string{
		"# l=2 m=2 n=0",
		"a,fRD,fdamp",
		"-0.5, 0.050, 0.0140",
		"0.0, 0.059, 0.0141",
		"0.5, 0.074, 0.0137",
	}, "\n")

	tbl, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	fRD, fdamp := tbl.Interpolate(0.25)
	assert.InDelta(t, 0.0665, fRD, 1e-15)
	assert.InDelta(t, 0.0139, fdamp, 1e-15)
}

// TestLoad_Errors verifies malformed CSV input is rejected.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Bad number", "0,0.1,0.01\n1,oops,0.02\n"},
		{"Wrong column count", "0,0.1,0.01\n1,0.2\n"},
		{"Single row", "0,0.1,0.01\n"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.data))
			require.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

// TestLoadFile reads a table from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qnm.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0.1,0.01\n1,0.2,0.02\n"), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open QNM table")
}

// BenchmarkInterpolate measures one table lookup.
func BenchmarkInterpolate(b *testing.B) {
	tbl := Default()
	for b.Loop() {
		_, _ = tbl.Interpolate(0.6864)
	}
}
