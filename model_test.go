package phenomd

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-phenomd/internal/testutil"
)

func TestNewModel_NilConfig(t *testing.T) {
	m, err := NewModel(nil)
	require.NoError(t, err)
	require.NotNil(t, m)

	lo, hi := m.table.Bounds()
	assert.InDelta(t, -1.0, lo, 0)
	assert.InDelta(t, 1.0, hi, 0)
}

func TestNewModel_InvalidConfig(t *testing.T) {
	_, err := NewModel(&Config{QNMTable: &QNMTable{}})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewModel_LogsConstruction(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewModel(&Config{Logger: &logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PhenomD model initialized")
	assert.Contains(t, out, `"qnm_source":"leaver"`)
	assert.Contains(t, out, `"qnm_nodes":1001`)
}

func TestNewModel_QuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	_, err := NewModel(&Config{Logger: &logger})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestModel_Compute(t *testing.T) {
	p := BinaryParameters{M1: 36, M2: 29, Chi1: 0.3, Chi2: -0.2}

	res, err := Compute(p)
	require.NoError(t, err)

	assert.Equal(t, p, res.Params)
	assert.InDelta(t, 65.0, res.Derived.TotalMass, 1e-12)
	testutil.AssertInRange(t, res.Derived.Eta, 0.24, 0.25)

	// Stages must agree with the standalone entry points.
	assert.Equal(t, Coefficients(p), res.Coefficients)
	assert.Equal(t, RingdownFrequencies(p), res.Ringdown)
	assert.Equal(t, TransitionFrequencies(p, res.Coefficients.Get(Gamma2), res.Coefficients.Get(Gamma3)), res.Transitions)
	assert.Equal(t, res.Ringdown.FRD, res.Transitions.FRD)
	assert.Equal(t, res.Ringdown.FDamp, res.Transitions.FDamp)

	testutil.AssertNoNaNOrInf(t, res.Coefficients[:])
	tr := res.Transitions
	testutil.AssertNoNaNOrInf(t, []float64{tr.F1, tr.F2, tr.F3, tr.F4, tr.FRD, tr.FDamp})
}

func TestModel_ComputeDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		p    BinaryParameters
		want string
	}{
		{"Zero mass", BinaryParameters{M1: 0, M2: 10}, "m1"},
		{"Negative mass", BinaryParameters{M1: 10, M2: -1}, "m2"},
		{"NaN mass", BinaryParameters{M1: math.NaN(), M2: 10}, "m1"},
		{"Inf mass", BinaryParameters{M1: 10, M2: math.Inf(1)}, "m2"},
		{"Spin above one", BinaryParameters{M1: 10, M2: 10, Chi1: 1.01}, "chi1"},
		{"Spin below minus one", BinaryParameters{M1: 10, M2: 10, Chi2: -1.5}, "chi2"},
		{"NaN spin", BinaryParameters{M1: 10, M2: 10, Chi2: math.NaN()}, "chi2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.p)
			require.ErrorIs(t, err, ErrDomain)
			assert.Nil(t, res)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestModel_ComputeNearlyEqualMasses verifies masses a few ulps apart stay
// inside the physical domain instead of rounding to NaN.
func TestModel_ComputeNearlyEqualMasses(t *testing.T) {
	m2 := math.Nextafter(30, 31)
	for i := 1; i < 2000; i++ {
		p := BinaryParameters{M1: 30 + float64(i)*1e-13, M2: m2, Chi1: 0.3, Chi2: 0.1}
		res, err := Compute(p)
		require.NoError(t, err)

		if !assert.LessOrEqual(t, res.Derived.Eta, 0.25, "m1=%v", p.M1) ||
			!testutil.AssertNoNaNOrInf(t, res.Coefficients[:], "m1=%v", p.M1) ||
			!testutil.AssertNoNaNOrInf(t, []float64{res.Ringdown.FRD, res.Ringdown.FDamp, res.Transitions.F4}, "m1=%v", p.M1) {
			return
		}
	}
}

func TestModel_ComputeExtremalSpins(t *testing.T) {
	for _, chi := range []float64{-1, 1} {
		res, err := Compute(BinaryParameters{M1: 20, M2: 10, Chi1: chi, Chi2: chi})
		require.NoError(t, err)
		testutil.AssertNoNaNOrInf(t, res.Coefficients[:])
		assert.Positive(t, res.Ringdown.FRD)
		assert.Positive(t, res.Ringdown.FDamp)
	}
}

func TestModel_CustomTable(t *testing.T) {
	const csvTable = `# a, fRD, fdamp
a,fRD,fdamp
-1.0, 0.05, 0.014
0.0, 0.08, 0.0125
1.0, 0.32, 0.001
`
	table, err := LoadQNMTable(strings.NewReader(csvTable))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	fRD, fdamp := table.Interpolate(0.5)
	assert.InDelta(t, 0.2, fRD, 1e-15)
	assert.InDelta(t, 0.00675, fdamp, 1e-15)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	m, err := NewModel(&Config{QNMTable: table, Logger: &logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"qnm_source":"custom"`)

	p := BinaryParameters{M1: 30, M2: 30}
	d := Derive(p)
	wantFRD, _ := table.Interpolate(d.FinalSpin)
	wantFRD /= (1 - Erad(d.Eta, 0, 0)) * d.GeometrizedMass

	got := m.RingdownFrequencies(p)
	testutil.AssertRelativeError(t, wantFRD, got.FRD, 1e-14)
	assert.NotEqual(t, RingdownFrequencies(p).FRD, got.FRD)
}

func TestNewQNMTable_Errors(t *testing.T) {
	_, err := NewQNMTable([]float64{0, 1}, []float64{0.1}, []float64{0.01, 0.02})
	require.ErrorIs(t, err, ErrInvalidTable)

	_, err = LoadQNMTable(strings.NewReader("0,0.1,0.01\n0,0.2,0.02\n"))
	require.ErrorIs(t, err, ErrInvalidTable)

	_, err = LoadQNMTableFile("does-not-exist.csv")
	require.Error(t, err)
}

func TestModel_DisableSIMD(t *testing.T) {
	scalar, err := NewModel(&Config{DisableSIMD: true})
	require.NoError(t, err)

	p := BinaryParameters{M1: 50, M2: 12, Chi1: 0.8, Chi2: 0.1}
	want := DefaultModel().Coefficients(p)
	got := scalar.Coefficients(p)
	for i := range want {
		testutil.AssertClose(t, want[i], got[i], 1e-9, Coefficient(i).String())
	}
}

// TestModel_Concurrent verifies concurrent Compute calls on one model agree
// with sequential evaluation.
func TestModel_Concurrent(t *testing.T) {
	const goroutines = 16

	params := []BinaryParameters{
		{M1: 30, M2: 30},
		{M1: 36, M2: 29, Chi1: 0.3, Chi2: -0.2},
		{M1: 80, M2: 8, Chi1: 0.9, Chi2: 0.5},
		{M1: 5, M2: 1.4, Chi1: -0.7, Chi2: 0},
	}

	m := DefaultModel()
	want := make([]*Result, len(params))
	for i, p := range params {
		res, err := m.Compute(p)
		require.NoError(t, err)
		want[i] = res
	}

	results := make([][]*Result, goroutines)
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for _, p := range params {
				res, err := m.Compute(p)
				if err != nil {
					errs[g] = err
					return
				}
				results[g] = append(results[g], res)
			}
		}(g)
	}
	wg.Wait()

	for g := range goroutines {
		require.NoError(t, errs[g], "goroutine %d", g)
		require.Len(t, results[g], len(params))
		for i := range params {
			assert.Equal(t, want[i], results[g][i], "goroutine %d params %d", g, i)
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	m := DefaultModel()
	p := BinaryParameters{M1: 36, M2: 29, Chi1: 0.3, Chi2: -0.2}
	for b.Loop() {
		_, _ = m.Compute(p)
	}
}
