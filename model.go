package phenomd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tphakala/go-phenomd/internal/fits"
	"github.com/tphakala/go-phenomd/internal/qnm"
)

// QNMTable maps the remnant spin to dimensionless ringdown and damping
// frequencies. It is immutable and safe for concurrent use.
type QNMTable struct {
	table *qnm.Table
}

// NewQNMTable builds a table from a strictly increasing spin grid and the
// frequencies (in units of 1/M) sampled on it.
func NewQNMTable(a, fRD, fdamp []float64) (*QNMTable, error) {
	t, err := qnm.New(a, fRD, fdamp)
	if err != nil {
		return nil, err
	}
	return &QNMTable{table: t}, nil
}

// LoadQNMTable reads a three-column CSV table (a, fRD, fdamp).
func LoadQNMTable(r io.Reader) (*QNMTable, error) {
	t, err := qnm.Load(r)
	if err != nil {
		return nil, err
	}
	return &QNMTable{table: t}, nil
}

// LoadQNMTableFile reads a three-column CSV table from path.
func LoadQNMTableFile(path string) (*QNMTable, error) {
	t, err := qnm.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &QNMTable{table: t}, nil
}

// DefaultQNMTable returns the built-in table of the l=m=2, n=0 Kerr mode
// solved with Leaver's continued-fraction method.
func DefaultQNMTable() *QNMTable {
	return &QNMTable{table: qnm.Default()}
}

// Interpolate returns the ringdown and damping frequencies at spin a,
// clamped to the boundary values outside the grid.
func (t *QNMTable) Interpolate(a float64) (fRD, fdamp float64) {
	return t.table.Interpolate(a)
}

// Len returns the number of grid nodes.
func (t *QNMTable) Len() int {
	return t.table.Len()
}

// Bounds returns the spin range covered by the grid.
func (t *QNMTable) Bounds() (lo, hi float64) {
	return t.table.Bounds()
}

// Config holds model configuration. A nil *Config selects the defaults.
type Config struct {
	// QNMTable overrides the built-in QNM table.
	QNMTable *QNMTable

	// DisableSIMD forces the scalar kernels in the coefficient evaluator.
	DisableSIMD bool

	// Logger receives debug events during model construction.
	// Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.QNMTable != nil && c.QNMTable.table == nil {
		return fmt.Errorf("%w: QNM table is not initialized", ErrInvalidConfig)
	}
	return nil
}

// Model evaluates the PhenomD fits against one QNM table.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	table *qnm.Table
	fits  *fits.Evaluator
}

// NewModel creates a model from cfg.
func NewModel(cfg *Config) (*Model, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	source, table := "leaver", qnm.Default()
	if cfg.QNMTable != nil {
		source, table = "custom", cfg.QNMTable.table
	}

	lo, hi := table.Bounds()
	logger.Debug().
		Str("qnm_source", source).
		Int("qnm_nodes", table.Len()).
		Float64("spin_min", lo).
		Float64("spin_max", hi).
		Bool("simd", !cfg.DisableSIMD).
		Msg("PhenomD model initialized")

	return &Model{
		table: table,
		fits:  fits.NewEvaluator(!cfg.DisableSIMD),
	}, nil
}

// Result bundles every quantity derived for one binary.
type Result struct {
	Params       BinaryParameters
	Derived      MassSpinDerived
	Coefficients CoefficientVector
	Ringdown     Ringdown
	Transitions  Transitions
}

// Compute validates p and evaluates the full parameter pipeline:
// coefficients, ringdown frequencies and transition frequencies.
func (m *Model) Compute(p BinaryParameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	coeffs := m.Coefficients(p)
	transitions := m.TransitionFrequencies(p, coeffs.Get(Gamma2), coeffs.Get(Gamma3))

	return &Result{
		Params:       p,
		Derived:      Derive(p),
		Coefficients: coeffs,
		Ringdown:     Ringdown{FRD: transitions.FRD, FDamp: transitions.FDamp},
		Transitions:  transitions,
	}, nil
}
