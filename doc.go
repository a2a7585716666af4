// Package phenomd computes the fitted phenomenological parameters and
// transition frequencies of the IMRPhenomD aligned-spin waveform model.
//
// Given component masses (in solar masses) and dimensionless aligned spins,
// the package provides:
//
//   - the ringdown and damping frequencies of the remnant, from a
//     quasi-normal-mode table (Leaver continued-fraction solutions of the
//     l=m=2 Kerr mode) and the radiated-energy fit
//   - the 19 phenomenological coefficients (rho1..a5) of the amplitude and
//     phase ansätze
//   - the frequencies separating the inspiral, intermediate and
//     merger-ringdown regimes
//   - the closed-form coefficients of the intermediate amplitude polynomial
//
// Waveform assembly from these quantities is left to the caller.
//
// # Quick Start
//
//	p := phenomd.BinaryParameters{M1: 36, M2: 29, Chi1: 0.3, Chi2: -0.1}
//	res, err := phenomd.Compute(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Transitions.F4, res.Coefficients.Get(phenomd.Gamma2))
//
// A [Model] may be created with a custom QNM table, for example the
// calibrated table distributed with LALSuite exported to CSV:
//
//	table, err := phenomd.LoadQNMTableFile("qnm_l2m2n0.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := phenomd.NewModel(&phenomd.Config{QNMTable: table})
//
// # Error Handling
//
// The formula functions mirror the reference fits: they never fail, and
// input outside the physical domain (eta > 0.25, coincident boundary
// frequencies) propagates as NaN or Inf. [Model.Compute],
// [BinaryParameters.Validate], [BoundaryConstraints.Validate] and
// [SolveDeltasLU] fail fast with [ErrDomain] or [ErrDegenerateFrequencies].
//
// # Label Convention
//
// The fits treat the first body as the heavier one. Model methods reorder
// their input so that M1 >= M2, which makes every result invariant under
// exchanging the two bodies. The low-level [Erad] and [ChiPN] functions take
// the heavier body's spin first and do not reorder.
//
// # Thread Safety
//
// All functions are pure. [Model] and [QNMTable] values are immutable and
// may be shared between goroutines without locking.
package phenomd
