package phenomd

import (
	"errors"

	"github.com/tphakala/go-phenomd/internal/qnm"
)

// Common errors returned by the fail-fast entry points.
//
// The formula functions ([Erad], [RingdownFrequencies], [Coefficients],
// [TransitionFrequencies], [Delta0]..[Delta4]) never return errors: invalid
// input propagates as NaN or Inf exactly like the reference fits.
var (
	// ErrDomain indicates binary parameters outside the physical domain.
	ErrDomain = errors.New("binary parameters outside physical domain")

	// ErrDegenerateFrequencies indicates coincident or non-finite boundary frequencies.
	ErrDegenerateFrequencies = errors.New("degenerate boundary frequencies")

	// ErrInvalidConfig indicates invalid model configuration.
	ErrInvalidConfig = errors.New("invalid model configuration")

	// ErrInvalidTable indicates malformed QNM table data.
	ErrInvalidTable = qnm.ErrInvalidTable
)
