package phenomd

import (
	"sync"
)

var defaultModel = sync.OnceValue(func() *Model {
	m, err := NewModel(nil)
	if err != nil {
		panic("phenomd: building default model: " + err.Error())
	}
	return m
})

// DefaultModel returns the process-wide model using the built-in QNM table.
func DefaultModel() *Model {
	return defaultModel()
}

// Compute evaluates the full parameter pipeline for p with the default model.
func Compute(p BinaryParameters) (*Result, error) {
	return defaultModel().Compute(p)
}

// Coefficients evaluates every coefficient fit for p with the default model.
func Coefficients(p BinaryParameters) CoefficientVector {
	return defaultModel().Coefficients(p)
}

// RingdownFrequencies returns the ringdown and damping frequencies of p in Hz
// using the built-in QNM table.
func RingdownFrequencies(p BinaryParameters) Ringdown {
	return defaultModel().RingdownFrequencies(p)
}

// TransitionFrequencies returns the transition frequencies of p for the
// given gamma2 and gamma3 using the built-in QNM table.
func TransitionFrequencies(p BinaryParameters, gamma2, gamma3 float64) Transitions {
	return defaultModel().TransitionFrequencies(p, gamma2, gamma3)
}
