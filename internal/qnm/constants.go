package qnm

// Default grid over the remnant spin.
const (
	defaultSpinMin  = -1.0
	defaultSpinMax  = 1.0
	defaultGridSize = 1001 // uniform step of 0.002
	minTableLength  = 2
)

// Mode indices of the dominant gravitational ringdown: s=-2, l=m=2, n=0.
const (
	spinWeight      = -2.0
	polarIndex      = 2.0
	azimuthalNumber = 2.0
)

// Leaver continued-fraction solver, in units with 2M = 1.
const (
	minRadialDepth  = 256
	maxRadialDepth  = 1 << 17
	depthTolerance  = 1e-13
	angularDepth    = 100
	newtonStep      = 1e-7 // relative finite-difference step
	newtonTolerance = 1e-12
	maxNewtonIters  = 50

	// schwarzschildSeed is a starting guess near the a=0 mode, 2M*omega.
	schwarzschildSeed = 0.7473 - 0.1779i
)

// Continuation along the spin grid, in units of M.
const (
	maxContinuationStep = 0.01

	// extremalOffset spaces the nodes of the a=-1 extrapolation.
	extremalOffset = 0.002

	// extremalOmega is M*omega of the undamped a=1 limit, m*Omega_H.
	extremalOmega = azimuthalNumber / 2
)

// CSV layout
const (
	csvColumns     = 3
	csvComment     = '#'
	columnSpin     = 0
	columnRingdown = 1
	columnDamping  = 2
)
