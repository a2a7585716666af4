package main

// Default binary: an equal-mass, non-spinning 30+30 solar-mass system.
const (
	defaultMass1 = 30.0
	defaultMass2 = 30.0
	defaultChi1  = 0.0
	defaultChi2  = 0.0
)

const (
	defaultFormat   = formatText
	defaultLogLevel = "info"
	envPrefix       = "PHENOMD"
)

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig   = "config"
	keyMass1    = "m1"
	keyMass2    = "m2"
	keyChi1     = "chi1"
	keyChi2     = "chi2"
	keyQNMTable = "qnm-table"
	keyFormat   = "format"
	keyLogLevel = "log-level"
	keyNoSIMD   = "no-simd"
)
