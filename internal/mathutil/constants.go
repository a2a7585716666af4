package mathutil

// Symmetric mass ratio of an equal-mass binary, its upper bound.
const (
	equalMassEta   = 0.25
	quarterInverse = 1 / equalMassEta
)
