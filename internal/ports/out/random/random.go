package random

// Source provides the uniform draw that decides simulated payment outcomes.
//
// It is a port for the same reason Clock is: the draw is the only nondeterminism in
// the payment path, and tests need to force both branches.
type Source interface {
	// Float64 returns a uniformly distributed value in [0, 1).
	Float64() float64
}
