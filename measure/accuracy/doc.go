// Package accuracy measures how far a fast approximation strays from its
// reference function over a sampled domain.
//
// A sweep evaluates both functions on an inclusive linear grid, forms the
// error vector approx - exact with algo-vecmath block kernels and reduces it
// to maximum, RMS and mean error. Points can be excluded from the sweep, for
// example the neighbourhoods of tangent's asymptotes.
package accuracy
