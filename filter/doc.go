// Package filter builds the two-channel polyphase filter banks consumed by
// the wavelet transforms in package dwt.
//
// A Bank is an ordered list of 2×2 tap blocks. Row 0 of every block is the
// low-pass (approximation) channel, row 1 the high-pass (detail) channel;
// column 0 multiplies the even phase of a signal and column 1 the odd phase.
// The number of taps is the filter order and bounds the cyclic shifts a
// transform applies (shift z for tap z).
//
// Two constructors are provided:
//
//   - Daubechies(order) for the fixed orthogonal Daubechies filters of order
//     1, 2 and 3 (2, 4 and 6 coefficients);
//   - Lattice(theta, 1) for an orthogonal filter with one vanishing moment
//     parametrized by free rotation angles. The angles are continuous, so the
//     wavelet basis itself can be searched or evolved.
//
// Banks are immutable values; accessors return copies.
package filter
