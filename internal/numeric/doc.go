// Package numeric holds the small math kernels behind the menu exercises:
// a Leibniz approximation of pi, a fixed-iteration Newton square root,
// a 6k±1 primality test, a quadratic solver and a recursive sum of squares.
//
// Every function is pure. None of them validate their input beyond what is
// documented; callers guard the edge cases.
package numeric
