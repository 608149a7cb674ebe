package numeric

const newtonIterations = 10

// ComputeSqrt approximates the square root of x with exactly ten Newton
// steps starting from a guess of 1.0. There is no convergence check, so
// large inputs come back imprecise. Negative inputs produce a value that is
// not a square root; callers must check the sign first.
func ComputeSqrt(x float64) float64 {
	guess := 1.0
	for range newtonIterations {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}
