package numeric

// ComputePi approximates pi with the first n terms of the Leibniz series
// 4 * (1 - 1/3 + 1/5 - ...). For n <= 0 no terms are summed and the result is 0.
func ComputePi(n int) float64 {
	sum := 0.0
	sign := 1.0
	for k := 0; k < n; k++ {
		sum += sign / float64(2*k+1)
		sign = -sign
	}

	// the series converges to pi/4
	return sum * 4
}
