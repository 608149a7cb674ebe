package numeric

import (
	"strconv"
	"strings"
)

// firstEightPrime answers primality for 0 through 7 directly.
var firstEightPrime = [8]bool{false, false, true, true, false, true, false, true}

// IsPrime reports whether n is prime. Negative numbers are never prime.
// Above the lookup table, candidates divisible by 2 or 3 are rejected and the
// remaining divisors are tried in 6k-1, 6k+1 pairs until 6k-1 passes sqrt(n).
func IsPrime(n int) bool {
	if n < 0 {
		return false
	}
	if n < len(firstEightPrime) {
		return firstEightPrime[n]
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for k := 1; ; k++ {
		d := 6*k - 1
		if d > n/d {
			return true
		}
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
}

// Primes returns every prime in [0, n) in ascending order.
func Primes(n int) []int {
	var primes []int
	for i := 0; i < n; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}

// FormatPrimes renders Primes(n) as a comma separated list such as "2, 3, 5, 7".
// It returns an empty string when the range holds no primes.
func FormatPrimes(n int) string {
	primes := Primes(n)
	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
