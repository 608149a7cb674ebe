package numeric

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func TestComputePi(t *testing.T) {
	if got := ComputePi(0); got != 0 {
		t.Errorf("ComputePi(0) = %v, want 0", got)
	}
	if got := ComputePi(-3); got != 0 {
		t.Errorf("ComputePi(-3) = %v, want 0", got)
	}
	if got := ComputePi(1); got != 4 {
		t.Errorf("ComputePi(1) = %v, want 4", got)
	}

	prevErr := math.Inf(1)
	for n := 1; n <= 500; n++ {
		err := math.Abs(ComputePi(n) - math.Pi)
		if err > prevErr {
			t.Fatalf("error grew at n=%d: %v > %v", n, err, prevErr)
		}
		prevErr = err
	}
	if prevErr > 0.01 {
		t.Errorf("ComputePi(500) is %v away from pi", prevErr)
	}
}

func TestComputeSqrt(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{4, 2},
		{2, 1.41421356},
		{1, 1},
		{9, 3},
		{100, 10},
	}

	for _, tt := range tests {
		if got := ComputeSqrt(tt.x); math.Abs(got-tt.want) > tolerance {
			t.Errorf("ComputeSqrt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	known := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true}
	for n := 0; n <= 20; n++ {
		if got := IsPrime(n); got != known[n] {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, known[n])
		}
	}

	tests := []struct {
		n    int
		want bool
	}{
		{-5, false},
		{-2, false},
		{25, false},
		{49, false},
		{97, true},
		{100, false},
		{121, false},
		{7919, true},
		{7921, false}, // 89²
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsPrimeNearIntLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("trial division up to sqrt(MaxInt64) takes a few seconds")
	}

	tests := []struct {
		n    int
		want bool
	}{
		{9223372036854775783, true},  // largest prime below 2^63
		{9223372036854775807, false}, // 2^63-1 = 7² · 73 · 127 · 337 · 92737 · 649657
		{9223372030926248971, true},  // largest prime <= 3037000499²
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFormatPrimes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{10, "2, 3, 5, 7"},
		{2, ""},
		{0, ""},
		{-4, ""},
		{3, "2"},
		{20, "2, 3, 5, 7, 11, 13, 17, 19"},
	}

	for _, tt := range tests {
		if got := FormatPrimes(tt.n); got != tt.want {
			t.Errorf("FormatPrimes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSumSquares(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{3, 14},
		{5, 55},
		{10, 385},
	}

	for _, tt := range tests {
		if got := SumSquares(tt.n); got != tt.want {
			t.Errorf("SumSquares(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// wrappingSumSquares sums term by term in uint64, wrapping on overflow
func wrappingSumSquares(n uint64) uint64 {
	var sum uint64
	for i := uint64(1); i <= n; i++ {
		sum += i * i
	}
	return sum
}

func TestSumSquaresWraps(t *testing.T) {
	// the exact sum passes 2^64 just above n = 3_800_000
	for _, n := range []uint64{3_000_000, 3_810_000, 5_000_000, 100_000_000} {
		if got, want := SumSquares(n), wrappingSumSquares(n); got != want {
			t.Errorf("SumSquares(%d) = %d, want wrapped %d", n, got, want)
		}
	}

	// inputs far beyond a term-by-term loop still return
	_ = SumSquares(math.MaxUint64)
}

func TestQuadratic(t *testing.T) {
	roots, ok := Quadratic(1, -3, 2)
	if !ok {
		t.Fatal("Quadratic(1, -3, 2) reported no solution")
	}
	if math.Abs(roots.X1-2) > tolerance || math.Abs(roots.X2-1) > tolerance {
		t.Errorf("Quadratic(1, -3, 2) = %+v, want {2 1}", roots)
	}

	if _, ok := Quadratic(1, 0, 1); ok {
		t.Error("Quadratic(1, 0, 1) should have no real solution")
	}
}

func TestQuadraticInto(t *testing.T) {
	var x1, x2 float64
	if !QuadraticInto(2, -6, 4, &x1, &x2) {
		t.Fatal("QuadraticInto(2, -6, 4) reported no solution")
	}
	want, _ := Quadratic(2, -6, 4)
	if x1 != want.X1 || x2 != want.X2 {
		t.Errorf("QuadraticInto stored (%v, %v), want (%v, %v)", x1, x2, want.X1, want.X2)
	}

	x1, x2 = 7, 8
	if QuadraticInto(1, 0, 1, &x1, &x2) {
		t.Error("QuadraticInto(1, 0, 1) should have no real solution")
	}
	if x1 != 7 || x2 != 8 {
		t.Errorf("slots changed without a solution: (%v, %v)", x1, x2)
	}
}
