package numeric

import "math/big"

var wordMask = new(big.Int).SetUint64(^uint64(0))

// SumSquares returns 1² + 2² + ... + n², the same value as the recursive
// definition SumSquares(n) = n² + SumSquares(n-1). It is evaluated as
// n(n+1)(2n+1)/6 so any uint64 finishes in constant time and stack. The
// result wraps modulo 2^64 exactly as summing in uint64 would.
func SumSquares(n uint64) uint64 {
	x := new(big.Int).SetUint64(n)
	sum := new(big.Int).Add(x, big.NewInt(1))
	sum.Mul(sum, x)
	sum.Mul(sum, new(big.Int).Add(new(big.Int).Lsh(x, 1), big.NewInt(1)))
	sum.Quo(sum, big.NewInt(6))
	return sum.And(sum, wordMask).Uint64()
}
