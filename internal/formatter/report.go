// Package formatter writes exercise results in the fixed text layout shared
// by the interactive menu and the one-shot commands.
package formatter

import (
	"fmt"
	"io"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/numeric"
	"github.com/rail44/lessons/internal/scores"
)

// Pi writes the Leibniz approximation for n terms
func Pi(w io.Writer, n int, value float64) {
	fmt.Fprintf(w, "Approximation of pi with %d terms: %v\n", n, value)
}

// Sqrt writes a square root result
func Sqrt(w io.Writer, x, root float64) {
	fmt.Fprintf(w, "Square root of %v: %v\n", x, root)
}

// Prime writes whether n is prime
func Prime(w io.Writer, n int, prime bool) {
	if prime {
		fmt.Fprintf(w, "%d is prime\n", n)
		return
	}
	fmt.Fprintf(w, "%d is not prime\n", n)
}

// PrimeList writes the comma separated primes below n on its own line.
// An empty range leaves just the newline.
func PrimeList(w io.Writer, n int) {
	fmt.Fprintf(w, "Primes below %d:\n", n)
	fmt.Fprintln(w, numeric.FormatPrimes(n))
}

// Scores writes the aggregate; the average is printed unformatted
func Scores(w io.Writer, s scores.Summary) {
	fmt.Fprintf(w, "Average: %v\n", s.Average)
	fmt.Fprintf(w, "Minimum: %d (%s)\n", s.Min.Grade, s.Min.Name)
	fmt.Fprintf(w, "Maximum: %d (%s)\n", s.Max.Grade, s.Max.Name)
}

// Tax writes the amount owed with two decimals
func Tax(w io.Writer, amount float64) {
	fmt.Fprintf(w, "Tax owed: %.2f\n", amount)
}

// Roots writes both roots with two decimals, or a no-solution line
func Roots(w io.Writer, roots numeric.Roots, ok bool) {
	if !ok {
		fmt.Fprintln(w, "No real solution")
		return
	}
	fmt.Fprintf(w, "Roots: %.2f, %.2f\n", roots.X1, roots.X2)
}

// SumSquares writes the sum of the first n squares
func SumSquares(w io.Writer, n, sum uint64) {
	fmt.Fprintf(w, "Sum of squares up to %d: %d\n", n, sum)
}

// Counts writes a file tally
func Counts(w io.Writer, c filecount.Counts) {
	fmt.Fprintf(w, "Characters: %d\n", c.Characters)
	fmt.Fprintf(w, "Blanks: %d\n", c.Blanks)
	fmt.Fprintf(w, "Lines: %d\n", c.Lines)
}
