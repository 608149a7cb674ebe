package menu

import (
	"fmt"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/input"
	"github.com/rail44/lessons/internal/numeric"
	"github.com/rail44/lessons/internal/scores"
	"github.com/rail44/lessons/internal/tax"
)

// entry is one menu line. A nil run quits.
type entry struct {
	number int
	label  string
	run    func(*Menu) error
}

var entries = []entry{
	{1, "Compute pi", runPi},
	{2, "Compute square root", runSqrt},
	{3, "Primes (test n, then list primes below n)", runPrimes},
	{4, "Process scores", runScores},
	{5, "Compute tax", runTax},
	{6, "Solve quadratic", runQuadratic},
	{7, "Solve quadratic (output slots)", runQuadraticSlots},
	{8, "Sum of squares", runSumSquares},
	{9, "Count file", runCount},
	{10, "Quit", nil},
}

func lookup(number int) (entry, bool) {
	for _, e := range entries {
		if e.number == number {
			return e, true
		}
	}
	return entry{}, false
}

func ask[T input.Number](m *Menu, prompt string) (T, error) {
	fmt.Fprint(m.out, prompt)
	return input.Read[T](m.in)
}

func askLine(m *Menu, prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	return m.in.Line()
}

func runPi(m *Menu) error {
	n, err := ask[int](m, "Number of terms: ")
	if err != nil {
		return err
	}
	formatter.Pi(m.out, n, numeric.ComputePi(n))
	return nil
}

func runSqrt(m *Menu) error {
	x, err := ask[float64](m, "Number: ")
	if err != nil {
		return err
	}
	formatter.Sqrt(m.out, x, numeric.ComputeSqrt(x))
	return nil
}

func runPrimes(m *Menu) error {
	n, err := ask[int](m, "Number: ")
	if err != nil {
		return err
	}
	formatter.Prime(m.out, n, numeric.IsPrime(n))
	formatter.PrimeList(m.out, n)
	return nil
}

func runScores(m *Menu) error {
	summary, err := scores.Process(m.in, m.out)
	if err != nil {
		return err
	}
	formatter.Scores(m.out, summary)
	return nil
}

func runTax(m *Menu) error {
	income, err := ask[int64](m, "Income: ")
	if err != nil {
		return err
	}
	status, err := askLine(m, "Filing status (married/single): ")
	if err != nil {
		return err
	}
	state, err := askLine(m, "State (i/o): ")
	if err != nil {
		return err
	}

	owed, err := tax.Compute(income, status, tax.StateCode(state))
	if err != nil {
		return err
	}
	formatter.Tax(m.out, owed)
	return nil
}

func readCoefficients(m *Menu) (a, b, c float64, err error) {
	if a, err = ask[float64](m, "a: "); err != nil {
		return
	}
	if b, err = ask[float64](m, "b: "); err != nil {
		return
	}
	c, err = ask[float64](m, "c: ")
	return
}

func runQuadratic(m *Menu) error {
	a, b, c, err := readCoefficients(m)
	if err != nil {
		return err
	}
	roots, ok := numeric.Quadratic(a, b, c)
	formatter.Roots(m.out, roots, ok)
	return nil
}

func runQuadraticSlots(m *Menu) error {
	a, b, c, err := readCoefficients(m)
	if err != nil {
		return err
	}
	var x1, x2 float64
	ok := numeric.QuadraticInto(a, b, c, &x1, &x2)
	formatter.Roots(m.out, numeric.Roots{X1: x1, X2: x2}, ok)
	return nil
}

func runSumSquares(m *Menu) error {
	n, err := ask[uint64](m, "n: ")
	if err != nil {
		return err
	}
	formatter.SumSquares(m.out, n, numeric.SumSquares(n))
	return nil
}

func runCount(m *Menu) error {
	path, err := askLine(m, "File path: ")
	if err != nil {
		return err
	}
	counts, err := filecount.CountFile(path)
	if err != nil {
		return err
	}
	formatter.Counts(m.out, counts)
	return nil
}
