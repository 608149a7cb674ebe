package formatter

import (
	"bytes"
	"testing"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/numeric"
	"github.com/rail44/lessons/internal/scores"
)

func TestWriters(t *testing.T) {
	tests := []struct {
		name  string
		write func(*bytes.Buffer)
		want  string
	}{
		{"pi", func(b *bytes.Buffer) { Pi(b, 1, 4) }, "Approximation of pi with 1 terms: 4\n"},
		{"prime", func(b *bytes.Buffer) { Prime(b, 97, true) }, "97 is prime\n"},
		{"not prime", func(b *bytes.Buffer) { Prime(b, 100, false) }, "100 is not prime\n"},
		{"prime list", func(b *bytes.Buffer) { PrimeList(b, 10) }, "Primes below 10:\n2, 3, 5, 7\n"},
		{"empty prime list", func(b *bytes.Buffer) { PrimeList(b, 2) }, "Primes below 2:\n\n"},
		{"tax", func(b *bytes.Buffer) { Tax(b, 8500.000000000002) }, "Tax owed: 8500.00\n"},
		{"roots", func(b *bytes.Buffer) { Roots(b, numeric.Roots{X1: 2, X2: 1}, true) }, "Roots: 2.00, 1.00\n"},
		{"no roots", func(b *bytes.Buffer) { Roots(b, numeric.Roots{}, false) }, "No real solution\n"},
		{"sum squares", func(b *bytes.Buffer) { SumSquares(b, 3, 14) }, "Sum of squares up to 3: 14\n"},
		{"counts", func(b *bytes.Buffer) { Counts(b, filecount.Counts{Characters: 8, Blanks: 1, Lines: 2}) },
			"Characters: 8\nBlanks: 1\nLines: 2\n"},
		{"scores", func(b *bytes.Buffer) {
			Scores(b, scores.Summary{Average: 82.5, Min: scores.Record{Grade: 0}, Max: scores.Record{Name: "ada", Grade: 95}})
		}, "Average: 82.5\nMinimum: 0 ()\nMaximum: 95 (ada)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
