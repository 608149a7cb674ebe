// Package filecount tallies characters, blanks and lines in text.
package filecount

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFileAccess wraps any failure to open or read the counted file.
var ErrFileAccess = errors.New("cannot access file")

// Counts is the result of a scan.
//
// Characters counts every rune including newlines. Blanks counts ASCII
// spaces only. Lines is one more than the number of newlines, so empty
// input reports one line.
type Counts struct {
	Characters int
	Blanks     int
	Lines      int
}

// Count scans r to the end.
func Count(r io.Reader) (Counts, error) {
	br := bufio.NewReader(r)
	counts := Counts{Lines: 1}
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return counts, err
		}

		counts.Characters++
		switch ch {
		case ' ':
			counts.Blanks++
		case '\n':
			counts.Lines++
		}
	}
}

// CountFile opens path, counts it and closes it again.
func CountFile(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	counts, err := Count(f)
	if err != nil {
		return Counts{}, fmt.Errorf("%w: failed to read %s: %w", ErrFileAccess, path, err)
	}
	return counts, nil
}
