// Package input reads line-oriented answers from a stream and parses them
// into the type the caller expects.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrParse is wrapped by every ParseError.
var ErrParse = errors.New("malformed input")

// ParseError describes a line that could not be parsed into the expected kind.
type ParseError struct {
	Input string // trimmed line as typed
	Kind  string // "integer", "unsigned integer" or "number"
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Kind)
}

// Unwrap lets errors.Is match both ErrParse and the strconv cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Number is the set of types Parse and Read understand.
type Number interface {
	int | int64 | uint64 | float64
}

// Reader reads one answer per line.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for line reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Line returns the next line with surrounding whitespace removed.
// A final line without a newline is still returned; io.EOF is only
// reported once nothing is left.
func (r *Reader) Line() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int reads a line as a signed integer.
func (r *Reader) Int() (int, error) {
	return Read[int](r)
}

// Uint reads a line as a non-negative integer.
func (r *Reader) Uint() (uint64, error) {
	return Read[uint64](r)
}

// Float reads a line as a floating point number.
func (r *Reader) Float() (float64, error) {
	return Read[float64](r)
}

// Read reads one line and parses it as T.
func Read[T Number](r *Reader) (T, error) {
	line, err := r.Line()
	if err != nil {
		var zero T
		return zero, err
	}
	return Parse[T](line)
}

// Parse converts s to T. s is trimmed first.
func Parse[T Number](s string) (T, error) {
	s = strings.TrimSpace(s)

	var zero T
	var (
		v    any
		err  error
		kind string
	)
	switch any(zero).(type) {
	case int:
		kind = "integer"
		v, err = strconv.Atoi(s)
	case int64:
		kind = "integer"
		v, err = strconv.ParseInt(s, 10, 64)
	case uint64:
		kind = "unsigned integer"
		v, err = strconv.ParseUint(s, 10, 64)
	case float64:
		kind = "number"
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return zero, &ParseError{Input: s, Kind: kind, Err: err}
	}
	return v.(T), nil
}
