package input

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderLine(t *testing.T) {
	r := NewReader(strings.NewReader("  first \n\tsecond\nlast"))

	for _, want := range []string{"first", "second", "last"} {
		got, err := r.Line()
		if err != nil {
			t.Fatalf("Line() failed: %v", err)
		}
		if got != want {
			t.Errorf("Line() = %q, want %q", got, want)
		}
	}

	if _, err := r.Line(); !errors.Is(err, io.EOF) {
		t.Errorf("Line() at end = %v, want io.EOF", err)
	}
}

func TestReaderTyped(t *testing.T) {
	r := NewReader(strings.NewReader("42\n 7 \n-2.5\n-3\n"))

	n, err := r.Int()
	if err != nil || n != 42 {
		t.Errorf("Int() = %d, %v; want 42", n, err)
	}
	u, err := r.Uint()
	if err != nil || u != 7 {
		t.Errorf("Uint() = %d, %v; want 7", u, err)
	}
	f, err := r.Float()
	if err != nil || f != -2.5 {
		t.Errorf("Float() = %v, %v; want -2.5", f, err)
	}

	// unsigned reads reject negative numbers
	_, err = r.Uint()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Uint() on -3 = %v, want *ParseError", err)
	}
	if perr.Input != "-3" || perr.Kind != "unsigned integer" {
		t.Errorf("unexpected ParseError: %+v", perr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"int", func() error { _, err := Parse[int]("abc"); return err }},
		{"int64", func() error { _, err := Parse[int64]("1.5"); return err }},
		{"uint64", func() error { _, err := Parse[uint64]("-1"); return err }},
		{"float64", func() error { _, err := Parse[float64]("pi"); return err }},
		{"empty", func() error { _, err := Parse[int](""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}
