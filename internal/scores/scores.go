// Package scores aggregates named grades into summary statistics.
package scores

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrNoRecords is returned when an average is requested over zero records.
var ErrNoRecords = errors.New("no score records")

// Record is one student's grade.
type Record struct {
	Name  string
	Grade uint64
}

// Summary is the result of one aggregation pass.
type Summary struct {
	Count   int
	Total   uint64
	Average float64
	Min     Record
	Max     Record
}

// Aggregator accumulates records one at a time.
//
// The running minimum starts at 0 and the running maximum at MaxUint64, and
// both only move on a strict comparison. With unsigned grades neither can
// ever move, so Min and Max keep their seeds and an empty name.
type Aggregator struct {
	count int
	total uint64
	min   Record
	max   Record
}

// NewAggregator returns an Aggregator with the seeded extremes.
func NewAggregator() *Aggregator {
	return &Aggregator{
		min: Record{Grade: 0},
		max: Record{Grade: math.MaxUint64},
	}
}

// Add folds r into the running totals.
func (a *Aggregator) Add(r Record) {
	a.count++
	a.total += r.Grade
	if r.Grade < a.min.Grade {
		a.min = r
	}
	if r.Grade > a.max.Grade {
		a.max = r
	}
}

// Summary returns the statistics so far, or ErrNoRecords if nothing was added.
func (a *Aggregator) Summary() (Summary, error) {
	if a.count == 0 {
		return Summary{}, ErrNoRecords
	}
	return Summary{
		Count:   a.count,
		Total:   a.total,
		Average: float64(a.total) / float64(a.count),
		Min:     a.min,
		Max:     a.max,
	}, nil
}

// Source supplies answers to the prompts Process writes.
type Source interface {
	Line() (string, error)
	Uint() (uint64, error)
}

// Process prompts on w for a record count and then each record's name and
// grade, reading the answers from src.
func Process(src Source, w io.Writer) (Summary, error) {
	fmt.Fprint(w, "Number of students: ")
	n, err := src.Uint()
	if err != nil {
		return Summary{}, err
	}

	agg := NewAggregator()
	for i := uint64(1); i <= n; i++ {
		fmt.Fprintf(w, "Name of student %d: ", i)
		name, err := src.Line()
		if err != nil {
			return Summary{}, err
		}
		fmt.Fprintf(w, "Grade of %s: ", name)
		grade, err := src.Uint()
		if err != nil {
			return Summary{}, err
		}
		agg.Add(Record{Name: name, Grade: grade})
	}

	return agg.Summary()
}
