// Package tax implements the bracket calculator exercise.
package tax

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStatus is returned for a filing status other than married or single.
	ErrInvalidStatus = errors.New("invalid filing status")
	// ErrInvalidState is returned for a state code other than i or o.
	ErrInvalidState = errors.New("invalid state")
)

// Status is a filing status.
type Status string

const (
	StatusMarried Status = "married"
	StatusSingle  Status = "single"
)

// Rate thresholds and the out-of-state discount.
const (
	marriedThreshold = 60000
	singleThreshold  = 40000
	outOfStateCredit = 0.03
)

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, error) {
	switch status := Status(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusMarried, StatusSingle:
		return status, nil
	default:
		return "", fmt.Errorf("%w %q: expected married or single", ErrInvalidStatus, s)
	}
}

// Rate returns the base rate for income under the given status.
func (s Status) Rate(income int64) float64 {
	switch s {
	case StatusMarried:
		if income < marriedThreshold {
			return 0.20
		}
		return 0.25
	case StatusSingle:
		if income < singleThreshold {
			return 0.30
		}
		return 0.35
	}
	return 0
}

// StateCode returns the state code typed as s: its first rune after
// trimming, or 0 for an empty answer, which Compute rejects.
func StateCode(s string) rune {
	for _, r := range strings.TrimSpace(s) {
		return r
	}
	return 0
}

// Compute returns the tax owed on income. status is matched
// case-insensitively; state is 'i' for in-state or 'o' for out-of-state,
// either case. The status is checked before the state.
func Compute(income int64, status string, state rune) (float64, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return 0, err
	}

	rate := st.Rate(income)
	switch state {
	case 'o', 'O':
		rate -= outOfStateCredit
	case 'i', 'I':
	default:
		return 0, fmt.Errorf("%w %q: expected i or o", ErrInvalidState, state)
	}

	return rate * float64(income), nil
}
