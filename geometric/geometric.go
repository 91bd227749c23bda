// Package geometric implements closed-form statistics for the geometric
// distribution.
//
// The geometric distribution counts independent Bernoulli trials with
// success probability p until the first success. It has two equivalent
// parameterizations, selected by a Support value: the number of trials up
// to and including the first success (outcomes 1, 2, 3, ...) or the
// number of failures before the first success (outcomes 0, 1, 2, ...).
//
// All functions are pure and safe for concurrent use.
package geometric

import (
	"errors"
	"math"
)

// Support selects which of the two equivalent parameterizations of the
// geometric distribution outcomes are counted under.
//
// The zero value is TrialsToFirstSuccess. Raw flag values from external
// inputs convert directly (Support(0), Support(1)); every function
// rejects any other value with ErrInvalidSupport.
type Support int

const (
	// TrialsToFirstSuccess counts the Bernoulli trials up to and
	// including the first success. Outcomes are {1, 2, 3, ...}.
	TrialsToFirstSuccess Support = iota
	// FailuresBeforeFirstSuccess counts the failures that occur before
	// the first success. Outcomes are {0, 1, 2, ...}.
	FailuresBeforeFirstSuccess
)

func (s Support) String() string {
	switch s {
	case TrialsToFirstSuccess:
		return "Trials to first success"
	case FailuresBeforeFirstSuccess:
		return "Failures before first success"
	default:
		return "Unknown"
	}
}

// ErrInvalidProbability indicates the success probability is outside (0, 1].
var ErrInvalidProbability = errors.New("p must satisfy 0 < p <= 1")

// ErrInvalidSupport indicates a support value other than the two
// recognized parameterizations.
var ErrInvalidSupport = errors.New("support must be TrialsToFirstSuccess or FailuresBeforeFirstSuccess")

// ErrOutOfSupport indicates an outcome k below the domain minimum for the
// chosen support.
var ErrOutOfSupport = errors.New("k is outside the outcome domain for the chosen support")

// Mean returns the expected value of the distribution: 1/p when counting
// trials, (1-p)/p when counting failures.
func Mean(p float64, support Support) (float64, error) {
	if !(p > 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	switch support {
	case TrialsToFirstSuccess:
		return 1 / p, nil
	case FailuresBeforeFirstSuccess:
		return (1 - p) / p, nil
	default:
		return 0, ErrInvalidSupport
	}
}

// Variance returns the variance of the distribution, (1-p)/p².
//
// The variance is the same under both supports, since shifting the
// outcome domain does not change the spread. The support is still
// validated so an invalid flag never passes silently.
func Variance(p float64, support Support) (float64, error) {
	if !(p > 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	switch support {
	case TrialsToFirstSuccess, FailuresBeforeFirstSuccess:
		return (1 - p) / (p * p), nil
	default:
		return 0, ErrInvalidSupport
	}
}

// PMF returns P(X = k), the probability that the outcome is exactly k.
//
// Under TrialsToFirstSuccess the mass at k is (1-p)^(k-1) * p for
// k >= 1; under FailuresBeforeFirstSuccess it is (1-p)^k * p for k >= 0.
// An outcome below the domain minimum for the chosen support returns
// ErrOutOfSupport.
func PMF(p float64, k int64, support Support) (float64, error) {
	if !(p > 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	switch support {
	case TrialsToFirstSuccess:
		if k < 1 {
			return 0, ErrOutOfSupport
		}
		return math.Pow(1-p, float64(k-1)) * p, nil
	case FailuresBeforeFirstSuccess:
		if k < 0 {
			return 0, ErrOutOfSupport
		}
		return math.Pow(1-p, float64(k)) * p, nil
	default:
		return 0, ErrInvalidSupport
	}
}

// CDF returns P(X <= k), the probability that the outcome is at most k.
//
// Under TrialsToFirstSuccess the cumulative mass at k is 1 - (1-p)^k for
// k >= 1; under FailuresBeforeFirstSuccess it is 1 - (1-p)^(k+1) for
// k >= 0. The result is non-decreasing in k and approaches 1 as k grows.
func CDF(p float64, k int64, support Support) (float64, error) {
	if !(p > 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	switch support {
	case TrialsToFirstSuccess:
		if k < 1 {
			return 0, ErrOutOfSupport
		}
		return 1 - math.Pow(1-p, float64(k)), nil
	case FailuresBeforeFirstSuccess:
		if k < 0 {
			return 0, ErrOutOfSupport
		}
		return 1 - math.Pow(1-p, float64(k+1)), nil
	default:
		return 0, ErrInvalidSupport
	}
}
