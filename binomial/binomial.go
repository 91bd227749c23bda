// Package binomial implements closed-form statistics for the binomial
// distribution, the count of successes among n independent Bernoulli
// trials with success probability p.
//
// All functions are pure and safe for concurrent use.
package binomial

import (
	"errors"
	"math"
	"math/big"
)

// ErrInvalidTrials indicates a trial count below 1.
var ErrInvalidTrials = errors.New("n must be a positive integer")

// ErrInvalidProbability indicates the success probability is outside [0, 1].
var ErrInvalidProbability = errors.New("p must satisfy 0 <= p <= 1")

// ErrInvalidSuccesses indicates a success count outside 0..n.
var ErrInvalidSuccesses = errors.New("k must satisfy 0 <= k <= n")

// Mean returns the expected number of successes, n * p.
func Mean(n int64, p float64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTrials
	}
	if !(p >= 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	return float64(n) * p, nil
}

// Variance returns the variance of the success count, n * p * (1-p).
func Variance(n int64, p float64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTrials
	}
	if !(p >= 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}

	return float64(n) * p * (1 - p), nil
}

// PMF returns P(X = k), the probability of exactly k successes in n
// trials: C(n,k) * p^k * (1-p)^(n-k).
//
// The binomial coefficient is computed exactly in integer arithmetic and
// converted to floating point only for the final probability, so large
// trial counts do not overflow intermediate values. The 0^0 = 1
// convention applies: with p = 0 all mass sits at k = 0, and with p = 1
// all mass sits at k = n.
func PMF(n int64, p float64, k int64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTrials
	}
	if !(p >= 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}
	if k < 0 || k > n {
		return 0, ErrInvalidSuccesses
	}

	return mass(n, p, k), nil
}

// CDF returns P(X <= k), the probability of at most k successes in n
// trials: the running sum of the PMF from 0 through k. Passing k = n
// yields the full mass, 1.
func CDF(n int64, p float64, k int64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTrials
	}
	if !(p >= 0 && p <= 1) {
		return 0, ErrInvalidProbability
	}
	if k < 0 || k > n {
		return 0, ErrInvalidSuccesses
	}

	sum := 0.0
	for i := int64(0); i <= k; i++ {
		sum += mass(n, p, i)
	}
	return sum, nil
}

// mass evaluates the binomial probability mass for validated inputs.
func mass(n int64, p float64, k int64) float64 {
	coefficient, _ := new(big.Float).SetInt(new(big.Int).Binomial(n, k)).Float64()
	return coefficient * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}
