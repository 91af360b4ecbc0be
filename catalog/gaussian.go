// SPDX-License-Identifier: MIT
// Package catalog: mergeable Gaussian sample moments.
// A Gaussian summary of two disjoint sample populations can be merged
// exactly from the summaries alone (parallel variance, Chan et al.),
// which makes the summary a monoid — and therefore a payload the
// reduction engine may fold in any grouping, including across workers.

package catalog

import (
	"errors"
	"math"
)

// ErrInsufficientSamples indicates a Gaussian statistic was requested
// that needs more observations than the summary has absorbed.
var ErrInsufficientSamples = errors.New("catalog: statistic requires more samples")

// Gaussian is a running summary of float64 observations: the first
// moment (mean), the centered second moment, and the observation count.
// The zero Gaussian summarizes no observations and is the identity of
// GaussianMerge.
type Gaussian struct {
	m1 float64 // running mean
	m2 float64 // sum of squared deviations from the mean
	n  float64 // observation count (float for merge arithmetic)
}

// NewGaussian returns the summary of a single observation.
func NewGaussian(x float64) Gaussian {
	return Gaussian{m1: x, m2: 0, n: 1}
}

// GaussianFromSamples accumulates xs one at a time into a fresh summary.
func GaussianFromSamples(xs []float64) Gaussian {
	var g Gaussian
	for _, x := range xs {
		g = g.Observe(x)
	}

	return g
}

// Observe returns a new summary with one more observation absorbed
// (Welford's update). The receiver is unchanged.
func (g Gaussian) Observe(x float64) Gaussian {
	n := g.n + 1
	delta := x - g.m1
	m1 := g.m1 + delta/n
	m2 := g.m2 + delta*(x-m1)

	return Gaussian{m1: m1, m2: m2, n: n}
}

// Count returns the number of observations summarized.
func (g Gaussian) Count() int { return int(g.n) }

// Mean returns the sample mean. Requires at least one observation.
func (g Gaussian) Mean() (float64, error) {
	if g.n < 1 {
		return 0, ErrInsufficientSamples
	}

	return g.m1, nil
}

// Variance returns the unbiased sample variance. Requires at least two
// observations.
func (g Gaussian) Variance() (float64, error) {
	if g.n < 2 {
		return 0, ErrInsufficientSamples
	}

	return g.m2 / (g.n - 1), nil
}

// PDF evaluates the fitted normal density at x.
func (g Gaussian) PDF(x float64) (float64, error) {
	v, err := g.Variance()
	if err != nil {
		return 0, err
	}
	d := x - g.m1

	return math.Exp(-0.5*d*d/v) / math.Sqrt(2*math.Pi*v), nil
}

// CDF evaluates the fitted normal cumulative distribution at x.
func (g Gaussian) CDF(x float64) (float64, error) {
	v, err := g.Variance()
	if err != nil {
		return 0, err
	}

	return 0.5 * (1 + math.Erf((x-g.m1)/math.Sqrt(2*v))), nil
}

// ApproxEqual reports whether two summaries agree on count exactly and
// on both moments within a relative/absolute tolerance — the right
// notion of equality after regrouped float arithmetic.
func (g Gaussian) ApproxEqual(o Gaussian) bool {
	return g.n == o.n && close64(g.m1, o.m1) && close64(g.m2, o.m2)
}

// close64 mirrors numpy.isclose with its default tolerances.
func close64(x, y float64) bool {
	return math.Abs(x-y) <= 1e-8+1e-5*math.Abs(y)
}

// GaussianMerge is the monoid that merges two disjoint-population
// summaries exactly. Identity is the empty summary. Commutative and
// associative up to floating-point rounding; use ApproxEqual when
// comparing results of differently grouped folds.
type GaussianMerge struct{}

// Combine merges two summaries as if their underlying populations had
// been pooled.
func (GaussianMerge) Combine(a, b Gaussian) Gaussian {
	n := a.n + b.n
	if n == 0 {
		return Gaussian{}
	}
	m1 := a.m1*(a.n/n) + b.m1*(b.n/n)
	d := a.m1 - b.m1
	m2 := a.m2 + b.m2 + d*d*(a.n*b.n)/n

	return Gaussian{m1: m1, m2: m2, n: n}
}

// Identity returns the empty summary.
func (GaussianMerge) Identity() Gaussian { return Gaussian{} }
