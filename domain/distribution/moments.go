package distribution

import (
	"math"

	"godist/internal/errors"
)

// sqrtNonNegative clamps rounding noise below zero before taking the root.
func sqrtNonNegative(v float64) float64 {
	if v < 0 && v > -1e-12 {
		return 0
	}
	return math.Sqrt(v)
}

// finiteMoments unpacks the cached mean and standard deviation of d, failing
// with a DomainError when either is a sentinel.
func finiteMoments(d Distribution) (mean, stdDev float64, err error) {
	mean, ok := d.Mean().Float()
	if !ok {
		return 0, 0, errors.DomainError("%s: mean is %s", d.Kind(), d.Mean())
	}
	stdDev, ok = d.StdDev().Float()
	if !ok {
		return 0, 0, errors.DomainError("%s: standard deviation is %s", d.Kind(), d.StdDev())
	}
	return mean, stdDev, nil
}

// ZScore returns (x - mean) / stdev. It needs both moments to be finite and
// the standard deviation to be non-zero.
func ZScore(d Distribution, x float64) (float64, error) {
	mean, stdDev, err := finiteMoments(d)
	if err != nil {
		return 0, err
	}
	if stdDev == 0 {
		return 0, errors.DomainError("%s: z-score undefined for a degenerate distribution", d.Kind())
	}
	return (x - mean) / stdDev, nil
}

// CoefficientOfVariation returns stdev / |mean|.
func CoefficientOfVariation(d Distribution) (float64, error) {
	mean, stdDev, err := finiteMoments(d)
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, errors.DomainError("%s: coefficient of variation undefined for zero mean", d.Kind())
	}
	return stdDev / math.Abs(mean), nil
}
