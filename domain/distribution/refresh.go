package distribution

import (
	"github.com/montanaflynn/stats"

	"godist/internal/errors"
)

// proportion returns the share of ones in a sample of 0/1 outcomes.
func proportion(kind Kind, sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, errors.EmptySample(string(kind) + ": refresh needs at least one observation")
	}
	for i, v := range sample {
		if v != 0 && v != 1 {
			return 0, errors.InvalidParameter("%s: observation %d is %v, want 0 or 1", kind, i, v)
		}
	}
	p, err := stats.Mean(stats.Float64Data(sample))
	if err != nil {
		return 0, errors.Wrapf(err, "%s: proportion of successes", kind)
	}
	return p, nil
}

// extrema returns the sample minimum and maximum.
func extrema(kind Kind, sample []float64) (lo, hi float64, err error) {
	if len(sample) == 0 {
		return 0, 0, errors.EmptySample(string(kind) + ": refresh needs at least one observation")
	}
	data := stats.Float64Data(sample)
	if lo, err = stats.Min(data); err != nil {
		return 0, 0, errors.Wrapf(err, "%s: sample minimum", kind)
	}
	if hi, err = stats.Max(data); err != nil {
		return 0, 0, errors.Wrapf(err, "%s: sample maximum", kind)
	}
	return lo, hi, nil
}
