package sample

import (
	"math"

	"github.com/montanaflynn/stats"

	"godist/internal/errors"
)

// Summary describes the shape of an observed sample
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"standard_deviation"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Outliers int     `json:"outliers"`
}

// Summarize computes descriptive statistics for values. The standard
// deviation is the population one.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.EmptySample("cannot summarize an empty sample")
	}
	data := stats.Float64Data(values)
	s := Summary{Count: len(values)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, errors.Wrap(err, "sample mean")
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, errors.Wrap(err, "sample standard deviation")
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, errors.Wrap(err, "sample minimum")
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, errors.Wrap(err, "sample maximum")
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, errors.Wrap(err, "sample median")
	}
	// Nearest-rank quartiles stay defined for samples of any size.
	if s.Q25, err = stats.PercentileNearestRank(data, 25); err != nil {
		return Summary{}, errors.Wrap(err, "sample first quartile")
	}
	if s.Q75, err = stats.PercentileNearestRank(data, 75); err != nil {
		return Summary{}, errors.Wrap(err, "sample third quartile")
	}

	s.Skewness = skewness(values, s.Mean, s.StdDev)
	s.Outliers = countOutliers(values, s.Q25, s.Q75)
	return s, nil
}

// skewness is the adjusted Fisher-Pearson coefficient; it is 0 for fewer
// than three values or a constant sample.
func skewness(values []float64, mean, stdDev float64) float64 {
	if len(values) < 3 || stdDev == 0 {
		return 0
	}
	n := float64(len(values))
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sum += d * d * d
	}
	return sum / n * math.Sqrt(n*(n-1)) / (n - 2)
}

// countOutliers counts values beyond 1.5 IQR from the quartiles
func countOutliers(values []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower, upper := q25-1.5*iqr, q75+1.5*iqr

	count := 0
	for _, x := range values {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
