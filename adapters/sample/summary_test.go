package sample

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godist/internal/errors"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5, s.Mean, 1e-12)
	assert.InDelta(t, 2, s.StdDev, 1e-12)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.InDelta(t, 4.5, s.Median, 1e-12)
	assert.Equal(t, 4.0, s.Q25)
	assert.Equal(t, 5.0, s.Q75)
	assert.Greater(t, s.Skewness, 0.0)
	// 2, 7 and 9 fall outside [2.5, 6.5].
	assert.Equal(t, 3, s.Outliers)
}

func TestSummarize_Outliers(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 100})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Outliers)
}

func TestSummarize_Degenerate(t *testing.T) {
	s, err := Summarize([]float64{3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.Skewness)
	assert.Equal(t, 0, s.Outliers)

	_, err = Summarize(nil)
	assert.True(t, stderrors.Is(err, errors.ErrEmptySample))
}
