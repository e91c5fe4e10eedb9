package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godist/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "OUTPUT_FORMAT", "SAMPLE_SHEET", "SAMPLE_COLUMN", "SAMPLE_SKIP_HEADER", "SAMPLE_CONCURRENCY", "SERVER_ADDR", "SERVER_SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "gaussian", "--param", "mu=1")
	require.NoError(t, err)
	assert.Equal(t, "Gaussian: mu: 1, sigma: 1, mean: 1, standard deviation: 1\nsupport: (-Inf, +Inf)\n", out)
}

func TestDescribe_JSON(t *testing.T) {
	out, err := run(t, "describe", "cauchy", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "Cauchy",
		"params": [{"name": "location", "value": 0}, {"name": "scale", "value": 1}],
		"support": "(-Inf, +Inf)",
		"mean": "Undefined",
		"standard_deviation": "Undefined"
	}`, out)
}

func TestPDF_JSON(t *testing.T) {
	out, err := run(t, "pdf", "uniform", "0.5", "2", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x": 0.5, "density": 1}, {"x": 2, "density": 0}]`, out)
}

func TestPDF_DomainError(t *testing.T) {
	_, err := run(t, "pdf", "beta", "1.5")
	assert.True(t, stderrors.Is(err, errors.ErrDomainError))
}

func TestCompose(t *testing.T) {
	out, err := run(t, "compose", "poisson", "--left", "mu=1.5", "--right", "mu=2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Poisson: mu: 4, mean: 4, standard deviation: 2")

	_, err = run(t, "compose", "binomial", "--left", "p=0.3", "--right", "p=0.4")
	assert.True(t, stderrors.Is(err, errors.ErrIncompatibleOperands))
}

func TestRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n5\n1\n9\n"), 0o644))

	out, err := run(t, "refresh", "uniform", path, "-o", "json")
	require.NoError(t, err)

	var got struct {
		Params []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"params"`
		Mean float64 `json:"mean"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Params, 2)
	assert.Equal(t, 1.0, got.Params[0].Value)
	assert.Equal(t, 9.0, got.Params[1].Value)
	assert.Equal(t, 5.0, got.Mean)

	_, err = run(t, "refresh", "gaussian", path)
	assert.True(t, stderrors.Is(err, errors.ErrIncompatibleOperands))
}

func TestSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("2\n4\n4\n4\n5\n5\n7\n9\n"), 0o644))

	out, err := run(t, "sample", path)
	require.NoError(t, err)
	assert.Contains(t, out, "count: 8\nmean: 5\nstandard deviation: 2\n")
}

func TestZScore(t *testing.T) {
	out, err := run(t, "zscore", "gaussian", "3", "--param", "sigma=2")
	require.NoError(t, err)
	assert.Equal(t, "z(3) = 1.5\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Gaussian")
	assert.Contains(t, out, "compose,refresh")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "describe", "gaussian", "--param", "mu")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))

	_, err = run(t, "describe", "gaussian", "--param", "mu=1", "-o", "xml")
	assert.True(t, stderrors.Is(err, errors.ErrConfigInvalid))

	_, err = run(t, "describe", "pareto")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidParameter))
}
