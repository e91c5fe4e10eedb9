package distribution

import (
	stderrors "errors"
	"sort"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godist/internal/errors"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 27)
	assert.True(t, sort.SliceIsSorted(kinds, func(i, j int) bool { return kinds[i] < kinds[j] }))
}

func TestCatalogCapabilitiesMatchImplementations(t *testing.T) {
	for _, kind := range Kinds() {
		entry, ok := Lookup(kind)
		require.True(t, ok)

		d, err := New(kind, nil)
		require.NoError(t, err, kind)

		_, composer := d.(Composer)
		_, refresher := d.(Refresher)
		assert.Equal(t, entry.Composable, composer, "%s composable", kind)
		assert.Equal(t, entry.Refreshable, refresher, "%s refreshable", kind)
		assert.Equal(t, entry.Defaults(), d.Params().Map(), "%s defaults", kind)
	}
}

func TestNew_Defaults(t *testing.T) {
	d, err := New(KindBinomial, map[string]float64{"n": 4})
	require.NoError(t, err)
	assert.Equal(t, "Binomial: p: 0.5, n: 4, mean: 2, standard deviation: 1", d.String())

	geometric, err := New(KindGeometric, map[string]float64{"trials": 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, numeric(t, geometric.Mean()), 1e-12)

	_, err = New(KindGeometric, map[string]float64{"trials": 2})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidParameter))
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(KindGaussian, map[string]float64{"lambda": 1})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidParameter))
	assert.Contains(t, err.Error(), `unknown parameter "lambda"`)

	_, err = New(Kind("Pareto"), nil)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidParameter))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("inversegaussian")
	require.NoError(t, err)
	assert.Equal(t, KindInverseGaussian, kind)

	_, err = ParseKind("normal")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidParameter))
}

func TestValue(t *testing.T) {
	assert.Equal(t, "Undefined", Undefined.String())
	assert.Equal(t, "Infinite", Infinite.String())
	assert.Equal(t, "0.25", Numeric(0.25).String())
	assert.False(t, Undefined.Equal(Infinite))
	assert.False(t, Numeric(1).Equal(Numeric(2)))

	_, ok := Infinite.Float()
	assert.False(t, ok)
	assert.True(t, Infinite.IsInfinite())
	assert.False(t, Undefined.IsInfinite())
	assert.True(t, Undefined.IsUndefined())
	assert.True(t, Numeric(0).IsNumeric())

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	out, err := json.Marshal(map[string]Value{"mean": Numeric(1.5), "stdev": Infinite})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mean": 1.5, "stdev": "Infinite"}`, string(out))
}
