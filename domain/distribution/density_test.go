package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

// integrate applies a fixed Gauss-Legendre rule to d's density on [lo, hi].
func integrate(t *testing.T, d Distribution, lo, hi float64) float64 {
	t.Helper()
	return quad.Fixed(func(x float64) float64 { return pdfAt(t, d, x) }, lo, hi, 200, quad.Legendre{}, 0)
}

func TestDensityIntegratesToOne(t *testing.T) {
	gaussian, _ := NewGaussian(1, 2)
	assert.InDelta(t, 1, integrate(t, gaussian, -25, 27), 1e-6)

	laplace, _ := NewLaplace(0.5, 1)
	// The kink at mu would spoil the rule; integrate each side separately.
	assert.InDelta(t, 1, integrate(t, laplace, -40, 0.5)+integrate(t, laplace, 0.5, 41), 1e-6)

	uniform, _ := NewUniform(-1, 3)
	assert.InDelta(t, 1, integrate(t, uniform, -1, 3), 1e-9)

	trapezoidal, _ := NewTrapezoidal(1, 2, 3, 4)
	total := integrate(t, trapezoidal, 1, 2) + integrate(t, trapezoidal, 2, 3) + integrate(t, trapezoidal, 3, 4)
	assert.InDelta(t, 1, total, 1e-9)

	bates, _ := NewBates(3, 0, 1)
	total = integrate(t, bates, 0, 1.0/3) + integrate(t, bates, 1.0/3, 2.0/3) + integrate(t, bates, 2.0/3, 1)
	assert.InDelta(t, 1, total, 1e-9)

	beta, _ := NewBeta(2, 3)
	assert.InDelta(t, 1, integrate(t, beta, 0, 1), 1e-9)

	bradford, _ := NewBradford(2, 1, 3)
	assert.InDelta(t, 1, integrate(t, bradford, 1, 3), 1e-9)

	reciprocal, _ := NewReciprocal(1, 5)
	assert.InDelta(t, 1, integrate(t, reciprocal, 1, 5), 1e-9)

	rayleigh, _ := NewRayleigh(1.5)
	assert.InDelta(t, 1, integrate(t, rayleigh, 0, 20), 1e-6)

	erlang, _ := NewErlang(3, 0.5)
	assert.InDelta(t, 1, integrate(t, erlang, 0, 40), 1e-6)
}

func TestCauchyIntegratesToOne(t *testing.T) {
	cauchy, _ := NewCauchy(2, 3)
	// Substituting x = location + scale*tan(theta) maps the real line onto
	// (-pi/2, pi/2).
	f := func(theta float64) float64 {
		x := 2 + 3*math.Tan(theta)
		sec := 1 / math.Cos(theta)
		return pdfAt(t, cauchy, x) * 3 * sec * sec
	}
	assert.InDelta(t, 1, quad.Fixed(f, -math.Pi/2, math.Pi/2, 100, quad.Legendre{}, 0), 1e-9)
}

func TestMassSumsToOne(t *testing.T) {
	tests := []struct {
		name string
		d    Distribution
		from float64
		to   float64
		tol  float64
	}{
		{"bernoulli", must(NewBernoulli(0.3)), 0, 1, 1e-12},
		{"binomial", must(NewBinomial(0.3, 12)), 0, 12, 1e-12},
		{"poisson", must(NewPoisson(3)), 0, 100, 1e-12},
		{"geometric trials", must(NewGeometric(0.4, CountTrials)), 1, 200, 1e-12},
		{"geometric failures", must(NewGeometric(0.4, CountFailures)), 0, 200, 1e-12},
		{"zeta", must(NewZeta(100, 4)), 1, 100, 1e-12},
		{"yule-simon", must(NewYuleSimon(3)), 1, 20000, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0.0
			for k := tt.from; k <= tt.to; k++ {
				sum += pdfAt(t, tt.d, k)
			}
			assert.InDelta(t, 1, sum, tt.tol)
		})
	}
}

// interior returns a handful of points strictly inside s.
func interior(s Support) []float64 {
	var xs []float64
	switch {
	case s.Discrete:
		for k := s.Lower; k <= s.Upper && k <= s.Lower+10; k++ {
			xs = append(xs, k)
		}
	case math.IsInf(s.Lower, -1):
		for x := -5.0; x <= 5; x += 0.5 {
			xs = append(xs, x)
		}
	case math.IsInf(s.Upper, 1):
		for i := 1; i <= 20; i++ {
			xs = append(xs, s.Lower+0.25*float64(i))
		}
	default:
		for i := 1; i <= 9; i++ {
			xs = append(xs, s.Lower+(s.Upper-s.Lower)*float64(i)/10)
		}
	}
	return xs
}

func TestDensityIsNonNegative(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			d, err := New(kind, nil)
			require.NoError(t, err)
			for _, x := range interior(d.Support()) {
				assert.GreaterOrEqual(t, pdfAt(t, d, x), 0.0, "x=%v", x)
			}
		})
	}
}

func TestSupportContains(t *testing.T) {
	s := integers(0, 5)
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(2.5))
	assert.False(t, s.Contains(6))
	assert.Equal(t, "integers in [0, 5]", s.String())

	open := openInterval(0, 1, PolicyDomainError)
	assert.False(t, open.Contains(0))
	assert.True(t, open.Contains(0.5))
	assert.Equal(t, "(0, 1)", open.String())

	half := interval(0, math.Inf(1), PolicyZero)
	assert.True(t, half.Contains(0))
	assert.False(t, half.Contains(math.NaN()))
	assert.Equal(t, "[0, +Inf)", half.String())
	assert.Equal(t, "zero", half.Policy.String())
}

func TestDensityIsNonNegative_NonDefaultParameters(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params map[string]float64
	}{
		{"bates n=50", KindBates, map[string]float64{"n": 50}},
		{"bates n=80", KindBates, map[string]float64{"n": 80}},
		{"bates n=120", KindBates, map[string]float64{"n": 120}},
		{"bates at bound", KindBates, map[string]float64{"n": BatesMaxN, "a": -2, "b": 5}},
		{"burr small beta", KindBurr, map[string]float64{"k": 3, "alpha": 0.5, "beta": 0.4}},
		{"loglogistic small beta", KindLogLogistic, map[string]float64{"alpha": 2, "beta": 0.5}},
		{"beta u-shaped", KindBeta, map[string]float64{"alpha": 0.5, "beta": 0.5}},
		{"weibull small k", KindWeibull, map[string]float64{"lambda": 2, "k": 0.5}},
		{"f small d1", KindF, map[string]float64{"d1": 1, "d2": 3}},
		{"zeta large limit", KindZeta, map[string]float64{"limit": ZetaMaxLimit, "s": 1.5}},
		{"binomial large n", KindBinomial, map[string]float64{"p": 0.01, "n": 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.kind, tt.params)
			require.NoError(t, err)
			for _, x := range interior(d.Support()) {
				assert.GreaterOrEqual(t, pdfAt(t, d, x), 0.0, "x=%v", x)
			}
		})
	}
}

func TestDensityIsSymmetric(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params map[string]float64
	}{
		{"bates n=3", KindBates, map[string]float64{"n": 3}},
		{"bates n=50", KindBates, map[string]float64{"n": 50}},
		{"bates n=80 shifted", KindBates, map[string]float64{"n": 80, "a": -1, "b": 3}},
		{"bates n=500", KindBates, map[string]float64{"n": 500}},
		{"arcsine", KindArcsine, nil},
		{"bounded arcsine", KindBoundedArcsine, map[string]float64{"a": -1, "b": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.kind, tt.params)
			require.NoError(t, err)
			s := d.Support()
			mid := (s.Lower + s.Upper) / 2
			for _, u := range []float64{0.05, 0.1, 0.2, 0.3, 0.45} {
				offset := u * (s.Upper - s.Lower)
				lo, hi := pdfAt(t, d, mid-offset), pdfAt(t, d, mid+offset)
				assert.GreaterOrEqual(t, lo, 0.0)
				assert.InDelta(t, lo, hi, 1e-9*math.Max(1, lo), "offset=%v", offset)
			}
		})
	}
}

func TestBates_LargeN(t *testing.T) {
	bates, err := NewBates(50, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate(t, bates, 0, 1), 1e-6)

	// Close to the normal peak 1/(sigma*sqrt(2*pi)), sigma = 1/sqrt(12n).
	wide, err := NewBates(120, 0, 1)
	require.NoError(t, err)
	peak := math.Sqrt(12*120) / math.Sqrt(2*math.Pi)
	assert.InEpsilon(t, peak, pdfAt(t, wide, 0.5), 5e-3)
	assert.Greater(t, pdfAt(t, wide, 0.7), 0.0)

	// The density vanishes at the endpoints for n > 1.
	assert.Equal(t, 0.0, pdfAt(t, wide, 1))
}

func TestZeta_LargeLimit(t *testing.T) {
	zeta, err := NewZeta(ZetaMaxLimit, 2)
	require.NoError(t, err)
	// H(1e6, 2) is within 1e-6 of pi^2/6.
	assert.InDelta(t, 6/(math.Pi*math.Pi), pdfAt(t, zeta, 1), 1e-6)
	assert.True(t, zeta.Mean().IsInfinite())
}
