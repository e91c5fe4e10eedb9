package distribution

import (
	"sort"
	"strings"

	"godist/internal/errors"
)

// ParamSpec documents one constructor parameter.
type ParamSpec struct {
	Name       string
	Default    float64
	Constraint string
}

// Entry describes a catalog kind: its parameters with defaults and the
// optional capabilities it implements.
type Entry struct {
	Kind        Kind
	Params      []ParamSpec
	Composable  bool
	Refreshable bool

	build func(p map[string]float64) (Distribution, error)
}

// Defaults returns the entry's default parameter values.
func (e Entry) Defaults() map[string]float64 {
	m := make(map[string]float64, len(e.Params))
	for _, p := range e.Params {
		m[p.Name] = p.Default
	}
	return m
}

func entry(kind Kind, params []ParamSpec, build func(p map[string]float64) (Distribution, error)) Entry {
	return Entry{Kind: kind, Params: params, build: build}
}

func (e Entry) composable() Entry  { e.Composable = true; return e }
func (e Entry) refreshable() Entry { e.Refreshable = true; return e }

var catalog = map[Kind]Entry{}

func init() {
	for _, e := range []Entry{
		entry(KindArcsine, nil, func(map[string]float64) (Distribution, error) {
			return NewArcsine(), nil
		}),
		entry(KindBoundedArcsine, []ParamSpec{{"a", 0, "a < b"}, {"b", 1, "a < b"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBoundedArcsine(p["a"], p["b"])) }),
		entry(KindBates, []ParamSpec{{"n", 12, "integer in [1, 1000]"}, {"a", 0, "a < b"}, {"b", 1, "a < b"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBates(p["n"], p["a"], p["b"])) }),
		entry(KindBernoulli, []ParamSpec{{"p", 0.5, "0 <= p <= 1"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBernoulli(p["p"])) }).refreshable(),
		entry(KindBeta, []ParamSpec{{"alpha", 1, "> 0"}, {"beta", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBeta(p["alpha"], p["beta"])) }),
		entry(KindBinomial, []ParamSpec{{"p", 0.5, "0 <= p <= 1"}, {"n", 20, "integer >= 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBinomial(p["p"], p["n"])) }).composable().refreshable(),
		entry(KindBradford, []ParamSpec{{"theta", 1, "> 0"}, {"min", 0, "min < max"}, {"max", 1, "min < max"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBradford(p["theta"], p["min"], p["max"])) }),
		entry(KindBurr, []ParamSpec{{"k", 1, "> 0"}, {"alpha", 2, "> 0"}, {"beta", 2, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewBurr(p["k"], p["alpha"], p["beta"])) }),
		entry(KindCauchy, []ParamSpec{{"location", 0, "finite"}, {"scale", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewCauchy(p["location"], p["scale"])) }).composable(),
		entry(KindErlang, []ParamSpec{{"k", 1, "integer >= 1"}, {"mu", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewErlang(p["k"], p["mu"])) }).composable(),
		entry(KindExponential, []ParamSpec{{"rate", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewExponential(p["rate"])) }),
		entry(KindF, []ParamSpec{{"d1", 4, "> 0"}, {"d2", 4, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewF(p["d1"], p["d2"])) }),
		entry(KindGaussian, []ParamSpec{{"mu", 0, "finite"}, {"sigma", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewGaussian(p["mu"], p["sigma"])) }).composable(),
		entry(KindGeometric, []ParamSpec{{"p", 0.5, "0 < p <= 1"}, {"trials", 1, "0 or 1"}},
			buildGeometric),
		entry(KindInverseGaussian, []ParamSpec{{"mu", 1, "> 0"}, {"lambda", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewInverseGaussian(p["mu"], p["lambda"])) }),
		entry(KindLaplace, []ParamSpec{{"mu", 0, "finite"}, {"b", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewLaplace(p["mu"], p["b"])) }),
		entry(KindLevy, []ParamSpec{{"location", 2, "finite"}, {"scale", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewLevy(p["location"], p["scale"])) }).composable(),
		entry(KindLogLogistic, []ParamSpec{{"alpha", 1, "> 0"}, {"beta", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewLogLogistic(p["alpha"], p["beta"])) }),
		entry(KindPoisson, []ParamSpec{{"mu", 0.5, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewPoisson(p["mu"])) }).composable(),
		entry(KindRayleigh, []ParamSpec{{"sigma", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewRayleigh(p["sigma"])) }),
		entry(KindReciprocal, []ParamSpec{{"a", 1, "0 < a < b"}, {"b", 2, "0 < a < b"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewReciprocal(p["a"], p["b"])) }),
		entry(KindT, []ParamSpec{{"nu", 4, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewT(p["nu"])) }),
		entry(KindTrapezoidal, []ParamSpec{{"a", 1, "a <= b"}, {"b", 2, "b < c"}, {"c", 3, "b < c"}, {"d", 4, "c <= d"}},
			func(p map[string]float64) (Distribution, error) {
				return asDistribution(NewTrapezoidal(p["a"], p["b"], p["c"], p["d"]))
			}),
		entry(KindUniform, []ParamSpec{{"a", 0, "a < b"}, {"b", 1, "a < b"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewUniform(p["a"], p["b"])) }).refreshable(),
		entry(KindWeibull, []ParamSpec{{"lambda", 1, "> 0"}, {"k", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewWeibull(p["lambda"], p["k"])) }),
		entry(KindYuleSimon, []ParamSpec{{"rho", 1, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewYuleSimon(p["rho"])) }),
		entry(KindZeta, []ParamSpec{{"limit", 100, "integer in [1, 1e6]"}, {"s", 4, "> 0"}},
			func(p map[string]float64) (Distribution, error) { return asDistribution(NewZeta(p["limit"], p["s"])) }),
	} {
		catalog[e.Kind] = e
	}
}

// asDistribution keeps a failed constructor's typed nil pointer out of the
// Distribution interface.
func asDistribution[T Distribution](d T, err error) (Distribution, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

func buildGeometric(p map[string]float64) (Distribution, error) {
	switch p["trials"] {
	case 1:
		return asDistribution(NewGeometric(p["p"], CountTrials))
	case 0:
		return asDistribution(NewGeometric(p["p"], CountFailures))
	}
	return nil, errors.InvalidParameter("%s: trials must be 0 or 1, got %v", KindGeometric, p["trials"])
}

// Kinds returns every cataloged kind in alphabetical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog))
	for k := range catalog {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Lookup returns the catalog entry for kind.
func Lookup(kind Kind) (Entry, bool) {
	e, ok := catalog[kind]
	return e, ok
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k := range catalog {
		if strings.EqualFold(string(k), name) {
			return k, nil
		}
	}
	return "", errors.InvalidParameter("unknown distribution %q", name)
}

// New constructs a distribution of the given kind. Parameters missing from
// values take their documented defaults; unknown names are rejected.
func New(kind Kind, values map[string]float64) (Distribution, error) {
	e, ok := catalog[kind]
	if !ok {
		return nil, errors.InvalidParameter("unknown distribution %q", kind)
	}
	params := e.Defaults()
	for name, v := range values {
		if _, known := params[name]; !known {
			return nil, errors.InvalidParameter("%s: unknown parameter %q", kind, name)
		}
		params[name] = v
	}
	return e.build(params)
}
