package distribution

import (
	"strings"

	"godist/internal/errors"
)

// Kind names a distribution family.
type Kind string

const (
	KindArcsine         Kind = "Arcsine"
	KindBoundedArcsine  Kind = "BoundedArcsine"
	KindBates           Kind = "Bates"
	KindBernoulli       Kind = "Bernoulli"
	KindBeta            Kind = "Beta"
	KindBinomial        Kind = "Binomial"
	KindBradford        Kind = "Bradford"
	KindBurr            Kind = "Burr"
	KindCauchy          Kind = "Cauchy"
	KindErlang          Kind = "Erlang"
	KindExponential     Kind = "Exponential"
	KindF               Kind = "F"
	KindGaussian        Kind = "Gaussian"
	KindGeometric       Kind = "Geometric"
	KindInverseGaussian Kind = "InverseGaussian"
	KindLaplace         Kind = "Laplace"
	KindLevy            Kind = "Levy"
	KindLogLogistic     Kind = "LogLogistic"
	KindPoisson         Kind = "Poisson"
	KindRayleigh        Kind = "Rayleigh"
	KindReciprocal      Kind = "Reciprocal"
	KindT               Kind = "T"
	KindTrapezoidal     Kind = "Trapezoidal"
	KindUniform         Kind = "Uniform"
	KindWeibull         Kind = "Weibull"
	KindYuleSimon       Kind = "YuleSimon"
	KindZeta            Kind = "Zeta"
)

// Distribution is the contract every variant implements.
//
// Mean and StdDev return the statistics cached at construction (or at the
// last Refresh); CalculateMean and CalculateStdDev recompute them from the
// current parameters. The two always agree.
type Distribution interface {
	Kind() Kind
	Params() Params
	Support() Support

	Mean() Value
	StdDev() Value
	CalculateMean() Value
	CalculateStdDev() Value

	// PDF evaluates the density (or mass) at x.
	PDF(x float64) (Value, error)

	String() string
}

// Composer is implemented by families closed under addition of independent
// variables. Compose returns a new distribution and never mutates its operands.
type Composer interface {
	Distribution
	Compose(other Distribution) (Distribution, error)
}

// Refresher is implemented by families that can re-derive their parameters
// from observed data. Refresh mutates the receiver in place; callers must not
// use the instance concurrently while it runs.
type Refresher interface {
	Distribution
	Refresh(sample []float64) error
}

// Compose returns the distribution of the sum of independent variables
// distributed as a and b.
func Compose(a, b Distribution) (Distribution, error) {
	if a.Kind() != b.Kind() {
		return nil, errors.IncompatibleOperands("cannot compose %s with %s", a.Kind(), b.Kind())
	}
	c, ok := a.(Composer)
	if !ok {
		return nil, errors.IncompatibleOperands("%s is not closed under addition", a.Kind())
	}
	return c.Compose(b)
}

// moments holds the cached statistics shared by every variant.
type moments struct {
	mean   Value
	stdDev Value
}

func (m *moments) Mean() Value   { return m.mean }
func (m *moments) StdDev() Value { return m.stdDev }

type calculator interface {
	CalculateMean() Value
	CalculateStdDev() Value
}

func (m *moments) refresh(c calculator) {
	m.mean = c.CalculateMean()
	m.stdDev = c.CalculateStdDev()
}

// describe renders the stable snapshot used by every String method:
//
//	Kind: p1: v1, p2: v2, mean: m, standard deviation: s
func describe(d Distribution) string {
	var b strings.Builder
	b.WriteString(string(d.Kind()))
	b.WriteString(": ")
	if params := d.Params(); len(params) > 0 {
		b.WriteString(params.String())
		b.WriteString(", ")
	}
	b.WriteString("mean: ")
	b.WriteString(d.Mean().String())
	b.WriteString(", standard deviation: ")
	b.WriteString(d.StdDev().String())
	return b.String()
}

// sameKind checks that other is of the receiver's concrete type.
func sameKind[T Distribution](self Kind, other Distribution) (T, error) {
	o, ok := other.(T)
	if !ok {
		var zero T
		return zero, errors.IncompatibleOperands("cannot compose %s with %s", self, other.Kind())
	}
	return o, nil
}
