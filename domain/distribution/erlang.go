package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"godist/internal/errors"
)

// Erlang is the sum of k independent exponential variables with scale mu
// (rate 1/mu). The density is 0 for negative x.
type Erlang struct {
	moments
	k, mu float64
}

// NewErlang returns Erlang(k, mu). Defaults: k=1, mu=1.
func NewErlang(k, mu float64) (*Erlang, error) {
	if err := validate(
		integer(KindErlang, "k", k, 1),
		positive(KindErlang, "mu", mu),
	); err != nil {
		return nil, err
	}
	e := &Erlang{k: k, mu: mu}
	e.refresh(e)
	return e, nil
}

func (e *Erlang) Kind() Kind       { return KindErlang }
func (e *Erlang) Params() Params   { return Params{{"k", e.k}, {"mu", e.mu}} }
func (e *Erlang) Support() Support { return interval(0, math.Inf(1), PolicyZero) }
func (e *Erlang) String() string   { return describe(e) }

func (e *Erlang) CalculateMean() Value   { return Numeric(e.k * e.mu) }
func (e *Erlang) CalculateStdDev() Value { return Numeric(math.Sqrt(e.k) * e.mu) }

func (e *Erlang) PDF(x float64) (Value, error) {
	return density(KindErlang, e.Support(), x, distuv.Gamma{Alpha: e.k, Beta: 1 / e.mu}.Prob)
}

// Compose adds the shapes of two Erlang distributions sharing a scale.
func (e *Erlang) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Erlang](KindErlang, other)
	if err != nil {
		return nil, err
	}
	if e.mu != o.mu {
		return nil, errors.IncompatibleOperands("%s: scales differ (%v != %v)", KindErlang, e.mu, o.mu)
	}
	return asDistribution(NewErlang(e.k+o.k, e.mu))
}
