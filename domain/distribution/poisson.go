package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson counts events with expected value mu on {0, 1, 2, ...}.
type Poisson struct {
	moments
	mu float64
}

// NewPoisson returns Poisson(mu). Default: mu=0.5.
func NewPoisson(mu float64) (*Poisson, error) {
	if err := validate(positive(KindPoisson, "mu", mu)); err != nil {
		return nil, err
	}
	p := &Poisson{mu: mu}
	p.refresh(p)
	return p, nil
}

// NewPoissonOverInterval returns the count distribution of events arriving
// at rate lambda over an interval of length t, i.e. Poisson(lambda*t).
func NewPoissonOverInterval(lambda, t float64) (*Poisson, error) {
	if err := validate(
		positive(KindPoisson, "lambda", lambda),
		positive(KindPoisson, "t", t),
	); err != nil {
		return nil, err
	}
	return NewPoisson(lambda * t)
}

func (p *Poisson) Kind() Kind       { return KindPoisson }
func (p *Poisson) Params() Params   { return Params{{"mu", p.mu}} }
func (p *Poisson) Support() Support { return integers(0, math.Inf(1)) }
func (p *Poisson) String() string   { return describe(p) }

func (p *Poisson) CalculateMean() Value   { return Numeric(p.mu) }
func (p *Poisson) CalculateStdDev() Value { return Numeric(math.Sqrt(p.mu)) }

func (p *Poisson) PDF(k float64) (Value, error) {
	return density(KindPoisson, p.Support(), k, distuv.Poisson{Lambda: p.mu}.Prob)
}

// Compose adds the rates.
func (p *Poisson) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Poisson](KindPoisson, other)
	if err != nil {
		return nil, err
	}
	return asDistribution(NewPoisson(p.mu + o.mu))
}
