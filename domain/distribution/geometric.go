package distribution

import (
	"math"

	"godist/internal/errors"
)

// Geometric counts Bernoulli(p) trials up to the first success. With
// CountTrials the support is {1, 2, ...}; with CountFailures it counts only
// the failures before the success, on {0, 1, ...}.
type Geometric struct {
	moments
	p      float64
	trials bool
}

// Geometric conventions accepted by NewGeometric.
const (
	CountFailures = false
	CountTrials   = true
)

// NewGeometric returns Geometric(p). Defaults: p=0.5, CountTrials.
func NewGeometric(p float64, trials bool) (*Geometric, error) {
	if err := validate(
		probability(KindGeometric, "p", p),
		func() error {
			if p == 0 {
				return errors.InvalidParameter("%s: p must be positive, got 0", KindGeometric)
			}
			return nil
		},
	); err != nil {
		return nil, err
	}
	g := &Geometric{p: p, trials: trials}
	g.refresh(g)
	return g, nil
}

func (g *Geometric) Kind() Kind { return KindGeometric }

// Params reports the convention as trials=1 (CountTrials) or trials=0.
func (g *Geometric) Params() Params {
	return Params{{"p", g.p}, {"trials", indicator(g.trials)}}
}

func (g *Geometric) Support() Support {
	if g.trials {
		return integers(1, math.Inf(1))
	}
	return integers(0, math.Inf(1))
}

func (g *Geometric) String() string { return describe(g) }

func (g *Geometric) CalculateMean() Value {
	if g.trials {
		return Numeric(1 / g.p)
	}
	return Numeric((1 - g.p) / g.p)
}

func (g *Geometric) CalculateStdDev() Value {
	return Numeric(math.Sqrt(1-g.p) / g.p)
}

func (g *Geometric) PDF(k float64) (Value, error) {
	return density(KindGeometric, g.Support(), k, func(k float64) float64 {
		failures := k
		if g.trials {
			failures = k - 1
		}
		return math.Pow(1-g.p, failures) * g.p
	})
}
