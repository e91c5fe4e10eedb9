package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Weibull is the Weibull distribution with scale lambda and shape k. The
// density is 0 for negative x.
type Weibull struct {
	moments
	lambda, k float64
}

// NewWeibull returns Weibull(lambda, k). Defaults: lambda=1, k=1.
func NewWeibull(lambda, k float64) (*Weibull, error) {
	if err := validate(
		positive(KindWeibull, "lambda", lambda),
		positive(KindWeibull, "k", k),
	); err != nil {
		return nil, err
	}
	w := &Weibull{lambda: lambda, k: k}
	w.refresh(w)
	return w, nil
}

func (w *Weibull) Kind() Kind       { return KindWeibull }
func (w *Weibull) Params() Params   { return Params{{"lambda", w.lambda}, {"k", w.k}} }
func (w *Weibull) Support() Support { return interval(0, math.Inf(1), PolicyZero) }
func (w *Weibull) String() string   { return describe(w) }

func (w *Weibull) CalculateMean() Value {
	return finite(w.lambda * math.Gamma(1+1/w.k))
}

func (w *Weibull) CalculateStdDev() Value {
	g1 := math.Gamma(1 + 1/w.k)
	g2 := math.Gamma(1 + 2/w.k)
	return finite(w.lambda * sqrtNonNegative(g2-g1*g1))
}

func (w *Weibull) PDF(x float64) (Value, error) {
	return density(KindWeibull, w.Support(), x, func(x float64) float64 {
		if x == 0 {
			// distuv special-cases the origin only for lambda == 1.
			switch {
			case w.k < 1:
				return math.Inf(1)
			case w.k == 1:
				return 1 / w.lambda
			}
			return 0
		}
		return distuv.Weibull{K: w.k, Lambda: w.lambda}.Prob(x)
	})
}
