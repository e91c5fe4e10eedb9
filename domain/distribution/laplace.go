package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Laplace is the double exponential distribution with location mu and
// scale b.
type Laplace struct {
	moments
	mu, b float64
}

// NewLaplace returns Laplace(mu, b). Defaults: mu=0, b=1.
func NewLaplace(mu, b float64) (*Laplace, error) {
	if err := validate(
		isFinite(KindLaplace, "mu", mu),
		positive(KindLaplace, "b", b),
	); err != nil {
		return nil, err
	}
	l := &Laplace{mu: mu, b: b}
	l.refresh(l)
	return l, nil
}

func (l *Laplace) Kind() Kind       { return KindLaplace }
func (l *Laplace) Params() Params   { return Params{{"mu", l.mu}, {"b", l.b}} }
func (l *Laplace) Support() Support { return realLine() }
func (l *Laplace) String() string   { return describe(l) }

func (l *Laplace) CalculateMean() Value   { return Numeric(l.mu) }
func (l *Laplace) CalculateStdDev() Value { return Numeric(math.Sqrt2 * l.b) }

func (l *Laplace) PDF(x float64) (Value, error) {
	return density(KindLaplace, l.Support(), x, distuv.Laplace{Mu: l.mu, Scale: l.b}.Prob)
}
