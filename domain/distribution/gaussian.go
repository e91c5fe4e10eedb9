package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is the normal distribution N(mu, sigma) on the real line.
type Gaussian struct {
	moments
	mu, sigma float64
}

// NewGaussian returns N(mu, sigma). Defaults: mu=0, sigma=1.
func NewGaussian(mu, sigma float64) (*Gaussian, error) {
	if err := validate(
		isFinite(KindGaussian, "mu", mu),
		positive(KindGaussian, "sigma", sigma),
	); err != nil {
		return nil, err
	}
	g := &Gaussian{mu: mu, sigma: sigma}
	g.refresh(g)
	return g, nil
}

func (g *Gaussian) Kind() Kind       { return KindGaussian }
func (g *Gaussian) Support() Support { return realLine() }
func (g *Gaussian) String() string   { return describe(g) }

func (g *Gaussian) Params() Params {
	return Params{{"mu", g.mu}, {"sigma", g.sigma}}
}

func (g *Gaussian) CalculateMean() Value   { return Numeric(g.mu) }
func (g *Gaussian) CalculateStdDev() Value { return Numeric(g.sigma) }

func (g *Gaussian) PDF(x float64) (Value, error) {
	return density(KindGaussian, g.Support(), x, distuv.Normal{Mu: g.mu, Sigma: g.sigma}.Prob)
}

// Compose returns N(mu1+mu2, sqrt(sigma1²+sigma2²)).
func (g *Gaussian) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Gaussian](KindGaussian, other)
	if err != nil {
		return nil, err
	}
	return asDistribution(NewGaussian(g.mu+o.mu, math.Hypot(g.sigma, o.sigma)))
}
