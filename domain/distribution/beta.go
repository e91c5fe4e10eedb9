package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is the beta distribution on [0, 1] with shape parameters alpha and beta.
// For shapes below 1 the density diverges at the matching endpoint.
type Beta struct {
	moments
	alpha, beta float64
}

// NewBeta returns Beta(alpha, beta). Defaults: alpha=1, beta=1.
func NewBeta(alpha, beta float64) (*Beta, error) {
	if err := validate(
		positive(KindBeta, "alpha", alpha),
		positive(KindBeta, "beta", beta),
	); err != nil {
		return nil, err
	}
	d := &Beta{alpha: alpha, beta: beta}
	d.refresh(d)
	return d, nil
}

func (d *Beta) Kind() Kind       { return KindBeta }
func (d *Beta) Params() Params   { return Params{{"alpha", d.alpha}, {"beta", d.beta}} }
func (d *Beta) Support() Support { return interval(0, 1, PolicyDomainError) }
func (d *Beta) String() string   { return describe(d) }

func (d *Beta) CalculateMean() Value {
	return Numeric(d.alpha / (d.alpha + d.beta))
}

func (d *Beta) CalculateStdDev() Value {
	s := d.alpha + d.beta
	return Numeric(math.Sqrt(d.alpha * d.beta / (s * s * (s + 1))))
}

func (d *Beta) PDF(x float64) (Value, error) {
	return density(KindBeta, d.Support(), x, distuv.Beta{Alpha: d.alpha, Beta: d.beta}.Prob)
}
