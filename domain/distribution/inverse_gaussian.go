package distribution

import (
	"math"
)

// InverseGaussian is the Wald distribution with mean mu and shape lambda on
// (0, +Inf). The closed form divides by x, so PDF fails for x <= 0.
type InverseGaussian struct {
	moments
	mu, lambda float64
}

// NewInverseGaussian returns IG(mu, lambda). Defaults: mu=1, lambda=1.
func NewInverseGaussian(mu, lambda float64) (*InverseGaussian, error) {
	if err := validate(
		positive(KindInverseGaussian, "mu", mu),
		positive(KindInverseGaussian, "lambda", lambda),
	); err != nil {
		return nil, err
	}
	d := &InverseGaussian{mu: mu, lambda: lambda}
	d.refresh(d)
	return d, nil
}

func (d *InverseGaussian) Kind() Kind { return KindInverseGaussian }

func (d *InverseGaussian) Params() Params {
	return Params{{"mu", d.mu}, {"lambda", d.lambda}}
}

func (d *InverseGaussian) Support() Support {
	return openInterval(0, math.Inf(1), PolicyDomainError)
}

func (d *InverseGaussian) String() string { return describe(d) }

func (d *InverseGaussian) CalculateMean() Value { return Numeric(d.mu) }

func (d *InverseGaussian) CalculateStdDev() Value {
	return Numeric(math.Sqrt(d.mu * d.mu * d.mu / d.lambda))
}

func (d *InverseGaussian) PDF(x float64) (Value, error) {
	return density(KindInverseGaussian, d.Support(), x, func(x float64) float64 {
		dev := x - d.mu
		return math.Sqrt(d.lambda/(2*math.Pi*x*x*x)) * math.Exp(-d.lambda*dev*dev/(2*d.mu*d.mu*x))
	})
}
