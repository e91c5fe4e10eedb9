package distribution

import (
	"math"
)

// LogLogistic is the log-logistic (Fisk) distribution with scale alpha and
// shape beta on [0, +Inf).
type LogLogistic struct {
	moments
	alpha, beta float64
}

// NewLogLogistic returns LogLogistic(alpha, beta). Defaults: alpha=1, beta=1.
func NewLogLogistic(alpha, beta float64) (*LogLogistic, error) {
	if err := validate(
		positive(KindLogLogistic, "alpha", alpha),
		positive(KindLogLogistic, "beta", beta),
	); err != nil {
		return nil, err
	}
	d := &LogLogistic{alpha: alpha, beta: beta}
	d.refresh(d)
	return d, nil
}

func (d *LogLogistic) Kind() Kind { return KindLogLogistic }

func (d *LogLogistic) Params() Params {
	return Params{{"alpha", d.alpha}, {"beta", d.beta}}
}

func (d *LogLogistic) Support() Support {
	return interval(0, math.Inf(1), PolicyDomainError)
}

func (d *LogLogistic) String() string { return describe(d) }

// CalculateMean is alpha*b/sin(b) with b = pi/beta, defined for beta > 1.
func (d *LogLogistic) CalculateMean() Value {
	if d.beta <= 1 {
		return Undefined
	}
	b := math.Pi / d.beta
	return finite(d.alpha * b / math.Sin(b))
}

// CalculateStdDev is defined for beta > 2.
func (d *LogLogistic) CalculateStdDev() Value {
	if d.beta <= 2 {
		return Undefined
	}
	b := math.Pi / d.beta
	sin := math.Sin(b)
	variance := d.alpha * d.alpha * (2*b/math.Sin(2*b) - b*b/(sin*sin))
	return finite(math.Sqrt(variance))
}

func (d *LogLogistic) PDF(x float64) (Value, error) {
	return density(KindLogLogistic, d.Support(), x, func(x float64) float64 {
		z := x / d.alpha
		den := 1 + math.Pow(z, d.beta)
		return (d.beta / d.alpha) * math.Pow(z, d.beta-1) / (den * den)
	})
}
