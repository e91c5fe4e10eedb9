package distribution

import (
	"math"
)

// Bradford is the Bradford distribution with shape theta on [min, max].
type Bradford struct {
	moments
	theta    float64
	min, max float64
}

// NewBradford returns Bradford(theta) on [min, max].
// Defaults: theta=1, min=0, max=1.
func NewBradford(theta, min, max float64) (*Bradford, error) {
	if err := validate(
		positive(KindBradford, "theta", theta),
		isFinite(KindBradford, "min", min),
		isFinite(KindBradford, "max", max),
		less(KindBradford, "min", min, "max", max),
	); err != nil {
		return nil, err
	}
	d := &Bradford{theta: theta, min: min, max: max}
	d.refresh(d)
	return d, nil
}

func (d *Bradford) Kind() Kind { return KindBradford }

func (d *Bradford) Params() Params {
	return Params{{"theta", d.theta}, {"min", d.min}, {"max", d.max}}
}

func (d *Bradford) Support() Support { return interval(d.min, d.max, PolicyDomainError) }
func (d *Bradford) String() string   { return describe(d) }

func (d *Bradford) CalculateMean() Value {
	k := math.Log1p(d.theta)
	num := d.theta*(d.max-d.min) + k*(d.min*(d.theta+1)-d.max)
	return finite(num / (d.theta * k))
}

func (d *Bradford) CalculateStdDev() Value {
	k := math.Log1p(d.theta)
	w := d.max - d.min
	variance := w * w * (d.theta*(k-2) + 2*k) / (2 * d.theta * k * k)
	return finite(math.Sqrt(variance))
}

func (d *Bradford) PDF(x float64) (Value, error) {
	return density(KindBradford, d.Support(), x, func(x float64) float64 {
		return d.theta / ((d.theta*(x-d.min) + d.max - d.min) * math.Log1p(d.theta))
	})
}
