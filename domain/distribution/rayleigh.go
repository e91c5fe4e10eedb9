package distribution

import (
	"math"
)

// Rayleigh is the Rayleigh distribution with scale sigma. The density is 0
// for negative x.
type Rayleigh struct {
	moments
	sigma float64
}

// NewRayleigh returns Rayleigh(sigma). Default: sigma=1.
func NewRayleigh(sigma float64) (*Rayleigh, error) {
	if err := validate(positive(KindRayleigh, "sigma", sigma)); err != nil {
		return nil, err
	}
	r := &Rayleigh{sigma: sigma}
	r.refresh(r)
	return r, nil
}

func (r *Rayleigh) Kind() Kind       { return KindRayleigh }
func (r *Rayleigh) Params() Params   { return Params{{"sigma", r.sigma}} }
func (r *Rayleigh) Support() Support { return interval(0, math.Inf(1), PolicyZero) }
func (r *Rayleigh) String() string   { return describe(r) }

func (r *Rayleigh) CalculateMean() Value {
	return Numeric(r.sigma * math.Sqrt(math.Pi/2))
}

func (r *Rayleigh) CalculateStdDev() Value {
	return Numeric(r.sigma * math.Sqrt((4-math.Pi)/2))
}

func (r *Rayleigh) PDF(x float64) (Value, error) {
	return density(KindRayleigh, r.Support(), x, func(x float64) float64 {
		s2 := r.sigma * r.sigma
		return x / s2 * math.Exp(-x*x/(2*s2))
	})
}
