package distribution

import (
	"math"
)

// Cauchy is the Cauchy (Lorentz) distribution. It has no finite moments, so
// Mean and StdDev are always Undefined.
type Cauchy struct {
	moments
	location, scale float64
}

// NewCauchy returns Cauchy(location, scale). Defaults: location=0, scale=1.
func NewCauchy(location, scale float64) (*Cauchy, error) {
	if err := validate(
		isFinite(KindCauchy, "location", location),
		positive(KindCauchy, "scale", scale),
	); err != nil {
		return nil, err
	}
	c := &Cauchy{location: location, scale: scale}
	c.refresh(c)
	return c, nil
}

func (c *Cauchy) Kind() Kind { return KindCauchy }

func (c *Cauchy) Params() Params {
	return Params{{"location", c.location}, {"scale", c.scale}}
}

// The support is the whole line, so only a NaN x fails with a DomainError.
func (c *Cauchy) Support() Support {
	s := realLine()
	s.Policy = PolicyDomainError
	return s
}

func (c *Cauchy) String() string { return describe(c) }

func (c *Cauchy) CalculateMean() Value   { return Undefined }
func (c *Cauchy) CalculateStdDev() Value { return Undefined }

func (c *Cauchy) PDF(x float64) (Value, error) {
	return density(KindCauchy, c.Support(), x, func(x float64) float64 {
		z := (x - c.location) / c.scale
		return 1 / (math.Pi * c.scale * (1 + z*z))
	})
}

// Compose adds locations and scales: the Cauchy family is stable.
func (c *Cauchy) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Cauchy](KindCauchy, other)
	if err != nil {
		return nil, err
	}
	return asDistribution(NewCauchy(c.location+o.location, c.scale+o.scale))
}
