package distribution

import (
	"math"
)

// Levy is the Lévy distribution on (location, +Inf). Both moments diverge.
type Levy struct {
	moments
	location, scale float64
}

// NewLevy returns Lévy(location, scale). Defaults: location=2, scale=1.
func NewLevy(location, scale float64) (*Levy, error) {
	if err := validate(
		isFinite(KindLevy, "location", location),
		positive(KindLevy, "scale", scale),
	); err != nil {
		return nil, err
	}
	l := &Levy{location: location, scale: scale}
	l.refresh(l)
	return l, nil
}

func (l *Levy) Kind() Kind { return KindLevy }

func (l *Levy) Params() Params {
	return Params{{"location", l.location}, {"scale", l.scale}}
}

func (l *Levy) Support() Support {
	return openInterval(l.location, math.Inf(1), PolicyDomainError)
}

func (l *Levy) String() string { return describe(l) }

func (l *Levy) CalculateMean() Value   { return Infinite }
func (l *Levy) CalculateStdDev() Value { return Infinite }

func (l *Levy) PDF(x float64) (Value, error) {
	return density(KindLevy, l.Support(), x, func(x float64) float64 {
		dx := x - l.location
		return math.Sqrt(l.scale/(2*math.Pi)) * math.Exp(-l.scale/(2*dx)) / math.Pow(dx, 1.5)
	})
}

// Compose adds locations and the square roots of the scales, since the Lévy
// family is stable with index 1/2.
func (l *Levy) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Levy](KindLevy, other)
	if err != nil {
		return nil, err
	}
	root := math.Sqrt(l.scale) + math.Sqrt(o.scale)
	return asDistribution(NewLevy(l.location+o.location, root*root))
}
