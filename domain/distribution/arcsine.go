package distribution

import (
	"math"
)

// Arcsine is the standard arcsine distribution on (0, 1). Its density
// diverges at both endpoints, so PDF fails there and outside the interval.
type Arcsine struct {
	moments
}

// NewArcsine returns the standard arcsine distribution. It has no parameters.
func NewArcsine() *Arcsine {
	a := &Arcsine{}
	a.refresh(a)
	return a
}

func (a *Arcsine) Kind() Kind       { return KindArcsine }
func (a *Arcsine) Params() Params   { return nil }
func (a *Arcsine) Support() Support { return openInterval(0, 1, PolicyDomainError) }
func (a *Arcsine) String() string   { return describe(a) }

func (a *Arcsine) CalculateMean() Value   { return Numeric(0.5) }
func (a *Arcsine) CalculateStdDev() Value { return Numeric(math.Sqrt(1.0 / 8)) }

func (a *Arcsine) PDF(x float64) (Value, error) {
	return density(KindArcsine, a.Support(), x, func(x float64) float64 {
		return 1 / (math.Pi * math.Sqrt(x*(1-x)))
	})
}

// BoundedArcsine is the arcsine distribution rescaled to (a, b).
type BoundedArcsine struct {
	moments
	a, b float64
}

// NewBoundedArcsine returns the arcsine distribution on (a, b).
// Defaults: a=0, b=1.
func NewBoundedArcsine(a, b float64) (*BoundedArcsine, error) {
	if err := validate(
		isFinite(KindBoundedArcsine, "a", a),
		isFinite(KindBoundedArcsine, "b", b),
		less(KindBoundedArcsine, "a", a, "b", b),
	); err != nil {
		return nil, err
	}
	d := &BoundedArcsine{a: a, b: b}
	d.refresh(d)
	return d, nil
}

func (d *BoundedArcsine) Kind() Kind       { return KindBoundedArcsine }
func (d *BoundedArcsine) Params() Params   { return Params{{"a", d.a}, {"b", d.b}} }
func (d *BoundedArcsine) Support() Support { return openInterval(d.a, d.b, PolicyDomainError) }
func (d *BoundedArcsine) String() string   { return describe(d) }

func (d *BoundedArcsine) CalculateMean() Value { return Numeric((d.a + d.b) / 2) }

func (d *BoundedArcsine) CalculateStdDev() Value {
	return Numeric((d.b - d.a) / math.Sqrt(8))
}

func (d *BoundedArcsine) PDF(x float64) (Value, error) {
	return density(KindBoundedArcsine, d.Support(), x, func(x float64) float64 {
		return 1 / (math.Pi * math.Sqrt((x-d.a)*(d.b-x)))
	})
}
