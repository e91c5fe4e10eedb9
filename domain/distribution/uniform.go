package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [a, b].
// The density is 0 outside the interval.
type Uniform struct {
	moments
	a, b float64
}

// NewUniform returns U(a, b). Defaults: a=0, b=1.
func NewUniform(a, b float64) (*Uniform, error) {
	if err := validateUniform(a, b); err != nil {
		return nil, err
	}
	u := &Uniform{a: a, b: b}
	u.refresh(u)
	return u, nil
}

func validateUniform(a, b float64) error {
	return validate(
		isFinite(KindUniform, "a", a),
		isFinite(KindUniform, "b", b),
		less(KindUniform, "a", a, "b", b),
	)
}

func (u *Uniform) Kind() Kind       { return KindUniform }
func (u *Uniform) Params() Params   { return Params{{"a", u.a}, {"b", u.b}} }
func (u *Uniform) Support() Support { return interval(u.a, u.b, PolicyZero) }
func (u *Uniform) String() string   { return describe(u) }

func (u *Uniform) CalculateMean() Value { return Numeric((u.a + u.b) / 2) }

func (u *Uniform) CalculateStdDev() Value {
	return Numeric((u.b - u.a) / math.Sqrt(12))
}

func (u *Uniform) PDF(x float64) (Value, error) {
	return density(KindUniform, u.Support(), x, distuv.Uniform{Min: u.a, Max: u.b}.Prob)
}

// Refresh takes the sample minimum and maximum as the new bounds.
// A sample whose values are all equal is rejected and u is left unchanged.
func (u *Uniform) Refresh(sample []float64) error {
	lo, hi, err := extrema(KindUniform, sample)
	if err != nil {
		return err
	}
	if err := validateUniform(lo, hi); err != nil {
		return err
	}
	u.a, u.b = lo, hi
	u.refresh(u)
	return nil
}
