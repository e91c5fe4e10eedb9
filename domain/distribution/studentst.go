package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// T is the standard Student's t distribution with nu degrees of freedom.
type T struct {
	moments
	nu float64
}

// NewT returns t(nu). Default: nu=4.
func NewT(nu float64) (*T, error) {
	if err := validate(positive(KindT, "nu", nu)); err != nil {
		return nil, err
	}
	t := &T{nu: nu}
	t.refresh(t)
	return t, nil
}

func (t *T) Kind() Kind       { return KindT }
func (t *T) Params() Params   { return Params{{"nu", t.nu}} }
func (t *T) Support() Support { return realLine() }
func (t *T) String() string   { return describe(t) }

// CalculateMean is 0 for nu > 1 and Undefined otherwise.
func (t *T) CalculateMean() Value {
	if t.nu <= 1 {
		return Undefined
	}
	return Numeric(0)
}

// CalculateStdDev is sqrt(nu/(nu-2)) for nu > 2, Infinite for 1 < nu <= 2
// and Undefined for nu <= 1.
func (t *T) CalculateStdDev() Value {
	switch {
	case t.nu <= 1:
		return Undefined
	case t.nu <= 2:
		return Infinite
	}
	return Numeric(math.Sqrt(t.nu / (t.nu - 2)))
}

func (t *T) PDF(x float64) (Value, error) {
	return density(KindT, t.Support(), x, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.nu}.Prob)
}
