package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// F is Snedecor's F distribution with d1 and d2 degrees of freedom.
type F struct {
	moments
	d1, d2 float64
}

// NewF returns F(d1, d2). Defaults: d1=4, d2=4.
func NewF(d1, d2 float64) (*F, error) {
	if err := validate(
		positive(KindF, "d1", d1),
		positive(KindF, "d2", d2),
	); err != nil {
		return nil, err
	}
	f := &F{d1: d1, d2: d2}
	f.refresh(f)
	return f, nil
}

func (f *F) Kind() Kind       { return KindF }
func (f *F) Params() Params   { return Params{{"d1", f.d1}, {"d2", f.d2}} }
func (f *F) Support() Support { return interval(0, math.Inf(1), PolicyDomainError) }
func (f *F) String() string   { return describe(f) }

// CalculateMean is d2/(d2-2), defined for d2 > 2.
func (f *F) CalculateMean() Value {
	if f.d2 <= 2 {
		return Undefined
	}
	return Numeric(f.d2 / (f.d2 - 2))
}

// CalculateStdDev is finite for d2 > 4, Infinite for 2 < d2 <= 4 and
// Undefined otherwise.
func (f *F) CalculateStdDev() Value {
	switch {
	case f.d2 <= 2:
		return Undefined
	case f.d2 <= 4:
		return Infinite
	}
	num := 2 * f.d2 * f.d2 * (f.d1 + f.d2 - 2)
	den := f.d1 * (f.d2 - 2) * (f.d2 - 2) * (f.d2 - 4)
	return finite(math.Sqrt(num / den))
}

func (f *F) PDF(x float64) (Value, error) {
	return density(KindF, f.Support(), x, func(x float64) float64 {
		if x == 0 {
			// The log-density is 0*log(0) at the origin; take the limit.
			switch {
			case f.d1 < 2:
				return math.Inf(1)
			case f.d1 == 2:
				return 1
			}
			return 0
		}
		return distuv.F{D1: f.d1, D2: f.d2}.Prob(x)
	})
}
