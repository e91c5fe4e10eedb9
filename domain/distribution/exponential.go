package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is the exponential distribution with rate lambda on [0, +Inf).
// The density is 0 for negative x.
type Exponential struct {
	moments
	rate float64
}

// NewExponential returns Exp(rate). Default: rate=1.
func NewExponential(rate float64) (*Exponential, error) {
	if err := validate(positive(KindExponential, "rate", rate)); err != nil {
		return nil, err
	}
	e := &Exponential{rate: rate}
	e.refresh(e)
	return e, nil
}

func (e *Exponential) Kind() Kind       { return KindExponential }
func (e *Exponential) Params() Params   { return Params{{"rate", e.rate}} }
func (e *Exponential) Support() Support { return interval(0, math.Inf(1), PolicyZero) }
func (e *Exponential) String() string   { return describe(e) }

func (e *Exponential) CalculateMean() Value   { return Numeric(1 / e.rate) }
func (e *Exponential) CalculateStdDev() Value { return Numeric(1 / e.rate) }

func (e *Exponential) PDF(x float64) (Value, error) {
	return density(KindExponential, e.Support(), x, distuv.Exponential{Rate: e.rate}.Prob)
}
