package distribution

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// YuleSimon is the Yule-Simon distribution with shape rho on {1, 2, ...}.
type YuleSimon struct {
	moments
	rho float64
}

// NewYuleSimon returns YuleSimon(rho). Default: rho=1.
func NewYuleSimon(rho float64) (*YuleSimon, error) {
	if err := validate(positive(KindYuleSimon, "rho", rho)); err != nil {
		return nil, err
	}
	y := &YuleSimon{rho: rho}
	y.refresh(y)
	return y, nil
}

func (y *YuleSimon) Kind() Kind       { return KindYuleSimon }
func (y *YuleSimon) Params() Params   { return Params{{"rho", y.rho}} }
func (y *YuleSimon) Support() Support { return integers(1, math.Inf(1)) }
func (y *YuleSimon) String() string   { return describe(y) }

func (y *YuleSimon) CalculateMean() Value {
	if y.rho <= 1 {
		return Undefined
	}
	return Numeric(y.rho / (y.rho - 1))
}

func (y *YuleSimon) CalculateStdDev() Value {
	if y.rho <= 2 {
		return Undefined
	}
	r1 := y.rho - 1
	return finite(math.Sqrt(y.rho * y.rho / (r1 * r1 * (y.rho - 2))))
}

// PDF is rho * B(k, rho+1).
func (y *YuleSimon) PDF(k float64) (Value, error) {
	return density(KindYuleSimon, y.Support(), k, func(k float64) float64 {
		return y.rho * math.Exp(mathext.Lbeta(k, y.rho+1))
	})
}
