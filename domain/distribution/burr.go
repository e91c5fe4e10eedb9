package distribution

import (
	"math"
)

// Burr is the Burr type XII distribution with density
//
//	f(x) = alpha*beta*k^alpha * x^(beta-1) / (k + x^beta)^(alpha+1),  x >= 0.
//
// The r-th moment exists only while alpha > r/beta; past that it is Infinite.
type Burr struct {
	moments
	k, alpha, beta float64
}

// NewBurr returns Burr(k, alpha, beta). Defaults: k=1, alpha=2, beta=2.
func NewBurr(k, alpha, beta float64) (*Burr, error) {
	if err := validate(
		positive(KindBurr, "k", k),
		positive(KindBurr, "alpha", alpha),
		positive(KindBurr, "beta", beta),
	); err != nil {
		return nil, err
	}
	d := &Burr{k: k, alpha: alpha, beta: beta}
	d.refresh(d)
	return d, nil
}

func (d *Burr) Kind() Kind { return KindBurr }

func (d *Burr) Params() Params {
	return Params{{"k", d.k}, {"alpha", d.alpha}, {"beta", d.beta}}
}

func (d *Burr) Support() Support { return interval(0, math.Inf(1), PolicyDomainError) }
func (d *Burr) String() string   { return describe(d) }

// rawMoment returns E[X^r] = k^(r/beta) Γ(1+r/beta) Γ(alpha-r/beta) / Γ(alpha).
func (d *Burr) rawMoment(r float64) float64 {
	q := r / d.beta
	return math.Pow(d.k, q) * math.Gamma(1+q) * math.Gamma(d.alpha-q) / math.Gamma(d.alpha)
}

func (d *Burr) CalculateMean() Value {
	if d.alpha <= 1/d.beta {
		return Infinite
	}
	return finite(d.rawMoment(1))
}

func (d *Burr) CalculateStdDev() Value {
	if d.alpha <= 2/d.beta {
		return Infinite
	}
	m1 := d.rawMoment(1)
	return finite(math.Sqrt(d.rawMoment(2) - m1*m1))
}

func (d *Burr) PDF(x float64) (Value, error) {
	return density(KindBurr, d.Support(), x, func(x float64) float64 {
		num := d.alpha * d.beta * math.Pow(d.k, d.alpha) * math.Pow(x, d.beta-1)
		return num / math.Pow(d.k+math.Pow(x, d.beta), d.alpha+1)
	})
}
