package distribution

import (
	"math"
)

// ZetaMaxLimit bounds the truncation point; every harmonic sum is O(limit).
const ZetaMaxLimit = 1e6

// Zeta is the Zipf distribution truncated to {1, ..., limit} with exponent s.
//
// Its statistics use the generalized harmonic sums H(limit, s) in place of
// the Riemann zeta function. The moment conditions of the untruncated family
// still apply: the mean needs s > 2 and the standard deviation s > 3, and
// both are Infinite otherwise.
type Zeta struct {
	moments
	limit, s float64
	norm     float64 // H(limit, s)
}

// NewZeta returns Zeta(limit, s). Defaults: limit=100, s=4.
func NewZeta(limit, s float64) (*Zeta, error) {
	if err := validate(
		integer(KindZeta, "limit", limit, 1),
		atMost(KindZeta, "limit", limit, ZetaMaxLimit),
		positive(KindZeta, "s", s),
	); err != nil {
		return nil, err
	}
	z := &Zeta{limit: limit, s: s}
	z.norm = z.harmonic(s)
	z.refresh(z)
	return z, nil
}

func (z *Zeta) Kind() Kind       { return KindZeta }
func (z *Zeta) Params() Params   { return Params{{"limit", z.limit}, {"s", z.s}} }
func (z *Zeta) Support() Support { return integers(1, z.limit) }
func (z *Zeta) String() string   { return describe(z) }

// harmonic returns H(limit, s) = sum_{i=1}^{limit} i^-s.
// The loop runs from the smallest term up so the tail is not absorbed.
func (z *Zeta) harmonic(s float64) float64 {
	sum := 0.0
	for i := z.limit; i >= 1; i-- {
		sum += math.Pow(i, -s)
	}
	return sum
}

func (z *Zeta) CalculateMean() Value {
	if z.s <= 2 {
		return Infinite
	}
	return finite(z.harmonic(z.s-1) / z.norm)
}

func (z *Zeta) CalculateStdDev() Value {
	if z.s <= 3 {
		return Infinite
	}
	h0 := z.norm
	h1 := z.harmonic(z.s - 1)
	h2 := z.harmonic(z.s - 2)
	return finite(sqrtNonNegative((h0*h2 - h1*h1) / (h0 * h0)))
}

func (z *Zeta) PDF(k float64) (Value, error) {
	return density(KindZeta, z.Support(), k, func(k float64) float64 {
		return 1 / (z.norm * math.Pow(k, z.s))
	})
}
