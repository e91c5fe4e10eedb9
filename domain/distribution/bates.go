package distribution

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// BatesMaxN bounds n; the density sum costs O(n^2) digit operations.
const BatesMaxN = 1000

// Bates is the distribution of the mean of n independent U(a, b) variables.
type Bates struct {
	moments
	n    float64
	a, b float64
}

// NewBates returns Bates(n) on [a, b]. Defaults: n=12, a=0, b=1.
func NewBates(n, a, b float64) (*Bates, error) {
	if err := validate(
		integer(KindBates, "n", n, 1),
		atMost(KindBates, "n", n, BatesMaxN),
		isFinite(KindBates, "a", a),
		isFinite(KindBates, "b", b),
		less(KindBates, "a", a, "b", b),
	); err != nil {
		return nil, err
	}
	d := &Bates{n: n, a: a, b: b}
	d.refresh(d)
	return d, nil
}

func (d *Bates) Kind() Kind       { return KindBates }
func (d *Bates) Params() Params   { return Params{{"n", d.n}, {"a", d.a}, {"b", d.b}} }
func (d *Bates) Support() Support { return interval(d.a, d.b, PolicyDomainError) }
func (d *Bates) String() string   { return describe(d) }

func (d *Bates) CalculateMean() Value { return Numeric((d.a + d.b) / 2) }

func (d *Bates) CalculateStdDev() Value {
	return Numeric((d.b - d.a) / math.Sqrt(12*d.n))
}

// PDF scales the Irwin-Hall density of the sum: with t = (x-a)/(b-a),
// f(x) = n/(b-a) * irwinHall(n, n*t).
func (d *Bates) PDF(x float64) (Value, error) {
	return density(KindBates, d.Support(), x, func(x float64) float64 {
		t := (x - d.a) / (d.b - d.a)
		// Symmetric about the midpoint; the lower half needs fewer terms.
		if t > 0.5 {
			t = 1 - t
		}
		return d.n / (d.b - d.a) * irwinHall(int(d.n), d.n*t)
	})
}

// irwinHall returns the density of the sum of n standard uniforms at s,
// for 0 <= s <= n/2:
//
//	1/(n-1)! * sum_{k=0}^{floor(s)} (-1)^k C(n,k) (s-k)^(n-1)
//
// The alternating terms cancel by up to about n/2 decimal digits, so the sum
// runs in decimal arithmetic with n+40 digits of precision.
func irwinHall(n int, s float64) float64 {
	ed := apd.MakeErrDecimal(apd.BaseContext.WithPrecision(uint32(n) + 40))

	sv, err := new(apd.Decimal).SetFloat64(s)
	if err != nil {
		return math.NaN()
	}
	sum := new(apd.Decimal)
	coeff := apd.New(1, 0)
	base := new(apd.Decimal)
	term := new(apd.Decimal)
	kmax := int(math.Floor(s))
	if kmax > n-1 {
		kmax = n - 1
	}
	for k := 0; k <= kmax; k++ {
		ed.Sub(base, sv, apd.New(int64(k), 0))
		decimalPow(&ed, term, base, n-1)
		ed.Mul(term, term, coeff)
		if k%2 == 0 {
			ed.Add(sum, sum, term)
		} else {
			ed.Sub(sum, sum, term)
		}
		// C(n, k+1) = C(n, k) * (n-k) / (k+1), exact at this precision.
		ed.Mul(coeff, coeff, apd.New(int64(n-k), 0))
		ed.Quo(coeff, coeff, apd.New(int64(k+1), 0))
	}

	factorial := apd.New(1, 0)
	for i := 2; i < n; i++ {
		ed.Mul(factorial, factorial, apd.New(int64(i), 0))
	}
	ed.Quo(sum, sum, factorial)
	if ed.Err() != nil {
		return math.NaN()
	}
	f, err := sum.Float64()
	if err != nil {
		return math.NaN()
	}
	return f
}

// decimalPow sets d = x^e for e >= 0 by repeated squaring.
func decimalPow(ed *apd.ErrDecimal, d, x *apd.Decimal, e int) {
	result := apd.New(1, 0)
	sq := new(apd.Decimal).Set(x)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			ed.Mul(result, result, sq)
		}
		ed.Mul(sq, sq, sq)
	}
	d.Set(result)
}
