package distribution

import (
	"math"
)

// Reciprocal is the log-uniform distribution on [a, b] with 0 < a < b.
type Reciprocal struct {
	moments
	a, b float64
}

// NewReciprocal returns Reciprocal(a, b). Defaults: a=1, b=2.
func NewReciprocal(a, b float64) (*Reciprocal, error) {
	if err := validate(
		positive(KindReciprocal, "a", a),
		isFinite(KindReciprocal, "b", b),
		less(KindReciprocal, "a", a, "b", b),
	); err != nil {
		return nil, err
	}
	r := &Reciprocal{a: a, b: b}
	r.refresh(r)
	return r, nil
}

func (r *Reciprocal) Kind() Kind       { return KindReciprocal }
func (r *Reciprocal) Params() Params   { return Params{{"a", r.a}, {"b", r.b}} }
func (r *Reciprocal) Support() Support { return interval(r.a, r.b, PolicyDomainError) }
func (r *Reciprocal) String() string   { return describe(r) }

func (r *Reciprocal) logRatio() float64 { return math.Log(r.b / r.a) }

func (r *Reciprocal) CalculateMean() Value {
	return finite((r.b - r.a) / r.logRatio())
}

func (r *Reciprocal) CalculateStdDev() Value {
	mean := (r.b - r.a) / r.logRatio()
	second := (r.b*r.b - r.a*r.a) / (2 * r.logRatio())
	return finite(math.Sqrt(second - mean*mean))
}

func (r *Reciprocal) PDF(x float64) (Value, error) {
	return density(KindReciprocal, r.Support(), x, func(x float64) float64 {
		return 1 / (x * r.logRatio())
	})
}
