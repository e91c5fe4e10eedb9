package distribution

// Trapezoidal rises linearly on [a, b], is flat on [b, c] and falls linearly
// on [c, d]. PDF returns Undefined outside [a, d].
type Trapezoidal struct {
	moments
	a, b, c, d float64
}

// NewTrapezoidal returns Trapezoidal(a, b, c, d) with a <= b < c <= d.
// Defaults: a=1, b=2, c=3, d=4.
func NewTrapezoidal(a, b, c, d float64) (*Trapezoidal, error) {
	if err := validate(
		isFinite(KindTrapezoidal, "a", a),
		isFinite(KindTrapezoidal, "b", b),
		isFinite(KindTrapezoidal, "c", c),
		isFinite(KindTrapezoidal, "d", d),
		lessOrEqual(KindTrapezoidal, "a", a, "b", b),
		less(KindTrapezoidal, "b", b, "c", c),
		lessOrEqual(KindTrapezoidal, "c", c, "d", d),
	); err != nil {
		return nil, err
	}
	t := &Trapezoidal{a: a, b: b, c: c, d: d}
	t.refresh(t)
	return t, nil
}

func (t *Trapezoidal) Kind() Kind { return KindTrapezoidal }

func (t *Trapezoidal) Params() Params {
	return Params{{"a", t.a}, {"b", t.b}, {"c", t.c}, {"d", t.d}}
}

func (t *Trapezoidal) Support() Support { return interval(t.a, t.d, PolicyUndefined) }
func (t *Trapezoidal) String() string   { return describe(t) }

// height is the density on the plateau [b, c].
func (t *Trapezoidal) height() float64 { return 2 / (t.d + t.c - t.a - t.b) }

// The raw moments use (hi^n - lo^n)/(hi - lo) expanded as a polynomial so that
// a == b and c == d stay finite.

func (t *Trapezoidal) CalculateMean() Value {
	cubes := (t.d*t.d + t.d*t.c + t.c*t.c) - (t.b*t.b + t.b*t.a + t.a*t.a)
	return Numeric(cubes / (3 * (t.d + t.c - t.b - t.a)))
}

func (t *Trapezoidal) CalculateStdDev() Value {
	mean, _ := t.CalculateMean().Float()
	quartics := (t.d+t.c)*(t.d*t.d+t.c*t.c) - (t.b+t.a)*(t.b*t.b+t.a*t.a)
	second := quartics / (6 * (t.d + t.c - t.b - t.a))
	return finite(sqrtNonNegative(second - mean*mean))
}

func (t *Trapezoidal) PDF(x float64) (Value, error) {
	return density(KindTrapezoidal, t.Support(), x, func(x float64) float64 {
		h := t.height()
		switch {
		case x < t.b:
			return h * (x - t.a) / (t.b - t.a)
		case x < t.c:
			return h
		case x < t.d:
			return h * (t.d - x) / (t.d - t.c)
		}
		if t.c == t.d {
			return h
		}
		return 0
	})
}
