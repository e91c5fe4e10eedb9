package distribution

import (
	"math"
	"strconv"
	"strings"

	"godist/internal/errors"
)

// Param is one named parameter of a distribution.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Params is a distribution's ParameterSet, in constructor order.
type Params []Param

// Get returns the value of the named parameter.
func (p Params) Get(name string) (float64, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return 0, false
}

// Map returns the parameters keyed by name.
func (p Params) Map() map[string]float64 {
	m := make(map[string]float64, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}

// String renders "name: value" pairs joined by ", ".
func (p Params) String() string {
	parts := make([]string, len(p))
	for i, param := range p {
		parts[i] = param.Name + ": " + strconv.FormatFloat(param.Value, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// check is a single ParameterBounds predicate; nil means satisfied.
type check func() error

// validate runs checks in order and returns the first violation.
func validate(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

func isFinite(kind Kind, name string, v float64) check {
	return func() error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidParameter("%s: %s must be finite, got %v", kind, name, v)
		}
		return nil
	}
}

func positive(kind Kind, name string, v float64) check {
	return func() error {
		if err := isFinite(kind, name, v)(); err != nil {
			return err
		}
		if v <= 0 {
			return errors.InvalidParameter("%s: %s must be positive, got %v", kind, name, v)
		}
		return nil
	}
}

func probability(kind Kind, name string, v float64) check {
	return func() error {
		if err := isFinite(kind, name, v)(); err != nil {
			return err
		}
		if v < 0 || v > 1 {
			return errors.InvalidParameter("%s: %s must lie in [0, 1], got %v", kind, name, v)
		}
		return nil
	}
}

// integer requires a whole number no smaller than min.
func integer(kind Kind, name string, v float64, min float64) check {
	return func() error {
		if err := isFinite(kind, name, v)(); err != nil {
			return err
		}
		if v != math.Trunc(v) {
			return errors.InvalidParameter("%s: %s must be an integer, got %v", kind, name, v)
		}
		if v < min {
			return errors.InvalidParameter("%s: %s must be at least %v, got %v", kind, name, min, v)
		}
		return nil
	}
}

// atMost caps a parameter whose evaluation cost grows with its value.
func atMost(kind Kind, name string, v, max float64) check {
	return func() error {
		if v > max {
			return errors.InvalidParameter("%s: %s must be at most %v, got %v", kind, name, max, v)
		}
		return nil
	}
}

// less requires lo < hi.
func less(kind Kind, loName string, lo float64, hiName string, hi float64) check {
	return func() error {
		if !(lo < hi) {
			return errors.InvalidParameter("%s: %s must be less than %s, got %v >= %v", kind, loName, hiName, lo, hi)
		}
		return nil
	}
}

// lessOrEqual requires lo <= hi.
func lessOrEqual(kind Kind, loName string, lo float64, hiName string, hi float64) check {
	return func() error {
		if !(lo <= hi) {
			return errors.InvalidParameter("%s: %s must not exceed %s, got %v > %v", kind, loName, hiName, lo, hi)
		}
		return nil
	}
}
