package distribution

import (
	"fmt"
	"math"

	"godist/internal/errors"
)

// BoundaryPolicy says what PDF returns for a point outside the support.
type BoundaryPolicy int

const (
	// PolicyNone applies to kinds supported on the whole real line.
	PolicyNone BoundaryPolicy = iota
	// PolicyZero returns a density of 0.
	PolicyZero
	// PolicyUndefined returns the Undefined sentinel.
	PolicyUndefined
	// PolicyDomainError fails with a DomainError.
	PolicyDomainError
)

func (p BoundaryPolicy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyZero:
		return "zero"
	case PolicyUndefined:
		return "undefined"
	case PolicyDomainError:
		return "domain-error"
	}
	return "unknown"
}

// Support describes where a distribution's density is defined.
// Discrete supports contain only the integers inside the bounds.
type Support struct {
	Lower, Upper         float64
	LowerOpen, UpperOpen bool
	Discrete             bool
	Policy               BoundaryPolicy
}

func realLine() Support {
	return Support{Lower: math.Inf(-1), Upper: math.Inf(1), LowerOpen: true, UpperOpen: true}
}

func interval(lo, hi float64, policy BoundaryPolicy) Support {
	return Support{Lower: lo, Upper: hi, UpperOpen: math.IsInf(hi, 1), Policy: policy}
}

func openInterval(lo, hi float64, policy BoundaryPolicy) Support {
	return Support{Lower: lo, Upper: hi, LowerOpen: true, UpperOpen: true, Policy: policy}
}

func integers(lo, hi float64) Support {
	return Support{Lower: lo, Upper: hi, UpperOpen: math.IsInf(hi, 1), Discrete: true, Policy: PolicyDomainError}
}

// Contains reports whether x lies in the support.
func (s Support) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if s.Discrete && x != math.Trunc(x) {
		return false
	}
	if x < s.Lower || (s.LowerOpen && x == s.Lower) {
		return false
	}
	if x > s.Upper || (s.UpperOpen && x == s.Upper) {
		return false
	}
	return true
}

// String renders the support in interval notation, e.g. "[0, +Inf)".
func (s Support) String() string {
	lb, rb := "[", "]"
	if s.LowerOpen {
		lb = "("
	}
	if s.UpperOpen {
		rb = ")"
	}
	prefix := ""
	if s.Discrete {
		prefix = "integers in "
	}
	return fmt.Sprintf("%s%s%v, %v%s", prefix, lb, s.Lower, s.Upper, rb)
}

// density evaluates formula at x under the support's boundary policy.
// A formula that yields a non-finite number inside the support fails with a
// DomainError: the closed form has a zero denominator or invalid root there.
func density(kind Kind, s Support, x float64, formula func(float64) float64) (Value, error) {
	if !s.Contains(x) {
		switch s.Policy {
		case PolicyZero:
			return Numeric(0), nil
		case PolicyUndefined:
			return Undefined, nil
		default:
			return Value{}, errors.DomainError("%s: pdf undefined at x=%v outside support %s", kind, x, s)
		}
	}
	y := formula(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return Value{}, errors.DomainError("%s: pdf has no finite value at x=%v", kind, x)
	}
	return Numeric(y), nil
}
