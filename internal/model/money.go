package model

import "math"

// Money values that may be absent are represented as *float64. Arithmetic on
// them must short-circuit to nil rather than ever surfacing NaN or Infinity
// in a returned structure.

// Float returns a pointer to v, for building optional money values.
func Float(v float64) *float64 {
	return &v
}

// FiniteOrNil collapses a non-finite value to nil.
func FiniteOrNil(v float64) *float64 {
	if !IsFinite(v) {
		return nil
	}
	return &v
}

// FiniteOrZero collapses a non-finite value to 0, for fields that must
// always carry a number.
func FiniteOrZero(v float64) float64 {
	if !IsFinite(v) {
		return 0
	}
	return v
}

// IsFinite reports whether v is a usable number.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SubPtr returns a-b, or nil when a is nil. A nil b is treated as zero so a
// known minuend still produces a result.
func SubPtr(a, b *float64) *float64 {
	if a == nil {
		return nil
	}
	bv := 0.0
	if b != nil {
		bv = *b
	}
	return FiniteOrNil(*a - bv)
}
