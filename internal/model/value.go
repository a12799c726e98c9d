package model

import (
	"encoding/json"
	"math"
)

// Value is a numeric figure that is either resolved or unresolved.
// Unresolved stands for a line item that could not be found in the source data
// or a ratio that came out undefined (zero denominator, NaN, ±Inf). It is kept
// distinct from a true zero so that averages can skip it.
type Value struct {
	v  float64
	ok bool
}

// Resolved wraps v. Non-finite inputs collapse to Unresolved.
func Resolved(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, ok: true}
}

// Unresolved returns the empty Value.
func Unresolved() Value {
	return Value{}
}

// Get returns the underlying number and whether it is resolved.
func (v Value) Get() (float64, bool) {
	return v.v, v.ok
}

// IsResolved reports whether the value carries a number.
func (v Value) IsResolved() bool {
	return v.ok
}

// Or returns the number, or fallback when unresolved.
func (v Value) Or(fallback float64) float64 {
	if !v.ok {
		return fallback
	}
	return v.v
}

// MarshalJSON renders unresolved values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f *float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == nil {
		*v = Unresolved()
		return nil
	}
	*v = Resolved(*f)
	return nil
}
