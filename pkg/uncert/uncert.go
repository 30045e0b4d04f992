// Package uncert implements a scalar value that carries an independent
// standard deviation, with the usual error-propagation rules: variances add
// under addition, and scale with the square of the multiplier under scalar
// multiplication.
package uncert

import "math"

// Value is a nominal float64 together with its standard deviation.
// The zero Value is an exact zero with no uncertainty.
type Value struct {
	Nominal float64
	StdDev  float64
}

// New returns a Value with the given nominal value and standard deviation.
func New(nominal, stdDev float64) Value {
	return Value{Nominal: nominal, StdDev: stdDev}
}

// Zero returns an exact zero value.
func Zero() Value {
	return Value{}
}

// Add combines two independent values: nominals sum and variances add in
// quadrature. A NaN standard deviation on either operand is treated as zero.
func (v Value) Add(o Value) Value {
	a, b := v.StdDev, o.StdDev
	if math.IsNaN(a) {
		a = 0
	}
	if math.IsNaN(b) {
		b = 0
	}
	return Value{Nominal: v.Nominal + o.Nominal, StdDev: math.Hypot(a, b)}
}

// Scale multiplies the value by k: the nominal scales by k and the standard
// deviation by |k|. A NaN standard deviation is treated as zero.
func (v Value) Scale(k float64) Value {
	s := v.StdDev
	if math.IsNaN(s) {
		s = 0
	}
	return Value{Nominal: k * v.Nominal, StdDev: math.Abs(k) * s}
}

// IsZero reports whether the value is an exact zero with zero uncertainty.
func (v Value) IsZero() bool {
	return v.Nominal == 0 && v.StdDev == 0
}

// ReportedStdDev returns the standard deviation to expose to callers after
// accumulation. A non-zero nominal with an exactly zero accumulated standard
// deviation reports NaN, signalling that a correction was applied but no
// error data exists for it.
func (v Value) ReportedStdDev() float64 {
	if v.Nominal != 0 && v.StdDev == 0 {
		return math.NaN()
	}
	return v.StdDev
}
