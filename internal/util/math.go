// Package util provides generic utility functions.
package util

import "golang.org/x/exp/constraints"

// GCD calculates the greatest common divisor of two values using the
// Euclidean algorithm. GCD(x, 0) == x, so GCD(0, 0) == 0.
func GCD[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Ptr returns a pointer to the given value. Useful for converting literals to pointers.
func Ptr[Value any](v Value) *Value {
	return &v
}
