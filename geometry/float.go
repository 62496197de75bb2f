package geometry

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Precision restricts the value types to single or double precision floats.
type Precision interface {
	constraints.Float
}

// Ordering is the result of comparing two floating point values.
// NaN is not ordered relative to anything, itself included.
type Ordering int8

const (
	OrderLess Ordering = iota - 1
	OrderEqual
	OrderGreater
	Unordered
)

func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	default:
		return "unordered"
	}
}

// FloatingPoint represents an IEEE 754 floating point number.
// The zero value holds +0.
type FloatingPoint[T Precision] struct {
	value T
}

func NewFloatingPoint[T Precision](value T) FloatingPoint[T] {
	return FloatingPoint[T]{value: value}
}

func (f FloatingPoint[T]) Value() T {
	return f.value
}

func (f FloatingPoint[T]) Neg() FloatingPoint[T] {
	return FloatingPoint[T]{-f.value}
}

func (f FloatingPoint[T]) Add(other FloatingPoint[T]) FloatingPoint[T] {
	return FloatingPoint[T]{f.value + other.value}
}

func (f FloatingPoint[T]) Sub(other FloatingPoint[T]) FloatingPoint[T] {
	return FloatingPoint[T]{f.value - other.value}
}

func (f FloatingPoint[T]) Mul(other FloatingPoint[T]) FloatingPoint[T] {
	return FloatingPoint[T]{f.value * other.value}
}

// Div divides f by other. Division by zero yields a signed infinity, 0/0 yields NaN.
func (f FloatingPoint[T]) Div(other FloatingPoint[T]) FloatingPoint[T] {
	return FloatingPoint[T]{f.value / other.value}
}

// Compare orders f against other the way the underlying floats compare.
func (f FloatingPoint[T]) Compare(other FloatingPoint[T]) Ordering {
	switch {
	case f.value < other.value:
		return OrderLess
	case f.value > other.value:
		return OrderGreater
	case f.value == other.value:
		return OrderEqual
	default:
		return Unordered
	}
}

func (f FloatingPoint[T]) Equal(other FloatingPoint[T]) bool {
	return f.value == other.value
}

func (f FloatingPoint[T]) Less(other FloatingPoint[T]) bool {
	return f.value < other.value
}

func (f FloatingPoint[T]) LessOrEqual(other FloatingPoint[T]) bool {
	return f.value <= other.value
}

func (f FloatingPoint[T]) Greater(other FloatingPoint[T]) bool {
	return f.value > other.value
}

func (f FloatingPoint[T]) GreaterOrEqual(other FloatingPoint[T]) bool {
	return f.value >= other.value
}

func (f FloatingPoint[T]) IsNaN() bool {
	return math.IsNaN(float64(f.value))
}

// IsInf reports whether f is an infinity, according to sign (see math.IsInf).
func (f FloatingPoint[T]) IsInf(sign int) bool {
	return math.IsInf(float64(f.value), sign)
}

func (f FloatingPoint[T]) String() string {
	return fmt.Sprint(f.value)
}
