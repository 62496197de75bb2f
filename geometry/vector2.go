package geometry

import "fmt"

// Vector2 is a representation of 2D vectors and points.
type Vector2[T Precision] struct {
	x FloatingPoint[T]
	y FloatingPoint[T]
}

func NewVector2[T Precision](x, y FloatingPoint[T]) Vector2[T] {
	return Vector2[T]{x: x, y: y}
}

// ZeroVector2 is shorthand for NewVector2(0, 0).
func ZeroVector2[T Precision]() Vector2[T] {
	return NewVector2(NewFloatingPoint(T(0)), NewFloatingPoint(T(0)))
}

func (v Vector2[T]) X() FloatingPoint[T] { return v.x }
func (v Vector2[T]) Y() FloatingPoint[T] { return v.y }

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{v.x.Neg(), v.y.Neg()}
}

func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.x.Add(other.x), v.y.Add(other.y)}
}

func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.x.Sub(other.x), v.y.Sub(other.y)}
}

// Scale multiplies each component by factor.
func (v Vector2[T]) Scale(factor FloatingPoint[T]) Vector2[T] {
	return Vector2[T]{v.x.Mul(factor), v.y.Mul(factor)}
}

// Div divides each component by divisor. A zero divisor follows FloatingPoint.Div.
func (v Vector2[T]) Div(divisor FloatingPoint[T]) Vector2[T] {
	return Vector2[T]{v.x.Div(divisor), v.y.Div(divisor)}
}

// Equal reports exact componentwise equality. A NaN component never compares equal.
func (v Vector2[T]) Equal(other Vector2[T]) bool {
	return v.x.Equal(other.x) && v.y.Equal(other.y)
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%s, %s)", v.x, v.y)
}
