package geometry

import "fmt"

// Vector3 is a representation of 3D vectors and points.
type Vector3[T Precision] struct {
	x FloatingPoint[T]
	y FloatingPoint[T]
	z FloatingPoint[T]
}

func NewVector3[T Precision](x, y, z FloatingPoint[T]) Vector3[T] {
	return Vector3[T]{x: x, y: y, z: z}
}

// ZeroVector3 is shorthand for NewVector3(0, 0, 0).
func ZeroVector3[T Precision]() Vector3[T] {
	zero := NewFloatingPoint(T(0))
	return NewVector3(zero, zero, zero)
}

func (v Vector3[T]) X() FloatingPoint[T] { return v.x }
func (v Vector3[T]) Y() FloatingPoint[T] { return v.y }
func (v Vector3[T]) Z() FloatingPoint[T] { return v.z }

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{v.x.Neg(), v.y.Neg(), v.z.Neg()}
}

func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.x.Add(other.x), v.y.Add(other.y), v.z.Add(other.z)}
}

func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.x.Sub(other.x), v.y.Sub(other.y), v.z.Sub(other.z)}
}

// Scale multiplies each component by factor.
func (v Vector3[T]) Scale(factor FloatingPoint[T]) Vector3[T] {
	return Vector3[T]{v.x.Mul(factor), v.y.Mul(factor), v.z.Mul(factor)}
}

// Div divides each component by divisor.
func (v Vector3[T]) Div(divisor FloatingPoint[T]) Vector3[T] {
	return Vector3[T]{v.x.Div(divisor), v.y.Div(divisor), v.z.Div(divisor)}
}

// Equal reports exact componentwise equality.
func (v Vector3[T]) Equal(other Vector3[T]) bool {
	return v.x.Equal(other.x) && v.y.Equal(other.y) && v.z.Equal(other.z)
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.x, v.y, v.z)
}
