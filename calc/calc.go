// Package calc evaluates single arithmetic operations on scalars and vectors
// given as text, e.g. "add 3,4 1,2" or "div 1,0,0 0".
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/meghashyamc/bee/geometry"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of operands")
	ErrDimension        = errors.New("operand dimensions do not match")
	ErrOperand          = errors.New("invalid operand")
	ErrPrecision        = errors.New("unsupported precision")
)

var arities = map[string]int{
	"neg": 1,
	"add": 2,
	"sub": 2,
	"mul": 2,
	"div": 2,
	"cmp": 2,
}

// Operations lists the supported operation names.
func Operations() []string {
	return []string{"neg", "add", "sub", "mul", "div", "cmp"}
}

// Eval applies op to the operands at the given precision (32 or 64 bits) and
// returns the formatted result. Each operand is one to three comma separated
// numbers; the count decides whether it is a scalar, a 2D or a 3D vector.
func Eval(op string, precision int, operands []string) (string, error) {
	switch precision {
	case 32:
		return evaluate[float32](op, operands, precision)
	case 64:
		return evaluate[float64](op, operands, precision)
	}

	return "", fmt.Errorf("%w: %d (want 32 or 64)", ErrPrecision, precision)
}

func evaluate[T geometry.Precision](op string, operands []string, bitSize int) (string, error) {
	arity, ok := arities[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(operands) != arity {
		return "", fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, arity, len(operands))
	}

	args := make([]value[T], len(operands))
	for i, operand := range operands {
		v, err := parse[T](operand, bitSize)
		if err != nil {
			return "", err
		}
		args[i] = v
	}

	switch op {
	case "neg":
		return args[0].neg().String(), nil

	case "add", "sub":
		a, b := args[0], args[1]
		if a.dim != b.dim {
			return "", fmt.Errorf("%w: cannot %s %s and %s", ErrDimension, op, a.kind(), b.kind())
		}
		if op == "sub" {
			return a.sub(b).String(), nil
		}
		return a.add(b).String(), nil

	case "mul", "div":
		a, s := args[0], args[1]
		if s.dim != 1 {
			return "", fmt.Errorf("%w: %s needs a scalar right operand, got %s", ErrDimension, op, s.kind())
		}
		if op == "div" {
			return a.div(s.scalar).String(), nil
		}
		return a.scale(s.scalar).String(), nil

	default:
		a, b := args[0], args[1]
		if a.dim != b.dim {
			return "", fmt.Errorf("%w: cannot compare %s and %s", ErrDimension, a.kind(), b.kind())
		}
		if a.dim == 1 {
			return a.scalar.Compare(b.scalar).String(), nil
		}
		if a.equal(b) {
			return "equal", nil
		}
		return "not equal", nil
	}
}

// value is a scalar, 2D or 3D vector, selected by dim.
type value[T geometry.Precision] struct {
	dim    int
	scalar geometry.FloatingPoint[T]
	vec2   geometry.Vector2[T]
	vec3   geometry.Vector3[T]
}

func parse[T geometry.Precision](operand string, bitSize int) (value[T], error) {
	fields := strings.Split(operand, ",")
	if len(fields) > 3 {
		return value[T]{}, fmt.Errorf("%w %q: at most 3 components", ErrOperand, operand)
	}

	components := make([]geometry.FloatingPoint[T], len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), bitSize)
		if err != nil {
			return value[T]{}, fmt.Errorf("%w %q: %w", ErrOperand, operand, err)
		}
		components[i] = geometry.NewFloatingPoint(T(f))
	}

	v := value[T]{dim: len(components)}
	switch v.dim {
	case 1:
		v.scalar = components[0]
	case 2:
		v.vec2 = geometry.NewVector2(components[0], components[1])
	case 3:
		v.vec3 = geometry.NewVector3(components[0], components[1], components[2])
	}
	return v, nil
}

func (v value[T]) kind() string {
	switch v.dim {
	case 1:
		return "scalar"
	case 2:
		return "vec2"
	default:
		return "vec3"
	}
}

func (v value[T]) neg() value[T] {
	return value[T]{dim: v.dim, scalar: v.scalar.Neg(), vec2: v.vec2.Neg(), vec3: v.vec3.Neg()}
}

func (v value[T]) add(other value[T]) value[T] {
	return value[T]{
		dim:    v.dim,
		scalar: v.scalar.Add(other.scalar),
		vec2:   v.vec2.Add(other.vec2),
		vec3:   v.vec3.Add(other.vec3),
	}
}

func (v value[T]) sub(other value[T]) value[T] {
	return value[T]{
		dim:    v.dim,
		scalar: v.scalar.Sub(other.scalar),
		vec2:   v.vec2.Sub(other.vec2),
		vec3:   v.vec3.Sub(other.vec3),
	}
}

func (v value[T]) scale(s geometry.FloatingPoint[T]) value[T] {
	return value[T]{dim: v.dim, scalar: v.scalar.Mul(s), vec2: v.vec2.Scale(s), vec3: v.vec3.Scale(s)}
}

func (v value[T]) div(s geometry.FloatingPoint[T]) value[T] {
	return value[T]{dim: v.dim, scalar: v.scalar.Div(s), vec2: v.vec2.Div(s), vec3: v.vec3.Div(s)}
}

func (v value[T]) equal(other value[T]) bool {
	switch v.dim {
	case 1:
		return v.scalar.Equal(other.scalar)
	case 2:
		return v.vec2.Equal(other.vec2)
	default:
		return v.vec3.Equal(other.vec3)
	}
}

func (v value[T]) String() string {
	switch v.dim {
	case 1:
		return v.scalar.String()
	case 2:
		return v.vec2.String()
	default:
		return v.vec3.String()
	}
}
