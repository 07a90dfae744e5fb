package num

import (
	"encoding/binary"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Float is the kind of the built-in floating-point types.
//
// Division by zero is not guarded and produces an infinity or NaN.
// Equal compares bit patterns, so 0 and -0 differ while every NaN
// equals every other NaN. Cmp orders numerically, with 0 equal to -0
// and NaN above everything else.
type Float[T constraints.Float] struct{}

type (
	Float32 = Float[float32]
	Float64 = Float[float64]
)

var (
	_ Rooter[float32] = Float32{}
	_ Rooter[float64] = Float64{}
)

const canonicalNaN = 0x7FF8000000000001

func (Float[T]) Zero() T { return 0 }
func (Float[T]) One() T  { return 1 }

func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }
func (Float[T]) Div(a, b T) T { return a / b }
func (Float[T]) Neg(a T) T    { return -a }

func (Float[T]) Abs(a T) T {
	return T(math.Abs(float64(a)))
}

func (Float[T]) Sqrt(a T) T {
	return T(math.Sqrt(float64(a)))
}

func (Float[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}

	an, bn := a != a, b != b
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	default:
		return -1
	}
}

func (Float[T]) Equal(a, b T) bool {
	return floatBits(a) == floatBits(b)
}

func (Float[T]) Valid(a T) bool { return true }

func (Float[T]) Append(b []byte, a T) []byte {
	return binary.LittleEndian.AppendUint64(b, floatBits(a))
}

func (Float[T]) Format(a T) string {
	return strconv.FormatFloat(float64(a), 'g', -1, floatSize[T]())
}

// Near reports whether a and b are within tol of each other. It is
// not used by any tuple operation, which all compare exactly or
// against a tolerance band around zero, but is handy for callers
// checking float results.
func (Float[T]) Near(a, b, tol T) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), float64(tol))
}

func floatSize[T constraints.Float]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// floatBits returns the bit pattern of a widened to 64 bits, with
// every NaN mapped to the same pattern.
func floatBits[T constraints.Float](a T) uint64 {
	if a != a {
		return canonicalNaN
	}
	if floatSize[T]() == 32 {
		return uint64(math.Float32bits(float32(a)))
	}
	return math.Float64bits(float64(a))
}
