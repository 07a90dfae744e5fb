package num

import (
	"cmp"
	"encoding/binary"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Int is the kind of the built-in signed integer types. Division
// truncates toward zero and panics if the divisor is zero. Overflow
// wraps, as it does for the underlying type.
type Int[T constraints.Signed] struct{}

type (
	Int32 = Int[int32]
	Int64 = Int[int64]
)

var (
	_ Kind[int32] = Int32{}
	_ Kind[int64] = Int64{}
)

func (Int[T]) Zero() T { return 0 }
func (Int[T]) One() T  { return 1 }

func (Int[T]) Add(a, b T) T { return a + b }
func (Int[T]) Sub(a, b T) T { return a - b }
func (Int[T]) Mul(a, b T) T { return a * b }
func (Int[T]) Div(a, b T) T { return a / b }
func (Int[T]) Neg(a T) T    { return -a }

func (Int[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func (Int[T]) Cmp(a, b T) int    { return cmp.Compare(a, b) }
func (Int[T]) Equal(a, b T) bool { return a == b }
func (Int[T]) Valid(a T) bool    { return true }
func (Int[T]) Format(a T) string { return strconv.FormatInt(int64(a), 10) }

func (Int[T]) Append(b []byte, a T) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(int64(a)))
}
