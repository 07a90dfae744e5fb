package num

import (
	"cmp"
	"encoding/binary"
	"errors"
	"math"
	"math/bits"

	"golang.org/x/image/math/fixed"

	"deedles.dev/tuple"
)

// Fixed26_6 is the kind of 26.6 fixed-point numbers. Multiplication
// rounds the way [fixed.Int26_6.Mul] does, while division and square
// roots truncate. Division by zero panics natively; a quotient that
// does not fit panics with an error wrapping [tuple.ErrArithmetic].
type Fixed26_6 struct{}

// Fixed52_12 is the kind of 52.12 fixed-point numbers, with the same
// rounding rules as [Fixed26_6].
type Fixed52_12 struct{}

var errFixedOverflow = errors.New("fixed-point overflow")

var (
	_ Rooter[fixed.Int26_6]  = Fixed26_6{}
	_ Rooter[fixed.Int52_12] = Fixed52_12{}
)

func (Fixed26_6) Zero() fixed.Int26_6 { return 0 }
func (Fixed26_6) One() fixed.Int26_6  { return fixed.I(1) }

func (Fixed26_6) Add(a, b fixed.Int26_6) fixed.Int26_6 { return a + b }
func (Fixed26_6) Sub(a, b fixed.Int26_6) fixed.Int26_6 { return a - b }
func (Fixed26_6) Mul(a, b fixed.Int26_6) fixed.Int26_6 { return a.Mul(b) }
func (Fixed26_6) Neg(a fixed.Int26_6) fixed.Int26_6    { return -a }

func (Fixed26_6) Div(a, b fixed.Int26_6) fixed.Int26_6 {
	q := (int64(a) << 6) / int64(b)
	if (q < math.MinInt32) || (q > math.MaxInt32) {
		tuple.Arithmetic("num.Fixed26_6.Div", errFixedOverflow)
	}
	return fixed.Int26_6(q)
}

func (Fixed26_6) Abs(a fixed.Int26_6) fixed.Int26_6 {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt returns the floor of the square root of a. The radicand is
// scaled into a float64 without loss, so the result is exact up to
// truncation.
func (Fixed26_6) Sqrt(a fixed.Int26_6) fixed.Int26_6 {
	return fixed.Int26_6(math.Sqrt(float64(int64(a) << 6)))
}

func (Fixed26_6) Cmp(a, b fixed.Int26_6) int    { return cmp.Compare(a, b) }
func (Fixed26_6) Equal(a, b fixed.Int26_6) bool { return a == b }
func (Fixed26_6) Valid(a fixed.Int26_6) bool    { return true }
func (Fixed26_6) Format(a fixed.Int26_6) string { return a.String() }

func (Fixed26_6) Append(b []byte, a fixed.Int26_6) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(a))
}

func (Fixed52_12) Zero() fixed.Int52_12 { return 0 }
func (Fixed52_12) One() fixed.Int52_12  { return 1 << 12 }

func (Fixed52_12) Add(a, b fixed.Int52_12) fixed.Int52_12 { return a + b }
func (Fixed52_12) Sub(a, b fixed.Int52_12) fixed.Int52_12 { return a - b }
func (Fixed52_12) Mul(a, b fixed.Int52_12) fixed.Int52_12 { return a.Mul(b) }
func (Fixed52_12) Neg(a fixed.Int52_12) fixed.Int52_12    { return -a }

// Div divides with a 128-bit intermediate so that the scaled dividend
// can not overflow. It panics if b is zero or the quotient does not
// fit.
func (Fixed52_12) Div(a, b fixed.Int52_12) fixed.Int52_12 {
	neg := (a < 0) != (b < 0)
	ua, ub := abs64(int64(a)), abs64(int64(b))
	if (ub != 0) && (ua>>52 >= ub) {
		tuple.Arithmetic("num.Fixed52_12.Div", errFixedOverflow)
	}
	q, _ := bits.Div64(ua>>52, ua<<12, ub)
	if q > math.MaxInt64 {
		tuple.Arithmetic("num.Fixed52_12.Div", errFixedOverflow)
	}
	if neg {
		return -fixed.Int52_12(q)
	}
	return fixed.Int52_12(q)
}

func (Fixed52_12) Abs(a fixed.Int52_12) fixed.Int52_12 {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt returns the square root of a, truncated. Above 2^41 the
// radicand no longer fits a float64 exactly and the result may be off
// in the last place.
func (Fixed52_12) Sqrt(a fixed.Int52_12) fixed.Int52_12 {
	return fixed.Int52_12(math.Sqrt(float64(a) * (1 << 12)))
}

func (Fixed52_12) Cmp(a, b fixed.Int52_12) int    { return cmp.Compare(a, b) }
func (Fixed52_12) Equal(a, b fixed.Int52_12) bool { return a == b }
func (Fixed52_12) Valid(a fixed.Int52_12) bool    { return true }
func (Fixed52_12) Format(a fixed.Int52_12) string { return a.String() }

func (Fixed52_12) Append(b []byte, a fixed.Int52_12) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(a))
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
