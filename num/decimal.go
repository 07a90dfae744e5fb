package num

import (
	"github.com/bassosimone/runtimex"
	"github.com/cockroachdb/apd/v3"

	"deedles.dev/tuple"
)

// DecimalContext supplies the precision and rounding that a [Decimal]
// kind works in. Implementations are zero-size types so that the
// context is part of the kind's type:
//
//	type Money struct{}
//
//	func (Money) Context() *apd.Context { return moneyContext }
//
//	type MoneyVec = vec2.Vec[*apd.Decimal, num.Decimal[Money]]
//
// The returned context must not be modified.
type DecimalContext interface {
	Context() *apd.Context
}

// Decimal contexts matching the IEEE 754 decimal32, decimal64 and
// decimal128 precisions, all rounding half to even.
type (
	Ctx32  struct{}
	Ctx64  struct{}
	Ctx128 struct{}
)

var (
	ctx32  = newDecimalContext(7)
	ctx64  = newDecimalContext(16)
	ctx128 = newDecimalContext(34)
)

func newDecimalContext(precision uint32) *apd.Context {
	runtimex.Assert(precision > 0)
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = apd.RoundHalfEven
	return c
}

func (Ctx32) Context() *apd.Context  { return ctx32 }
func (Ctx64) Context() *apd.Context  { return ctx64 }
func (Ctx128) Context() *apd.Context { return ctx128 }

// Decimal is the kind of arbitrary-precision decimals computed in the
// context C. A nil *apd.Decimal, an infinity and a NaN are not valid
// components.
//
// Every operation, including addition, rounds to the precision of C.
// Domain errors such as division by zero or the square root of a
// negative number panic with an error that wraps both
// [tuple.ErrArithmetic] and the error reported by apd.
//
// Equal compares numerically, so 2.0 equals 2.00.
type Decimal[C DecimalContext] struct{}

type (
	Decimal32  = Decimal[Ctx32]
	Decimal64  = Decimal[Ctx64]
	Decimal128 = Decimal[Ctx128]
)

var (
	_ Rooter[*apd.Decimal] = Decimal32{}
	_ Rooter[*apd.Decimal] = Decimal64{}
	_ Rooter[*apd.Decimal] = Decimal128{}
)

// MustDecimal parses s as a decimal. It panics if s is not a valid
// decimal.
func MustDecimal(s string) *apd.Decimal {
	return runtimex.PanicOnError1(parseDecimal(s))
}

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	return d, err
}

func (Decimal[C]) context() *apd.Context {
	var c C
	return c.Context()
}

func (Decimal[C]) Zero() *apd.Decimal { return apd.New(0, 0) }
func (Decimal[C]) One() *apd.Decimal  { return apd.New(1, 0) }

func (k Decimal[C]) Add(a, b *apd.Decimal) *apd.Decimal {
	return k.binary("num.Decimal.Add", a, b, k.context().Add)
}

func (k Decimal[C]) Sub(a, b *apd.Decimal) *apd.Decimal {
	return k.binary("num.Decimal.Sub", a, b, k.context().Sub)
}

func (k Decimal[C]) Mul(a, b *apd.Decimal) *apd.Decimal {
	return k.binary("num.Decimal.Mul", a, b, k.context().Mul)
}

func (k Decimal[C]) Div(a, b *apd.Decimal) *apd.Decimal {
	return k.binary("num.Decimal.Div", a, b, k.context().Quo)
}

func (k Decimal[C]) Sqrt(a *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := k.context().Sqrt(d, a); err != nil {
		tuple.Arithmetic("num.Decimal.Sqrt", err)
	}
	return d
}

func (Decimal[C]) binary(op string, a, b *apd.Decimal, f func(d, x, y *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := f(d, a, b); err != nil {
		tuple.Arithmetic(op, err)
	}
	return d
}

func (Decimal[C]) Neg(a *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Neg(a) }
func (Decimal[C]) Abs(a *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Abs(a) }

func (Decimal[C]) Cmp(a, b *apd.Decimal) int    { return a.Cmp(b) }
func (Decimal[C]) Equal(a, b *apd.Decimal) bool { return a.Cmp(b) == 0 }
func (Decimal[C]) Format(a *apd.Decimal) string { return a.String() }

func (Decimal[C]) Valid(a *apd.Decimal) bool {
	return (a != nil) && (a.Form == apd.Finite)
}

func (Decimal[C]) Append(b []byte, a *apd.Decimal) []byte {
	if a.IsZero() {
		return append(b, '0')
	}
	var r apd.Decimal
	r.Reduce(a)
	return append(b, r.String()...)
}
