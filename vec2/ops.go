package vec2

import "deedles.dev/tuple/num"

// Vector is a tuple that can make new tuples of its own type. Every
// operation that returns a new instance goes through New, so the
// result has the same concrete type as the operand.
type Vector[T, V any] interface {
	Reader[T]
	New(x, y T) V
}

// MutableVector is a Vector that can also be written.
type MutableVector[T, V any] interface {
	Vector[T, V]
	Writer[T]
}

// Ops is the arithmetic of 2-component vectors of kind K. It holds no
// state and works over any vector type V, only reading and writing
// its operands through their accessors.
//
// Each operation has two spellings:
//
//   - Those ending in N return a new V made by the operand's New
//     method. The operand is not modified.
//   - Those ending in R write the result into res and return res. The
//     operand is not modified unless it is res itself, which is
//     allowed: every input is read before res is written. The
//     returned Writer is res itself, so callers that need its
//     concrete type keep their own reference to res, or use the
//     package functions such as [NormalizeR] that are generic over
//     it.
//
// Binary operations take their second operand in three forms: a
// tuple, a scalar applied to every component, or the components
// themselves. The first two unpack their argument and defer to the
// third.
//
// Operations whose result is undefined for a zero vector, such as
// ReciprocalN, do not check for one. Float kinds produce infinities
// or NaNs, and other kinds panic the way their division does. The
// Safe and SafeTol spellings instead return zero when the vector is
// exactly zero or within a tolerance of it.
type Ops[T any, K num.Kind[T], V Vector[T, V]] struct{}

// AddN returns the sum of v and t.
func (o Ops[T, K, V]) AddN(v V, t Reader[T]) V {
	checkReader("vec2.Ops.AddN", t)
	return o.AddXYN(v, t.X(), t.Y())
}

func (o Ops[T, K, V]) AddScalarN(v V, s T) V {
	return o.AddXYN(v, s, s)
}

// AddXYN returns the sum of v and (x, y).
func (Ops[T, K, V]) AddXYN(v V, x, y T) V {
	checkReader("vec2.Ops.AddXYN", v)
	var k K
	return v.New(k.Add(v.X(), x), k.Add(v.Y(), y))
}

// AddR stores the sum of v and t in res.
func (o Ops[T, K, V]) AddR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec2.Ops.AddR", t)
	return o.AddXYR(res, v, t.X(), t.Y())
}

func (o Ops[T, K, V]) AddScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.AddXYR(res, v, s, s)
}

func (Ops[T, K, V]) AddXYR(res Writer[T], v Reader[T], x, y T) Writer[T] {
	checkReader("vec2.Ops.AddXYR", v)
	checkWriter("vec2.Ops.AddXYR", res)
	var k K
	return SetXY[T](res, k.Add(v.X(), x), k.Add(v.Y(), y))
}

// SubN returns the difference of v and t.
func (o Ops[T, K, V]) SubN(v V, t Reader[T]) V {
	checkReader("vec2.Ops.SubN", t)
	return o.SubXYN(v, t.X(), t.Y())
}

func (o Ops[T, K, V]) SubScalarN(v V, s T) V {
	return o.SubXYN(v, s, s)
}

// SubXYN returns the difference of v and (x, y).
func (Ops[T, K, V]) SubXYN(v V, x, y T) V {
	checkReader("vec2.Ops.SubXYN", v)
	var k K
	return v.New(k.Sub(v.X(), x), k.Sub(v.Y(), y))
}

// SubR stores the difference of v and t in res.
func (o Ops[T, K, V]) SubR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec2.Ops.SubR", t)
	return o.SubXYR(res, v, t.X(), t.Y())
}

func (o Ops[T, K, V]) SubScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.SubXYR(res, v, s, s)
}

func (Ops[T, K, V]) SubXYR(res Writer[T], v Reader[T], x, y T) Writer[T] {
	checkReader("vec2.Ops.SubXYR", v)
	checkWriter("vec2.Ops.SubXYR", res)
	var k K
	return SetXY[T](res, k.Sub(v.X(), x), k.Sub(v.Y(), y))
}

// MulN returns the component-wise product of v and t.
func (o Ops[T, K, V]) MulN(v V, t Reader[T]) V {
	checkReader("vec2.Ops.MulN", t)
	return o.MulXYN(v, t.X(), t.Y())
}

func (o Ops[T, K, V]) MulScalarN(v V, s T) V {
	return o.MulXYN(v, s, s)
}

// MulXYN returns the component-wise product of v and (x, y).
func (Ops[T, K, V]) MulXYN(v V, x, y T) V {
	checkReader("vec2.Ops.MulXYN", v)
	var k K
	return v.New(k.Mul(v.X(), x), k.Mul(v.Y(), y))
}

// MulR stores the component-wise product of v and t in res.
func (o Ops[T, K, V]) MulR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec2.Ops.MulR", t)
	return o.MulXYR(res, v, t.X(), t.Y())
}

func (o Ops[T, K, V]) MulScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.MulXYR(res, v, s, s)
}

func (Ops[T, K, V]) MulXYR(res Writer[T], v Reader[T], x, y T) Writer[T] {
	checkReader("vec2.Ops.MulXYR", v)
	checkWriter("vec2.Ops.MulXYR", res)
	var k K
	return SetXY[T](res, k.Mul(v.X(), x), k.Mul(v.Y(), y))
}

// DivN returns the component-wise quotient of v and t.
func (o Ops[T, K, V]) DivN(v V, t Reader[T]) V {
	checkReader("vec2.Ops.DivN", t)
	return o.DivXYN(v, t.X(), t.Y())
}

func (o Ops[T, K, V]) DivScalarN(v V, s T) V {
	return o.DivXYN(v, s, s)
}

// DivXYN returns the component-wise quotient of v and (x, y).
func (Ops[T, K, V]) DivXYN(v V, x, y T) V {
	checkReader("vec2.Ops.DivXYN", v)
	var k K
	return v.New(k.Div(v.X(), x), k.Div(v.Y(), y))
}

// DivR stores the component-wise quotient of v and t in res.
func (o Ops[T, K, V]) DivR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec2.Ops.DivR", t)
	return o.DivXYR(res, v, t.X(), t.Y())
}

func (o Ops[T, K, V]) DivScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.DivXYR(res, v, s, s)
}

func (Ops[T, K, V]) DivXYR(res Writer[T], v Reader[T], x, y T) Writer[T] {
	checkReader("vec2.Ops.DivXYR", v)
	checkWriter("vec2.Ops.DivXYR", res)
	var k K
	return SetXY[T](res, k.Div(v.X(), x), k.Div(v.Y(), y))
}

// Dot returns the dot product of v and t.
func (o Ops[T, K, V]) Dot(v, t Reader[T]) T {
	checkReader("vec2.Ops.Dot", t)
	return o.DotXY(v, t.X(), t.Y())
}

func (o Ops[T, K, V]) DotScalar(v Reader[T], s T) T {
	return o.DotXY(v, s, s)
}

func (Ops[T, K, V]) DotXY(v Reader[T], x, y T) T {
	checkReader("vec2.Ops.DotXY", v)
	var k K
	return k.Add(k.Mul(v.X(), x), k.Mul(v.Y(), y))
}

// SquaredLength returns the dot product of v with itself.
func (o Ops[T, K, V]) SquaredLength(v Reader[T]) T {
	checkReader("vec2.Ops.SquaredLength", v)
	return o.DotXY(v, v.X(), v.Y())
}

// SafeSquaredLength is SquaredLength, except that it returns zero
// without computing anything if v is exactly zero.
func (o Ops[T, K, V]) SafeSquaredLength(v Reader[T]) T {
	if o.IsExactlyZero(v) {
		var k K
		return k.Zero()
	}
	return o.SquaredLength(v)
}

// SafeTolSquaredLength is SquaredLength, except that it returns zero
// if every component of v is within tol of zero.
func (o Ops[T, K, V]) SafeTolSquaredLength(v Reader[T], tol T) T {
	if o.IsZero(v, tol) {
		var k K
		return k.Zero()
	}
	return o.SquaredLength(v)
}

func (Ops[T, K, V]) IsExactlyZero(v Reader[T]) bool {
	return IsExactlyZero[T, K](v)
}

func (Ops[T, K, V]) IsZero(v Reader[T], tol T) bool {
	return IsZero[T, K](v, tol)
}

// InvertN returns the negation of v.
func (Ops[T, K, V]) InvertN(v V) V {
	checkReader("vec2.Ops.InvertN", v)
	var k K
	return v.New(k.Neg(v.X()), k.Neg(v.Y()))
}

// InvertR stores the negation of v in res.
func (Ops[T, K, V]) InvertR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec2.Ops.InvertR", v)
	checkWriter("vec2.Ops.InvertR", res)
	var k K
	return SetXY[T](res, k.Neg(v.X()), k.Neg(v.Y()))
}

// ReciprocalN returns a vector holding one divided by each component
// of v. A zero component is not checked for.
func (Ops[T, K, V]) ReciprocalN(v V) V {
	checkReader("vec2.Ops.ReciprocalN", v)
	var k K
	one := k.One()
	return v.New(k.Div(one, v.X()), k.Div(one, v.Y()))
}

// ReciprocalR stores one divided by each component of v in res.
func (Ops[T, K, V]) ReciprocalR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec2.Ops.ReciprocalR", v)
	checkWriter("vec2.Ops.ReciprocalR", res)
	var k K
	one := k.One()
	return SetXY[T](res, k.Div(one, v.X()), k.Div(one, v.Y()))
}

// SafeReciprocalN is ReciprocalN, except that it returns a zero vector
// if v is exactly zero.
func (o Ops[T, K, V]) SafeReciprocalN(v V) V {
	if o.IsExactlyZero(v) {
		return o.zeroN(v)
	}
	return o.ReciprocalN(v)
}

func (o Ops[T, K, V]) SafeReciprocalR(res Writer[T], v Reader[T]) Writer[T] {
	if o.IsExactlyZero(v) {
		return o.zeroR(res)
	}
	return o.ReciprocalR(res, v)
}

// SafeTolReciprocalN is ReciprocalN, except that it returns a zero
// vector if every component of v is within tol of zero.
func (o Ops[T, K, V]) SafeTolReciprocalN(v V, tol T) V {
	if o.IsZero(v, tol) {
		return o.zeroN(v)
	}
	return o.ReciprocalN(v)
}

func (o Ops[T, K, V]) SafeTolReciprocalR(res Writer[T], v Reader[T], tol T) Writer[T] {
	if o.IsZero(v, tol) {
		return o.zeroR(res)
	}
	return o.ReciprocalR(res, v)
}

func (Ops[T, K, V]) zeroN(v V) V {
	checkReader("vec2.Ops.zeroN", v)
	var k K
	return v.New(k.Zero(), k.Zero())
}

func (Ops[T, K, V]) zeroR(res Writer[T]) Writer[T] {
	checkWriter("vec2.Ops.zeroR", res)
	var k K
	return SetXY[T](res, k.Zero(), k.Zero())
}
