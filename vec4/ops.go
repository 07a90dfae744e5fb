package vec4

import "deedles.dev/tuple/num"

// Vector is a tuple that can make new tuples of its own type. Every
// operation that returns a new instance goes through New, so the
// result has the same concrete type as the operand.
type Vector[T, V any] interface {
	Reader[T]
	New(x, y, z, w T) V
}

// MutableVector is a Vector that can also be written.
type MutableVector[T, V any] interface {
	Vector[T, V]
	Writer[T]
}

// Ops is the arithmetic of 4-component vectors of kind K. It holds no
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
	checkReader("vec4.Ops.AddN", t)
	return o.AddXYZWN(v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) AddScalarN(v V, s T) V {
	return o.AddXYZWN(v, s, s, s, s)
}

// AddXYZWN returns the sum of v and (x, y, z, w).
func (Ops[T, K, V]) AddXYZWN(v V, x, y, z, w T) V {
	checkReader("vec4.Ops.AddXYZWN", v)
	var k K
	return v.New(k.Add(v.X(), x), k.Add(v.Y(), y), k.Add(v.Z(), z), k.Add(v.W(), w))
}

// AddR stores the sum of v and t in res.
func (o Ops[T, K, V]) AddR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec4.Ops.AddR", t)
	return o.AddXYZWR(res, v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) AddScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.AddXYZWR(res, v, s, s, s, s)
}

func (Ops[T, K, V]) AddXYZWR(res Writer[T], v Reader[T], x, y, z, w T) Writer[T] {
	checkReader("vec4.Ops.AddXYZWR", v)
	checkWriter("vec4.Ops.AddXYZWR", res)
	var k K
	return SetXYZW[T](res, k.Add(v.X(), x), k.Add(v.Y(), y), k.Add(v.Z(), z), k.Add(v.W(), w))
}

// SubN returns the difference of v and t.
func (o Ops[T, K, V]) SubN(v V, t Reader[T]) V {
	checkReader("vec4.Ops.SubN", t)
	return o.SubXYZWN(v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) SubScalarN(v V, s T) V {
	return o.SubXYZWN(v, s, s, s, s)
}

// SubXYZWN returns the difference of v and (x, y, z, w).
func (Ops[T, K, V]) SubXYZWN(v V, x, y, z, w T) V {
	checkReader("vec4.Ops.SubXYZWN", v)
	var k K
	return v.New(k.Sub(v.X(), x), k.Sub(v.Y(), y), k.Sub(v.Z(), z), k.Sub(v.W(), w))
}

// SubR stores the difference of v and t in res.
func (o Ops[T, K, V]) SubR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec4.Ops.SubR", t)
	return o.SubXYZWR(res, v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) SubScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.SubXYZWR(res, v, s, s, s, s)
}

func (Ops[T, K, V]) SubXYZWR(res Writer[T], v Reader[T], x, y, z, w T) Writer[T] {
	checkReader("vec4.Ops.SubXYZWR", v)
	checkWriter("vec4.Ops.SubXYZWR", res)
	var k K
	return SetXYZW[T](res, k.Sub(v.X(), x), k.Sub(v.Y(), y), k.Sub(v.Z(), z), k.Sub(v.W(), w))
}

// MulN returns the component-wise product of v and t.
func (o Ops[T, K, V]) MulN(v V, t Reader[T]) V {
	checkReader("vec4.Ops.MulN", t)
	return o.MulXYZWN(v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) MulScalarN(v V, s T) V {
	return o.MulXYZWN(v, s, s, s, s)
}

// MulXYZWN returns the component-wise product of v and (x, y, z, w).
func (Ops[T, K, V]) MulXYZWN(v V, x, y, z, w T) V {
	checkReader("vec4.Ops.MulXYZWN", v)
	var k K
	return v.New(k.Mul(v.X(), x), k.Mul(v.Y(), y), k.Mul(v.Z(), z), k.Mul(v.W(), w))
}

// MulR stores the component-wise product of v and t in res.
func (o Ops[T, K, V]) MulR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec4.Ops.MulR", t)
	return o.MulXYZWR(res, v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) MulScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.MulXYZWR(res, v, s, s, s, s)
}

func (Ops[T, K, V]) MulXYZWR(res Writer[T], v Reader[T], x, y, z, w T) Writer[T] {
	checkReader("vec4.Ops.MulXYZWR", v)
	checkWriter("vec4.Ops.MulXYZWR", res)
	var k K
	return SetXYZW[T](res, k.Mul(v.X(), x), k.Mul(v.Y(), y), k.Mul(v.Z(), z), k.Mul(v.W(), w))
}

// DivN returns the component-wise quotient of v and t.
func (o Ops[T, K, V]) DivN(v V, t Reader[T]) V {
	checkReader("vec4.Ops.DivN", t)
	return o.DivXYZWN(v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) DivScalarN(v V, s T) V {
	return o.DivXYZWN(v, s, s, s, s)
}

// DivXYZWN returns the component-wise quotient of v and (x, y, z, w).
func (Ops[T, K, V]) DivXYZWN(v V, x, y, z, w T) V {
	checkReader("vec4.Ops.DivXYZWN", v)
	var k K
	return v.New(k.Div(v.X(), x), k.Div(v.Y(), y), k.Div(v.Z(), z), k.Div(v.W(), w))
}

// DivR stores the component-wise quotient of v and t in res.
func (o Ops[T, K, V]) DivR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec4.Ops.DivR", t)
	return o.DivXYZWR(res, v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) DivScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.DivXYZWR(res, v, s, s, s, s)
}

func (Ops[T, K, V]) DivXYZWR(res Writer[T], v Reader[T], x, y, z, w T) Writer[T] {
	checkReader("vec4.Ops.DivXYZWR", v)
	checkWriter("vec4.Ops.DivXYZWR", res)
	var k K
	return SetXYZW[T](res, k.Div(v.X(), x), k.Div(v.Y(), y), k.Div(v.Z(), z), k.Div(v.W(), w))
}

// Dot returns the dot product of v and t.
func (o Ops[T, K, V]) Dot(v, t Reader[T]) T {
	checkReader("vec4.Ops.Dot", t)
	return o.DotXYZW(v, t.X(), t.Y(), t.Z(), t.W())
}

func (o Ops[T, K, V]) DotScalar(v Reader[T], s T) T {
	return o.DotXYZW(v, s, s, s, s)
}

func (Ops[T, K, V]) DotXYZW(v Reader[T], x, y, z, w T) T {
	checkReader("vec4.Ops.DotXYZW", v)
	var k K
	return k.Add(k.Add(k.Add(k.Mul(v.X(), x), k.Mul(v.Y(), y)), k.Mul(v.Z(), z)), k.Mul(v.W(), w))
}

// SquaredLength returns the dot product of v with itself.
func (o Ops[T, K, V]) SquaredLength(v Reader[T]) T {
	checkReader("vec4.Ops.SquaredLength", v)
	return o.DotXYZW(v, v.X(), v.Y(), v.Z(), v.W())
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
	checkReader("vec4.Ops.InvertN", v)
	var k K
	return v.New(k.Neg(v.X()), k.Neg(v.Y()), k.Neg(v.Z()), k.Neg(v.W()))
}

// InvertR stores the negation of v in res.
func (Ops[T, K, V]) InvertR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec4.Ops.InvertR", v)
	checkWriter("vec4.Ops.InvertR", res)
	var k K
	return SetXYZW[T](res, k.Neg(v.X()), k.Neg(v.Y()), k.Neg(v.Z()), k.Neg(v.W()))
}

// ReciprocalN returns a vector holding one divided by each component
// of v. A zero component is not checked for.
func (Ops[T, K, V]) ReciprocalN(v V) V {
	checkReader("vec4.Ops.ReciprocalN", v)
	var k K
	one := k.One()
	return v.New(k.Div(one, v.X()), k.Div(one, v.Y()), k.Div(one, v.Z()), k.Div(one, v.W()))
}

// ReciprocalR stores one divided by each component of v in res.
func (Ops[T, K, V]) ReciprocalR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec4.Ops.ReciprocalR", v)
	checkWriter("vec4.Ops.ReciprocalR", res)
	var k K
	one := k.One()
	return SetXYZW[T](res, k.Div(one, v.X()), k.Div(one, v.Y()), k.Div(one, v.Z()), k.Div(one, v.W()))
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
	checkReader("vec4.Ops.zeroN", v)
	var k K
	return v.New(k.Zero(), k.Zero(), k.Zero(), k.Zero())
}

func (Ops[T, K, V]) zeroR(res Writer[T]) Writer[T] {
	checkWriter("vec4.Ops.zeroR", res)
	var k K
	return SetXYZW[T](res, k.Zero(), k.Zero(), k.Zero(), k.Zero())
}
