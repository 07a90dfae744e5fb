package vec3

import "deedles.dev/tuple/num"

// Vector is a tuple that can make new tuples of its own type. Every
// operation that returns a new instance goes through New, so the
// result has the same concrete type as the operand.
type Vector[T, V any] interface {
	Reader[T]
	New(x, y, z T) V
}

// MutableVector is a Vector that can also be written.
type MutableVector[T, V any] interface {
	Vector[T, V]
	Writer[T]
}

// Ops is the arithmetic of 3-component vectors of kind K. It holds no
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
	checkReader("vec3.Ops.AddN", t)
	return o.AddXYZN(v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) AddScalarN(v V, s T) V {
	return o.AddXYZN(v, s, s, s)
}

// AddXYZN returns the sum of v and (x, y, z).
func (Ops[T, K, V]) AddXYZN(v V, x, y, z T) V {
	checkReader("vec3.Ops.AddXYZN", v)
	var k K
	return v.New(k.Add(v.X(), x), k.Add(v.Y(), y), k.Add(v.Z(), z))
}

// AddR stores the sum of v and t in res.
func (o Ops[T, K, V]) AddR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec3.Ops.AddR", t)
	return o.AddXYZR(res, v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) AddScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.AddXYZR(res, v, s, s, s)
}

func (Ops[T, K, V]) AddXYZR(res Writer[T], v Reader[T], x, y, z T) Writer[T] {
	checkReader("vec3.Ops.AddXYZR", v)
	checkWriter("vec3.Ops.AddXYZR", res)
	var k K
	return SetXYZ[T](res, k.Add(v.X(), x), k.Add(v.Y(), y), k.Add(v.Z(), z))
}

// SubN returns the difference of v and t.
func (o Ops[T, K, V]) SubN(v V, t Reader[T]) V {
	checkReader("vec3.Ops.SubN", t)
	return o.SubXYZN(v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) SubScalarN(v V, s T) V {
	return o.SubXYZN(v, s, s, s)
}

// SubXYZN returns the difference of v and (x, y, z).
func (Ops[T, K, V]) SubXYZN(v V, x, y, z T) V {
	checkReader("vec3.Ops.SubXYZN", v)
	var k K
	return v.New(k.Sub(v.X(), x), k.Sub(v.Y(), y), k.Sub(v.Z(), z))
}

// SubR stores the difference of v and t in res.
func (o Ops[T, K, V]) SubR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec3.Ops.SubR", t)
	return o.SubXYZR(res, v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) SubScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.SubXYZR(res, v, s, s, s)
}

func (Ops[T, K, V]) SubXYZR(res Writer[T], v Reader[T], x, y, z T) Writer[T] {
	checkReader("vec3.Ops.SubXYZR", v)
	checkWriter("vec3.Ops.SubXYZR", res)
	var k K
	return SetXYZ[T](res, k.Sub(v.X(), x), k.Sub(v.Y(), y), k.Sub(v.Z(), z))
}

// MulN returns the component-wise product of v and t.
func (o Ops[T, K, V]) MulN(v V, t Reader[T]) V {
	checkReader("vec3.Ops.MulN", t)
	return o.MulXYZN(v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) MulScalarN(v V, s T) V {
	return o.MulXYZN(v, s, s, s)
}

// MulXYZN returns the component-wise product of v and (x, y, z).
func (Ops[T, K, V]) MulXYZN(v V, x, y, z T) V {
	checkReader("vec3.Ops.MulXYZN", v)
	var k K
	return v.New(k.Mul(v.X(), x), k.Mul(v.Y(), y), k.Mul(v.Z(), z))
}

// MulR stores the component-wise product of v and t in res.
func (o Ops[T, K, V]) MulR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec3.Ops.MulR", t)
	return o.MulXYZR(res, v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) MulScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.MulXYZR(res, v, s, s, s)
}

func (Ops[T, K, V]) MulXYZR(res Writer[T], v Reader[T], x, y, z T) Writer[T] {
	checkReader("vec3.Ops.MulXYZR", v)
	checkWriter("vec3.Ops.MulXYZR", res)
	var k K
	return SetXYZ[T](res, k.Mul(v.X(), x), k.Mul(v.Y(), y), k.Mul(v.Z(), z))
}

// DivN returns the component-wise quotient of v and t.
func (o Ops[T, K, V]) DivN(v V, t Reader[T]) V {
	checkReader("vec3.Ops.DivN", t)
	return o.DivXYZN(v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) DivScalarN(v V, s T) V {
	return o.DivXYZN(v, s, s, s)
}

// DivXYZN returns the component-wise quotient of v and (x, y, z).
func (Ops[T, K, V]) DivXYZN(v V, x, y, z T) V {
	checkReader("vec3.Ops.DivXYZN", v)
	var k K
	return v.New(k.Div(v.X(), x), k.Div(v.Y(), y), k.Div(v.Z(), z))
}

// DivR stores the component-wise quotient of v and t in res.
func (o Ops[T, K, V]) DivR(res Writer[T], v, t Reader[T]) Writer[T] {
	checkReader("vec3.Ops.DivR", t)
	return o.DivXYZR(res, v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) DivScalarR(res Writer[T], v Reader[T], s T) Writer[T] {
	return o.DivXYZR(res, v, s, s, s)
}

func (Ops[T, K, V]) DivXYZR(res Writer[T], v Reader[T], x, y, z T) Writer[T] {
	checkReader("vec3.Ops.DivXYZR", v)
	checkWriter("vec3.Ops.DivXYZR", res)
	var k K
	return SetXYZ[T](res, k.Div(v.X(), x), k.Div(v.Y(), y), k.Div(v.Z(), z))
}

// Dot returns the dot product of v and t.
func (o Ops[T, K, V]) Dot(v, t Reader[T]) T {
	checkReader("vec3.Ops.Dot", t)
	return o.DotXYZ(v, t.X(), t.Y(), t.Z())
}

func (o Ops[T, K, V]) DotScalar(v Reader[T], s T) T {
	return o.DotXYZ(v, s, s, s)
}

func (Ops[T, K, V]) DotXYZ(v Reader[T], x, y, z T) T {
	checkReader("vec3.Ops.DotXYZ", v)
	var k K
	return k.Add(k.Add(k.Mul(v.X(), x), k.Mul(v.Y(), y)), k.Mul(v.Z(), z))
}

// SquaredLength returns the dot product of v with itself.
func (o Ops[T, K, V]) SquaredLength(v Reader[T]) T {
	checkReader("vec3.Ops.SquaredLength", v)
	return o.DotXYZ(v, v.X(), v.Y(), v.Z())
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
	checkReader("vec3.Ops.InvertN", v)
	var k K
	return v.New(k.Neg(v.X()), k.Neg(v.Y()), k.Neg(v.Z()))
}

// InvertR stores the negation of v in res.
func (Ops[T, K, V]) InvertR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec3.Ops.InvertR", v)
	checkWriter("vec3.Ops.InvertR", res)
	var k K
	return SetXYZ[T](res, k.Neg(v.X()), k.Neg(v.Y()), k.Neg(v.Z()))
}

// ReciprocalN returns a vector holding one divided by each component
// of v. A zero component is not checked for.
func (Ops[T, K, V]) ReciprocalN(v V) V {
	checkReader("vec3.Ops.ReciprocalN", v)
	var k K
	one := k.One()
	return v.New(k.Div(one, v.X()), k.Div(one, v.Y()), k.Div(one, v.Z()))
}

// ReciprocalR stores one divided by each component of v in res.
func (Ops[T, K, V]) ReciprocalR(res Writer[T], v Reader[T]) Writer[T] {
	checkReader("vec3.Ops.ReciprocalR", v)
	checkWriter("vec3.Ops.ReciprocalR", res)
	var k K
	one := k.One()
	return SetXYZ[T](res, k.Div(one, v.X()), k.Div(one, v.Y()), k.Div(one, v.Z()))
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
	checkReader("vec3.Ops.zeroN", v)
	var k K
	return v.New(k.Zero(), k.Zero(), k.Zero())
}

func (Ops[T, K, V]) zeroR(res Writer[T]) Writer[T] {
	checkWriter("vec3.Ops.zeroR", res)
	var k K
	return SetXYZ[T](res, k.Zero(), k.Zero(), k.Zero())
}
