package vec3

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"deedles.dev/tuple/num"
)

// Vec is a mutable 3-component vector of kind K: a [Tup] with the
// algebra of [Ops] attached. Operations that need a square root are
// package functions, such as [Length] and [NormalizeN], since they
// only exist when K is a [num.Rooter].
//
// Every operation is available three ways. The spelling ending in N
// returns a new Vec, the one ending in R writes into a caller-supplied
// [Writer] and returns it, and the bare spelling modifies the Vec
// itself and returns it.
type Vec[T any, K num.Kind[T]] struct {
	Tup[T, K]
}

// Common instantiations.
type (
	Vecf  = Vec[float32, num.Float32]
	Vecd  = Vec[float64, num.Float64]
	Veci  = Vec[int32, num.Int32]
	Vecl  = Vec[int64, num.Int64]
	Vecbi = Vec[*big.Int, num.BigInt]
	Vecbd = Vec[*apd.Decimal, num.Decimal128]
)

func ZeroVec[T any, K num.Kind[T]]() *Vec[T, K] {
	var k K
	return NewVec[T, K](k.Zero(), k.Zero(), k.Zero())
}

// NewVec returns a new Vec holding the given components. It panics if
// a component is not valid for K.
func NewVec[T any, K num.Kind[T]](x, y, z T) *Vec[T, K] {
	return new(Vec[T, K]).SetXYZ(x, y, z)
}

func VecOf[T any, K num.Kind[T]](r Reader[T]) *Vec[T, K] {
	checkReader("vec3.VecOf", r)
	return NewVec[T, K](r.X(), r.Y(), r.Z())
}

func VecScalar[T any, K num.Kind[T]](s T) *Vec[T, K] {
	return NewVec[T, K](s, s, s)
}

func VecArray[T any, K num.Kind[T]](a []T) *Vec[T, K] {
	return new(Vec[T, K]).SetArray(a)
}

func (v *Vec[T, K]) isNil() bool {
	return v == nil
}

func (v *Vec[T, K]) ops() Ops[T, K, *Vec[T, K]] {
	return Ops[T, K, *Vec[T, K]]{}
}

// New returns a new Vec holding the given components.
func (v *Vec[T, K]) New(x, y, z T) *Vec[T, K] {
	return NewVec[T, K](x, y, z)
}

// Tuple returns the storage of v.
func (v *Vec[T, K]) Tuple() *Tup[T, K] {
	return &v.Tup
}

func (v *Vec[T, K]) Set(r Reader[T]) *Vec[T, K] {
	v.Tup.Set(r)
	return v
}

func (v *Vec[T, K]) SetScalar(s T) *Vec[T, K] {
	v.Tup.SetScalar(s)
	return v
}

func (v *Vec[T, K]) SetXYZ(x, y, z T) *Vec[T, K] {
	v.Tup.SetXYZ(x, y, z)
	return v
}

func (v *Vec[T, K]) SetAt(i int, c T) *Vec[T, K] {
	v.Tup.SetAt(i, c)
	return v
}

func (v *Vec[T, K]) SetArray(a []T) *Vec[T, K] {
	v.Tup.SetArray(a)
	return v
}

// AddN returns the sum of v and t.
func (v *Vec[T, K]) AddN(t Reader[T]) *Vec[T, K] {
	return v.ops().AddN(v, t)
}

func (v *Vec[T, K]) AddScalarN(s T) *Vec[T, K] {
	return v.ops().AddScalarN(v, s)
}

func (v *Vec[T, K]) AddXYZN(x, y, z T) *Vec[T, K] {
	return v.ops().AddXYZN(v, x, y, z)
}

// AddR stores the sum of v and t in res and returns res.
func (v *Vec[T, K]) AddR(res Writer[T], t Reader[T]) Writer[T] {
	return v.ops().AddR(res, v, t)
}

func (v *Vec[T, K]) AddScalarR(res Writer[T], s T) Writer[T] {
	return v.ops().AddScalarR(res, v, s)
}

func (v *Vec[T, K]) AddXYZR(res Writer[T], x, y, z T) Writer[T] {
	return v.ops().AddXYZR(res, v, x, y, z)
}

// Add stores the sum of v and t in v and returns v.
func (v *Vec[T, K]) Add(t Reader[T]) *Vec[T, K] {
	v.ops().AddR(v, v, t)
	return v
}

func (v *Vec[T, K]) AddScalar(s T) *Vec[T, K] {
	v.ops().AddScalarR(v, v, s)
	return v
}

func (v *Vec[T, K]) AddXYZ(x, y, z T) *Vec[T, K] {
	v.ops().AddXYZR(v, v, x, y, z)
	return v
}

// SubN returns the difference of v and t.
func (v *Vec[T, K]) SubN(t Reader[T]) *Vec[T, K] {
	return v.ops().SubN(v, t)
}

func (v *Vec[T, K]) SubScalarN(s T) *Vec[T, K] {
	return v.ops().SubScalarN(v, s)
}

func (v *Vec[T, K]) SubXYZN(x, y, z T) *Vec[T, K] {
	return v.ops().SubXYZN(v, x, y, z)
}

// SubR stores the difference of v and t in res and returns res.
func (v *Vec[T, K]) SubR(res Writer[T], t Reader[T]) Writer[T] {
	return v.ops().SubR(res, v, t)
}

func (v *Vec[T, K]) SubScalarR(res Writer[T], s T) Writer[T] {
	return v.ops().SubScalarR(res, v, s)
}

func (v *Vec[T, K]) SubXYZR(res Writer[T], x, y, z T) Writer[T] {
	return v.ops().SubXYZR(res, v, x, y, z)
}

// Sub stores the difference of v and t in v and returns v.
func (v *Vec[T, K]) Sub(t Reader[T]) *Vec[T, K] {
	v.ops().SubR(v, v, t)
	return v
}

func (v *Vec[T, K]) SubScalar(s T) *Vec[T, K] {
	v.ops().SubScalarR(v, v, s)
	return v
}

func (v *Vec[T, K]) SubXYZ(x, y, z T) *Vec[T, K] {
	v.ops().SubXYZR(v, v, x, y, z)
	return v
}

// MulN returns the component-wise product of v and t.
func (v *Vec[T, K]) MulN(t Reader[T]) *Vec[T, K] {
	return v.ops().MulN(v, t)
}

func (v *Vec[T, K]) MulScalarN(s T) *Vec[T, K] {
	return v.ops().MulScalarN(v, s)
}

func (v *Vec[T, K]) MulXYZN(x, y, z T) *Vec[T, K] {
	return v.ops().MulXYZN(v, x, y, z)
}

// MulR stores the component-wise product of v and t in res and returns res.
func (v *Vec[T, K]) MulR(res Writer[T], t Reader[T]) Writer[T] {
	return v.ops().MulR(res, v, t)
}

func (v *Vec[T, K]) MulScalarR(res Writer[T], s T) Writer[T] {
	return v.ops().MulScalarR(res, v, s)
}

func (v *Vec[T, K]) MulXYZR(res Writer[T], x, y, z T) Writer[T] {
	return v.ops().MulXYZR(res, v, x, y, z)
}

// Mul stores the component-wise product of v and t in v and returns v.
func (v *Vec[T, K]) Mul(t Reader[T]) *Vec[T, K] {
	v.ops().MulR(v, v, t)
	return v
}

func (v *Vec[T, K]) MulScalar(s T) *Vec[T, K] {
	v.ops().MulScalarR(v, v, s)
	return v
}

func (v *Vec[T, K]) MulXYZ(x, y, z T) *Vec[T, K] {
	v.ops().MulXYZR(v, v, x, y, z)
	return v
}

// DivN returns the component-wise quotient of v and t.
func (v *Vec[T, K]) DivN(t Reader[T]) *Vec[T, K] {
	return v.ops().DivN(v, t)
}

func (v *Vec[T, K]) DivScalarN(s T) *Vec[T, K] {
	return v.ops().DivScalarN(v, s)
}

func (v *Vec[T, K]) DivXYZN(x, y, z T) *Vec[T, K] {
	return v.ops().DivXYZN(v, x, y, z)
}

// DivR stores the component-wise quotient of v and t in res and returns res.
func (v *Vec[T, K]) DivR(res Writer[T], t Reader[T]) Writer[T] {
	return v.ops().DivR(res, v, t)
}

func (v *Vec[T, K]) DivScalarR(res Writer[T], s T) Writer[T] {
	return v.ops().DivScalarR(res, v, s)
}

func (v *Vec[T, K]) DivXYZR(res Writer[T], x, y, z T) Writer[T] {
	return v.ops().DivXYZR(res, v, x, y, z)
}

// Div stores the component-wise quotient of v and t in v and returns v.
func (v *Vec[T, K]) Div(t Reader[T]) *Vec[T, K] {
	v.ops().DivR(v, v, t)
	return v
}

func (v *Vec[T, K]) DivScalar(s T) *Vec[T, K] {
	v.ops().DivScalarR(v, v, s)
	return v
}

func (v *Vec[T, K]) DivXYZ(x, y, z T) *Vec[T, K] {
	v.ops().DivXYZR(v, v, x, y, z)
	return v
}

func (v *Vec[T, K]) Dot(t Reader[T]) T {
	return v.ops().Dot(v, t)
}

func (v *Vec[T, K]) DotScalar(s T) T {
	return v.ops().DotScalar(v, s)
}

func (v *Vec[T, K]) DotXYZ(x, y, z T) T {
	return v.ops().DotXYZ(v, x, y, z)
}

func (v *Vec[T, K]) SquaredLength() T {
	return v.ops().SquaredLength(v)
}

func (v *Vec[T, K]) SafeSquaredLength() T {
	return v.ops().SafeSquaredLength(v)
}

func (v *Vec[T, K]) SafeTolSquaredLength(tol T) T {
	return v.ops().SafeTolSquaredLength(v, tol)
}

func (v *Vec[T, K]) InvertN() *Vec[T, K] {
	return v.ops().InvertN(v)
}

func (v *Vec[T, K]) InvertR(res Writer[T]) Writer[T] {
	return v.ops().InvertR(res, v)
}

// Invert negates v in place and returns it.
func (v *Vec[T, K]) Invert() *Vec[T, K] {
	v.ops().InvertR(v, v)
	return v
}

func (v *Vec[T, K]) ReciprocalN() *Vec[T, K] {
	return v.ops().ReciprocalN(v)
}

func (v *Vec[T, K]) ReciprocalR(res Writer[T]) Writer[T] {
	return v.ops().ReciprocalR(res, v)
}

// Reciprocal replaces every component of v with one divided by it and
// returns v.
func (v *Vec[T, K]) Reciprocal() *Vec[T, K] {
	v.ops().ReciprocalR(v, v)
	return v
}

func (v *Vec[T, K]) SafeReciprocalN() *Vec[T, K] {
	return v.ops().SafeReciprocalN(v)
}

func (v *Vec[T, K]) SafeReciprocalR(res Writer[T]) Writer[T] {
	return v.ops().SafeReciprocalR(res, v)
}

func (v *Vec[T, K]) SafeReciprocal() *Vec[T, K] {
	v.ops().SafeReciprocalR(v, v)
	return v
}

func (v *Vec[T, K]) SafeTolReciprocalN(tol T) *Vec[T, K] {
	return v.ops().SafeTolReciprocalN(v, tol)
}

func (v *Vec[T, K]) SafeTolReciprocalR(res Writer[T], tol T) Writer[T] {
	return v.ops().SafeTolReciprocalR(res, v, tol)
}

func (v *Vec[T, K]) SafeTolReciprocal(tol T) *Vec[T, K] {
	v.ops().SafeTolReciprocalR(v, v, tol)
	return v
}
