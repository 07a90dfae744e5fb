// Package vec3 provides 3-component numeric tuples and the vector
// algebra over them.
//
// Capabilities are split into a [Reader], which can only be read, a
// [Writer], which can only be written, and a [ReadWriter], which can
// be both. Code that does not own a tuple takes it as a Reader so
// that it can not modify it. [Tup] and [Const] are plain mutable and
// immutable storage; [Vec] is storage with the algebra of [Ops] and
// [Metric] attached.
//
// Components are of any type T for which a numeric kind K from
// package num exists, so the same definitions serve floats, integers,
// fixed-point numbers, big integers and decimals.
package vec3

import (
	"iter"

	"github.com/cespare/xxhash/v2"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

// Size is the number of components in a tuple.
const Size = 3

// Reader is the read capability of a 3-component tuple.
type Reader[T any] interface {
	X() T
	Y() T
	Z() T
}

// Writer is the write capability of a 3-component tuple.
type Writer[T any] interface {
	SetX(x T)
	SetY(y T)
	SetZ(z T)
}

// ReadWriter is a tuple that can be both read and written.
type ReadWriter[T any] interface {
	Reader[T]
	Writer[T]
}

// At returns the component of r at index i, counting from X. It
// panics if i is not in [0, Size).
func At[T any](r Reader[T], i int) T {
	checkReader("vec3.At", r)
	tuple.CheckIndex("vec3.At", i, Size)
	switch i {
	case 0:
		return r.X()
	case 1:
		return r.Y()
	default:
		return r.Z()
	}
}

// Array returns the components of r in order.
func Array[T any](r Reader[T]) []T {
	checkReader("vec3.Array", r)
	return []T{r.X(), r.Y(), r.Z()}
}

// ArrayInto copies the components of r into the start of dst and
// returns dst. It panics if dst has fewer than Size elements.
func ArrayInto[T any](r Reader[T], dst []T) []T {
	checkReader("vec3.ArrayInto", r)
	tuple.CheckRoom("vec3.ArrayInto", len(dst), Size)
	dst[0], dst[1], dst[2] = r.X(), r.Y(), r.Z()
	return dst
}

// All returns an iterator over the indices and components of r.
func All[T any](r Reader[T]) iter.Seq2[int, T] {
	checkReader("vec3.All", r)
	return func(yield func(int, T) bool) {
		for i := range Size {
			if !yield(i, At(r, i)) {
				return
			}
		}
	}
}

// Set copies the components of r into dst and returns dst.
func Set[T any, W Writer[T]](dst W, r Reader[T]) W {
	checkReader("vec3.Set", r)
	return SetXYZ[T](dst, r.X(), r.Y(), r.Z())
}

// SetScalar sets every component of dst to s and returns dst.
func SetScalar[T any, W Writer[T]](dst W, s T) W {
	return SetXYZ[T](dst, s, s, s)
}

// SetXYZ sets the components of dst one at a time and returns dst.
// Writers that validate components may panic part way through, leaving
// the earlier components already written; [Tup.SetXYZ] validates
// all of them first.
func SetXYZ[T any, W Writer[T]](dst W, x, y, z T) W {
	checkWriter("vec3.SetXYZ", dst)
	dst.SetX(x)
	dst.SetY(y)
	dst.SetZ(z)
	return dst
}

// SetAt sets the component of dst at index i and returns dst. It panics
// if i is not in [0, Size).
func SetAt[T any, W Writer[T]](dst W, i int, v T) W {
	checkWriter("vec3.SetAt", dst)
	tuple.CheckIndex("vec3.SetAt", i, Size)
	switch i {
	case 0:
		dst.SetX(v)
	case 1:
		dst.SetY(v)
	default:
		dst.SetZ(v)
	}
	return dst
}

// SetArray sets the components of dst from a and returns dst. It panics
// unless a has exactly Size elements.
func SetArray[T any, W Writer[T]](dst W, a []T) W {
	checkWriter("vec3.SetArray", dst)
	tuple.CheckLen("vec3.SetArray", len(a), Size)
	return SetXYZ[T](dst, a[0], a[1], a[2])
}

// IsExactlyZero reports whether every component of r compares equal
// to zero.
func IsExactlyZero[T any, K num.Kind[T]](r Reader[T]) bool {
	checkReader("vec3.IsExactlyZero", r)
	var k K
	zero := k.Zero()
	return (k.Cmp(r.X(), zero) == 0) &&
		(k.Cmp(r.Y(), zero) == 0) &&
		(k.Cmp(r.Z(), zero) == 0)
}

// IsZero reports whether every component of r lies within tol of
// zero, inclusive. Each component is checked on its own.
func IsZero[T any, K num.Kind[T]](r Reader[T], tol T) bool {
	checkReader("vec3.IsZero", r)
	var k K
	return (k.Cmp(k.Abs(r.X()), tol) <= 0) &&
		(k.Cmp(k.Abs(r.Y()), tol) <= 0) &&
		(k.Cmp(k.Abs(r.Z()), tol) <= 0)
}

// IsValid reports whether no component of r is the null value of its
// kind.
func IsValid[T any, K num.Kind[T]](r Reader[T]) bool {
	checkReader("vec3.IsValid", r)
	var k K
	return k.Valid(r.X()) &&
		k.Valid(r.Y()) &&
		k.Valid(r.Z())
}

// Equal reports whether a and b hold equal components under the
// native equality of K.
func Equal[T any, K num.Kind[T]](a, b Reader[T]) bool {
	checkReader("vec3.Equal", a)
	checkReader("vec3.Equal", b)
	var k K
	return k.Equal(a.X(), b.X()) &&
		k.Equal(a.Y(), b.Y()) &&
		k.Equal(a.Z(), b.Z())
}

// Hash returns a hash of the components of r. Tuples that are Equal
// hash equally.
func Hash[T any, K num.Kind[T]](r Reader[T]) uint64 {
	checkReader("vec3.Hash", r)
	var k K
	b := make([]byte, 0, 27)
	b = append(k.Append(b, r.X()), 0)
	b = append(k.Append(b, r.Y()), 0)
	b = append(k.Append(b, r.Z()), 0)
	return xxhash.Sum64(b)
}

// Format returns r as a parenthesized, comma-separated list of its
// components. It is meant for debugging, not for parsing.
func Format[T any, K num.Kind[T]](r Reader[T]) string {
	checkReader("vec3.Format", r)
	var k K
	return "(" + k.Format(r.X()) + ", " + k.Format(r.Y()) + ", " + k.Format(r.Z()) + ")"
}

// Conv converts the components of r to the scalar type Out with a Go
// conversion, so precision may be lost.
func Conv[Out num.Scalar, KO num.Kind[Out], In num.Scalar](r Reader[In]) *Tup[Out, KO] {
	checkReader("vec3.Conv", r)
	return NewTup[Out, KO](Out(r.X()), Out(r.Y()), Out(r.Z()))
}

// nilable is implemented by the pointer types of this package, so
// that a nil *Tup or *Vec inside a Reader or Writer is seen as nil.
type nilable interface {
	isNil() bool
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	n, ok := v.(nilable)
	return ok && n.isNil()
}

func checkReader[T any](op string, r Reader[T]) {
	tuple.CheckNotNil(op, "tuple", !isNil(r))
}

func checkWriter[T any](op string, dst Writer[T]) {
	tuple.CheckNotNil(op, "res", !isNil(dst))
}

func checkComponent[T any, K num.Kind[T]](op string, i int, v T) {
	var k K
	tuple.CheckValid(op, i, k.Valid(v))
}
