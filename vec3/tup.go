package vec3

import (
	"iter"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

// Tup is a mutable 3-component tuple of kind K. It is only storage;
// for arithmetic, use [Vec] or run [Ops] over a Tup.
//
// The zero value holds the zero value of T in every component. For
// reference kinds such as [num.BigInt] that is nil, which is not a
// valid component, so use [ZeroTup] instead.
type Tup[T any, K num.Kind[T]] struct {
	x, y, z T
}

// ZeroTup returns a new Tup with every component set to the zero
// value of K.
func ZeroTup[T any, K num.Kind[T]]() *Tup[T, K] {
	var k K
	return NewTup[T, K](k.Zero(), k.Zero(), k.Zero())
}

// NewTup returns a new Tup holding the given components. It panics if
// a component is not valid for K.
func NewTup[T any, K num.Kind[T]](x, y, z T) *Tup[T, K] {
	return new(Tup[T, K]).SetXYZ(x, y, z)
}

// TupOf returns a new Tup holding the components of r.
func TupOf[T any, K num.Kind[T]](r Reader[T]) *Tup[T, K] {
	checkReader("vec3.TupOf", r)
	return NewTup[T, K](r.X(), r.Y(), r.Z())
}

// TupScalar returns a new Tup with every component set to s.
func TupScalar[T any, K num.Kind[T]](s T) *Tup[T, K] {
	return NewTup[T, K](s, s, s)
}

// TupArray returns a new Tup holding the elements of a, which must
// have exactly Size elements.
func TupArray[T any, K num.Kind[T]](a []T) *Tup[T, K] {
	return new(Tup[T, K]).SetArray(a)
}

// New returns a new Tup holding the given components. It ignores t
// and exists so that a *Tup is a [Vector].
func (t *Tup[T, K]) New(x, y, z T) *Tup[T, K] {
	return NewTup[T, K](x, y, z)
}

func (t *Tup[T, K]) X() T {
	return t.x
}

func (t *Tup[T, K]) Y() T {
	return t.y
}

func (t *Tup[T, K]) Z() T {
	return t.z
}

func (t *Tup[T, K]) SetX(x T) {
	checkComponent[T, K]("vec3.Tup.SetX", 0, x)
	t.x = x
}

func (t *Tup[T, K]) SetY(y T) {
	checkComponent[T, K]("vec3.Tup.SetY", 1, y)
	t.y = y
}

func (t *Tup[T, K]) SetZ(z T) {
	checkComponent[T, K]("vec3.Tup.SetZ", 2, z)
	t.z = z
}

// Set copies the components of r into t and returns t.
func (t *Tup[T, K]) Set(r Reader[T]) *Tup[T, K] {
	checkReader("vec3.Tup.Set", r)
	return t.SetXYZ(r.X(), r.Y(), r.Z())
}

// SetScalar sets every component of t to s and returns t.
func (t *Tup[T, K]) SetScalar(s T) *Tup[T, K] {
	return t.SetXYZ(s, s, s)
}

// SetXYZ sets the components of t and returns t. If any of them is
// invalid it panics and leaves t unchanged.
func (t *Tup[T, K]) SetXYZ(x, y, z T) *Tup[T, K] {
	checkComponent[T, K]("vec3.Tup.SetXYZ", 0, x)
	checkComponent[T, K]("vec3.Tup.SetXYZ", 1, y)
	checkComponent[T, K]("vec3.Tup.SetXYZ", 2, z)
	t.x, t.y, t.z = x, y, z
	return t
}

// SetAt sets the component of t at index i and returns t.
func (t *Tup[T, K]) SetAt(i int, v T) *Tup[T, K] {
	return SetAt[T](t, i, v)
}

// SetArray sets the components of t from a, which must have exactly
// Size elements, and returns t.
func (t *Tup[T, K]) SetArray(a []T) *Tup[T, K] {
	tuple.CheckLen("vec3.Tup.SetArray", len(a), Size)
	return t.SetXYZ(a[0], a[1], a[2])
}

func (t *Tup[T, K]) isNil() bool {
	return t == nil
}

func (t *Tup[T, K]) At(i int) T {
	return At[T](t, i)
}

func (t *Tup[T, K]) Array() []T {
	return Array[T](t)
}

func (t *Tup[T, K]) ArrayInto(dst []T) []T {
	return ArrayInto[T](t, dst)
}

func (t *Tup[T, K]) All() iter.Seq2[int, T] {
	return All[T](t)
}

func (t *Tup[T, K]) IsExactlyZero() bool {
	return IsExactlyZero[T, K](t)
}

func (t *Tup[T, K]) IsZero(tol T) bool {
	return IsZero[T, K](t, tol)
}

func (t *Tup[T, K]) IsValid() bool {
	return IsValid[T, K](t)
}

// Equal reports whether t and r hold equal components.
func (t *Tup[T, K]) Equal(r Reader[T]) bool {
	return Equal[T, K](t, r)
}

func (t *Tup[T, K]) Hash() uint64 {
	return Hash[T, K](t)
}

func (t *Tup[T, K]) String() string {
	return Format[T, K](t)
}

// Const is an immutable 3-component tuple of kind K. Like [Tup], its
// zero value is only valid for kinds whose zero value of T is a valid
// component.
type Const[T any, K num.Kind[T]] struct {
	x, y, z T
}

func ZeroConst[T any, K num.Kind[T]]() Const[T, K] {
	var k K
	return NewConst[T, K](k.Zero(), k.Zero(), k.Zero())
}

// NewConst returns a Const holding the given components. It panics if
// a component is not valid for K.
func NewConst[T any, K num.Kind[T]](x, y, z T) Const[T, K] {
	checkComponent[T, K]("vec3.NewConst", 0, x)
	checkComponent[T, K]("vec3.NewConst", 1, y)
	checkComponent[T, K]("vec3.NewConst", 2, z)
	return Const[T, K]{x, y, z}
}

func ConstOf[T any, K num.Kind[T]](r Reader[T]) Const[T, K] {
	checkReader("vec3.ConstOf", r)
	return NewConst[T, K](r.X(), r.Y(), r.Z())
}

func ConstScalar[T any, K num.Kind[T]](s T) Const[T, K] {
	return NewConst[T, K](s, s, s)
}

func ConstArray[T any, K num.Kind[T]](a []T) Const[T, K] {
	return ConstOf[T, K](TupArray[T, K](a))
}

// New returns a new Const. It exists so that a Const is a [Vector],
// which lets [Ops] run over immutable values.
func (c Const[T, K]) New(x, y, z T) Const[T, K] {
	return NewConst[T, K](x, y, z)
}

func (c Const[T, K]) X() T {
	return c.x
}

func (c Const[T, K]) Y() T {
	return c.y
}

func (c Const[T, K]) Z() T {
	return c.z
}

func (c Const[T, K]) At(i int) T {
	return At[T](c, i)
}

func (c Const[T, K]) Array() []T {
	return Array[T](c)
}

func (c Const[T, K]) ArrayInto(dst []T) []T {
	return ArrayInto[T](c, dst)
}

func (c Const[T, K]) All() iter.Seq2[int, T] {
	return All[T](c)
}

func (c Const[T, K]) IsExactlyZero() bool {
	return IsExactlyZero[T, K](c)
}

func (c Const[T, K]) IsZero(tol T) bool {
	return IsZero[T, K](c, tol)
}

func (c Const[T, K]) IsValid() bool {
	return IsValid[T, K](c)
}

func (c Const[T, K]) Equal(r Reader[T]) bool {
	return Equal[T, K](c, r)
}

func (c Const[T, K]) Hash() uint64 {
	return Hash[T, K](c)
}

func (c Const[T, K]) String() string {
	return Format[T, K](c)
}
