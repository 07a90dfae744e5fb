package vec2

import (
	"iter"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

// Tup is a mutable 2-component tuple of kind K. It is only storage;
// for arithmetic, use [Vec] or run [Ops] over a Tup.
//
// The zero value holds the zero value of T in every component. For
// reference kinds such as [num.BigInt] that is nil, which is not a
// valid component, so use [ZeroTup] instead.
type Tup[T any, K num.Kind[T]] struct {
	x, y T
}

// ZeroTup returns a new Tup with every component set to the zero
// value of K.
func ZeroTup[T any, K num.Kind[T]]() *Tup[T, K] {
	var k K
	return NewTup[T, K](k.Zero(), k.Zero())
}

// NewTup returns a new Tup holding the given components. It panics if
// a component is not valid for K.
func NewTup[T any, K num.Kind[T]](x, y T) *Tup[T, K] {
	return new(Tup[T, K]).SetXY(x, y)
}

// TupOf returns a new Tup holding the components of r.
func TupOf[T any, K num.Kind[T]](r Reader[T]) *Tup[T, K] {
	checkReader("vec2.TupOf", r)
	return NewTup[T, K](r.X(), r.Y())
}

// TupScalar returns a new Tup with every component set to s.
func TupScalar[T any, K num.Kind[T]](s T) *Tup[T, K] {
	return NewTup[T, K](s, s)
}

// TupArray returns a new Tup holding the elements of a, which must
// have exactly Size elements.
func TupArray[T any, K num.Kind[T]](a []T) *Tup[T, K] {
	return new(Tup[T, K]).SetArray(a)
}

// New returns a new Tup holding the given components. It ignores t
// and exists so that a *Tup is a [Vector].
func (t *Tup[T, K]) New(x, y T) *Tup[T, K] {
	return NewTup[T, K](x, y)
}

func (t *Tup[T, K]) X() T {
	return t.x
}

func (t *Tup[T, K]) Y() T {
	return t.y
}

func (t *Tup[T, K]) SetX(x T) {
	checkComponent[T, K]("vec2.Tup.SetX", 0, x)
	t.x = x
}

func (t *Tup[T, K]) SetY(y T) {
	checkComponent[T, K]("vec2.Tup.SetY", 1, y)
	t.y = y
}

// Set copies the components of r into t and returns t.
func (t *Tup[T, K]) Set(r Reader[T]) *Tup[T, K] {
	checkReader("vec2.Tup.Set", r)
	return t.SetXY(r.X(), r.Y())
}

// SetScalar sets every component of t to s and returns t.
func (t *Tup[T, K]) SetScalar(s T) *Tup[T, K] {
	return t.SetXY(s, s)
}

// SetXY sets the components of t and returns t. If any of them is
// invalid it panics and leaves t unchanged.
func (t *Tup[T, K]) SetXY(x, y T) *Tup[T, K] {
	checkComponent[T, K]("vec2.Tup.SetXY", 0, x)
	checkComponent[T, K]("vec2.Tup.SetXY", 1, y)
	t.x, t.y = x, y
	return t
}

// SetAt sets the component of t at index i and returns t.
func (t *Tup[T, K]) SetAt(i int, v T) *Tup[T, K] {
	return SetAt[T](t, i, v)
}

// SetArray sets the components of t from a, which must have exactly
// Size elements, and returns t.
func (t *Tup[T, K]) SetArray(a []T) *Tup[T, K] {
	tuple.CheckLen("vec2.Tup.SetArray", len(a), Size)
	return t.SetXY(a[0], a[1])
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

// Const is an immutable 2-component tuple of kind K. Like [Tup], its
// zero value is only valid for kinds whose zero value of T is a valid
// component.
type Const[T any, K num.Kind[T]] struct {
	x, y T
}

func ZeroConst[T any, K num.Kind[T]]() Const[T, K] {
	var k K
	return NewConst[T, K](k.Zero(), k.Zero())
}

// NewConst returns a Const holding the given components. It panics if
// a component is not valid for K.
func NewConst[T any, K num.Kind[T]](x, y T) Const[T, K] {
	checkComponent[T, K]("vec2.NewConst", 0, x)
	checkComponent[T, K]("vec2.NewConst", 1, y)
	return Const[T, K]{x, y}
}

func ConstOf[T any, K num.Kind[T]](r Reader[T]) Const[T, K] {
	checkReader("vec2.ConstOf", r)
	return NewConst[T, K](r.X(), r.Y())
}

func ConstScalar[T any, K num.Kind[T]](s T) Const[T, K] {
	return NewConst[T, K](s, s)
}

func ConstArray[T any, K num.Kind[T]](a []T) Const[T, K] {
	return ConstOf[T, K](TupArray[T, K](a))
}

// New returns a new Const. It exists so that a Const is a [Vector],
// which lets [Ops] run over immutable values.
func (c Const[T, K]) New(x, y T) Const[T, K] {
	return NewConst[T, K](x, y)
}

func (c Const[T, K]) X() T {
	return c.x
}

func (c Const[T, K]) Y() T {
	return c.y
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
