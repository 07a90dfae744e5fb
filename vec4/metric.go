package vec4

import "deedles.dev/tuple/num"

// Metric extends [Ops] with the operations that need a square root.
// Because K must be a [num.Rooter], there is no Metric for integer
// kinds or for [num.BigInt].
//
// As with Ops, the plain spellings do not check for a zero vector,
// while the Safe and SafeTol spellings substitute zero for it.
type Metric[T any, K num.Rooter[T], V Vector[T, V]] struct {
	Ops[T, K, V]
}

// Length returns the Euclidean length of v.
func (m Metric[T, K, V]) Length(v Reader[T]) T {
	var k K
	return k.Sqrt(m.SquaredLength(v))
}

func (m Metric[T, K, V]) SafeLength(v Reader[T]) T {
	if m.IsExactlyZero(v) {
		var k K
		return k.Zero()
	}
	return m.Length(v)
}

func (m Metric[T, K, V]) SafeTolLength(v Reader[T], tol T) T {
	if m.IsZero(v, tol) {
		var k K
		return k.Zero()
	}
	return m.Length(v)
}

// ReciprocalLength returns one divided by the length of v.
func (m Metric[T, K, V]) ReciprocalLength(v Reader[T]) T {
	var k K
	return k.Div(k.One(), m.Length(v))
}

func (m Metric[T, K, V]) SafeReciprocalLength(v Reader[T]) T {
	if m.IsExactlyZero(v) {
		var k K
		return k.Zero()
	}
	return m.ReciprocalLength(v)
}

func (m Metric[T, K, V]) SafeTolReciprocalLength(v Reader[T], tol T) T {
	if m.IsZero(v, tol) {
		var k K
		return k.Zero()
	}
	return m.ReciprocalLength(v)
}

// NormalizeN returns a vector of length one pointing the same way as
// v.
func (m Metric[T, K, V]) NormalizeN(v V) V {
	return m.DivScalarN(v, m.Length(v))
}

// NormalizeR stores a vector of length one pointing the same way as v
// in res.
func (m Metric[T, K, V]) NormalizeR(res Writer[T], v Reader[T]) Writer[T] {
	return m.DivScalarR(res, v, m.Length(v))
}

func (m Metric[T, K, V]) SafeNormalizeN(v V) V {
	if m.IsExactlyZero(v) {
		return m.zeroN(v)
	}
	return m.NormalizeN(v)
}

func (m Metric[T, K, V]) SafeNormalizeR(res Writer[T], v Reader[T]) Writer[T] {
	if m.IsExactlyZero(v) {
		return m.zeroR(res)
	}
	return m.NormalizeR(res, v)
}

func (m Metric[T, K, V]) SafeTolNormalizeN(v V, tol T) V {
	if m.IsZero(v, tol) {
		return m.zeroN(v)
	}
	return m.NormalizeN(v)
}

func (m Metric[T, K, V]) SafeTolNormalizeR(res Writer[T], v Reader[T], tol T) Writer[T] {
	if m.IsZero(v, tol) {
		return m.zeroR(res)
	}
	return m.NormalizeR(res, v)
}

func metricOf[T any, K num.Rooter[T]]() Metric[T, K, *Vec[T, K]] {
	return Metric[T, K, *Vec[T, K]]{}
}

// Length returns the Euclidean length of v.
func Length[T any, K num.Rooter[T]](v *Vec[T, K]) T {
	return metricOf[T, K]().Length(v)
}

// SafeLength returns the length of v, or zero if v is exactly zero.
func SafeLength[T any, K num.Rooter[T]](v *Vec[T, K]) T {
	return metricOf[T, K]().SafeLength(v)
}

// SafeTolLength returns the length of v, or zero if every component
// of v is within tol of zero.
func SafeTolLength[T any, K num.Rooter[T]](v *Vec[T, K], tol T) T {
	return metricOf[T, K]().SafeTolLength(v, tol)
}

func ReciprocalLength[T any, K num.Rooter[T]](v *Vec[T, K]) T {
	return metricOf[T, K]().ReciprocalLength(v)
}

func SafeReciprocalLength[T any, K num.Rooter[T]](v *Vec[T, K]) T {
	return metricOf[T, K]().SafeReciprocalLength(v)
}

func SafeTolReciprocalLength[T any, K num.Rooter[T]](v *Vec[T, K], tol T) T {
	return metricOf[T, K]().SafeTolReciprocalLength(v, tol)
}

// NormalizeN returns a new Vec of length one pointing the same way as
// v.
func NormalizeN[T any, K num.Rooter[T]](v *Vec[T, K]) *Vec[T, K] {
	return metricOf[T, K]().NormalizeN(v)
}

// NormalizeR stores v normalized in res and returns res.
func NormalizeR[T any, K num.Rooter[T], W Writer[T]](res W, v *Vec[T, K]) W {
	metricOf[T, K]().NormalizeR(res, v)
	return res
}

// Normalize normalizes v in place and returns it.
func Normalize[T any, K num.Rooter[T]](v *Vec[T, K]) *Vec[T, K] {
	metricOf[T, K]().NormalizeR(v, v)
	return v
}

func SafeNormalizeN[T any, K num.Rooter[T]](v *Vec[T, K]) *Vec[T, K] {
	return metricOf[T, K]().SafeNormalizeN(v)
}

func SafeNormalizeR[T any, K num.Rooter[T], W Writer[T]](res W, v *Vec[T, K]) W {
	metricOf[T, K]().SafeNormalizeR(res, v)
	return res
}

func SafeNormalize[T any, K num.Rooter[T]](v *Vec[T, K]) *Vec[T, K] {
	metricOf[T, K]().SafeNormalizeR(v, v)
	return v
}

func SafeTolNormalizeN[T any, K num.Rooter[T]](v *Vec[T, K], tol T) *Vec[T, K] {
	return metricOf[T, K]().SafeTolNormalizeN(v, tol)
}

func SafeTolNormalizeR[T any, K num.Rooter[T], W Writer[T]](res W, v *Vec[T, K], tol T) W {
	metricOf[T, K]().SafeTolNormalizeR(res, v, tol)
	return res
}

func SafeTolNormalize[T any, K num.Rooter[T]](v *Vec[T, K], tol T) *Vec[T, K] {
	metricOf[T, K]().SafeTolNormalizeR(v, v, tol)
	return v
}
