package vec2

import (
	"deedles.dev/ximage/geom"

	"deedles.dev/tuple/num"
)

// FromPoint returns a new Vec holding the coordinates of p.
func FromPoint[T num.Scalar, K num.Kind[T]](p geom.Point[T]) *Vec[T, K] {
	return NewVec[T, K](p.X, p.Y)
}

func TupFromPoint[T num.Scalar, K num.Kind[T]](p geom.Point[T]) *Tup[T, K] {
	return NewTup[T, K](p.X, p.Y)
}

// ToPoint returns the components of r as a point.
func ToPoint[T num.Scalar](r Reader[T]) geom.Point[T] {
	checkReader("vec2.ToPoint", r)
	return geom.Pt(r.X(), r.Y())
}

// ToPointConv is like ToPoint, but converts the components to Out on
// the way.
func ToPointConv[Out, In num.Scalar](r Reader[In]) geom.Point[Out] {
	return geom.PConv[Out](ToPoint(r))
}
