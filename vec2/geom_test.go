package vec2

import (
	"testing"

	"deedles.dev/ximage/geom"
	"github.com/stretchr/testify/assert"

	"deedles.dev/tuple/num"
)

func TestPointInterop(t *testing.T) {
	p := geom.Pt(3, -4)

	v := FromPoint[int, num.Int[int]](p)
	assertXY(t, 3, -4, v)
	assert.Equal(t, p, ToPoint[int](v))
	assert.Equal(t, geom.Pt(-4, 3), ToPoint[int](v.AddXY(1, 1).InvertN()))

	tup := TupFromPoint[float64, num.Float64](geom.Pt(0.5, 1.5))
	assert.Equal(t, geom.Pt(0.5, 1.5), ToPoint[float64](tup))
	assert.Equal(t, geom.Pt(0, 1), ToPointConv[int, float64](tup))
}
