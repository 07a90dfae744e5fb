package vec3

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

func TestBroadcastReduction(t *testing.T) {
	v := NewVec[float64, num.Float64](2, 3, 6)
	u := NewConst[float64, num.Float64](1, 2, 3)

	tests := []struct {
		name   string
		tuple  func(*Vecd, Reader[float64]) *Vecd
		scalar func(*Vecd, float64) *Vecd
		comps  func(*Vecd, float64, float64, float64) *Vecd
	}{
		{"Add", (*Vecd).AddN, (*Vecd).AddScalarN, (*Vecd).AddXYZN},
		{"Sub", (*Vecd).SubN, (*Vecd).SubScalarN, (*Vecd).SubXYZN},
		{"Mul", (*Vecd).MulN, (*Vecd).MulScalarN, (*Vecd).MulXYZN},
		{"Div", (*Vecd).DivN, (*Vecd).DivScalarN, (*Vecd).DivXYZN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.tuple(v, u).Equal(tt.comps(v, 1, 2, 3)))
			assert.True(t, tt.scalar(v, 2).Equal(tt.comps(v, 2, 2, 2)))
		})
	}
	assert.Equal(t, v.DotXYZ(1, 2, 3), v.Dot(u))
	assert.Equal(t, v.DotXYZ(2, 2, 2), v.DotScalar(2))
}

func TestResultPlacement(t *testing.T) {
	var o Ops[float64, num.Float64, *Vecd]
	v := NewVec[float64, num.Float64](2, 3, 6)

	r := o.AddScalarN(v, 1)
	assert.NotSame(t, v, r)
	assertComps(t, []float64{3, 4, 7}, r)
	assertComps(t, []float64{2, 3, 6}, v)

	res := ZeroTup[float64, num.Float64]()
	assert.Same(t, res, o.MulR(res, v, v))
	assertComps(t, []float64{4, 9, 36}, res)

	o.SubR(v, v, v)
	assert.True(t, v.IsExactlyZero())
}

func TestSquaredLength(t *testing.T) {
	v := NewVec[int32, num.Int32](2, 3, 6)
	assert.Equal(t, int32(49), v.SquaredLength())
	assert.Equal(t, int32(49), v.SafeSquaredLength())
	assert.Zero(t, ZeroVec[int32, num.Int32]().SafeTolSquaredLength(0))
}

func TestInvertAndReciprocal(t *testing.T) {
	v := NewVec[float64, num.Float64](2, 3, 6)
	assert.True(t, v.InvertN().InvertN().Equal(v))
	assertComps(t, []float64{-2, -3, -6}, v.InvertN())
	assertComps(t, []float64{1.0 / 2, 1.0 / 3, 1.0 / 6}, v.ReciprocalN())

	z := ZeroVec[float64, num.Float64]()
	assert.True(t, math.IsInf(z.ReciprocalN().X(), 1))
	assert.True(t, z.SafeReciprocalN().IsExactlyZero())
	assert.True(t, z.SafeTolReciprocalN(0.01).IsExactlyZero())

	assert.Panics(t, func() { ZeroVec[int64, num.Int64]().ReciprocalN() })
}

func TestDecimalArithmeticError(t *testing.T) {
	z := ZeroVec[*apd.Decimal, num.Decimal64]()
	err := recoverError(func() { z.ReciprocalN() })
	assert.ErrorIs(t, err, tuple.ErrArithmetic)
	assert.True(t, z.SafeReciprocalN().IsExactlyZero())
}
