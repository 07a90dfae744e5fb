package vec2

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats/scalar"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

func TestLengthWorkedExample(t *testing.T) {
	v := NewVec[float64, num.Float64](3, 4)

	assert.Equal(t, 5.0, Length(v))
	assert.Equal(t, 0.2, ReciprocalLength(v))
	assertXY(t, 0.6, 0.8, NormalizeN(v))
	assertXY(t, 3, 4, v)
}

func TestSmallVectorPolicies(t *testing.T) {
	v := NewVec[float64, num.Float64](0.001, -0.002)

	assert.Zero(t, SafeTolLength(v, 0.01))
	assert.Zero(t, SafeTolReciprocalLength(v, 0.01))
	assert.True(t, SafeTolNormalizeN(v, 0.01).IsExactlyZero())

	l := Length(v)
	assert.Greater(t, l, 0.0)
	assert.True(t, scalar.EqualWithinAbs(math.Sqrt(5e-6), l, tol))
	assert.Equal(t, l, SafeLength(v))
}

func TestPoliciesAgreeOnNonZero(t *testing.T) {
	vs := []*Vecd{
		NewVec[float64, num.Float64](3, 4),
		NewVec[float64, num.Float64](-1, 0),
		NewVec[float64, num.Float64](0.5, 1e6),
	}
	for _, v := range vs {
		t.Run(v.String(), func(t *testing.T) {
			assert.Equal(t, Length(v), SafeLength(v))
			assert.Equal(t, Length(v), SafeTolLength(v, 0.01))
			assert.Equal(t, ReciprocalLength(v), SafeReciprocalLength(v))
			assert.Equal(t, ReciprocalLength(v), SafeTolReciprocalLength(v, 0.01))
			assert.True(t, NormalizeN(v).Equal(SafeNormalizeN(v)))
			assert.True(t, NormalizeN(v).Equal(SafeTolNormalizeN(v, 0.01)))
		})
	}
}

func TestNormalize(t *testing.T) {
	vs := [][2]float64{{3, 4}, {-7, 2}, {0, -0.5}, {1e-3, 1e3}}
	for _, c := range vs {
		v := NewVec[float64, num.Float64](c[0], c[1])
		n := NormalizeN(v)

		assert.InDelta(t, 1, Length(n), tol, "unit length for %v", v)
		// Same direction: n is a positive multiple of v.
		assertNear(t, n, v.MulScalarN(ReciprocalLength(v)))
		assert.Greater(t, n.Dot(v), 0.0)
	}
}

func TestNormalizePlacement(t *testing.T) {
	v := NewVec[float64, num.Float64](3, 4)

	res := ZeroTup[float64, num.Float64]()
	assert.Same(t, res, NormalizeR(res, v))
	assertXY(t, 0.6, 0.8, res)
	assertXY(t, 3, 4, v)

	assert.Same(t, v, Normalize(v))
	assertXY(t, 0.6, 0.8, v)
}

func TestNormalizeZero(t *testing.T) {
	zero := ZeroVec[float64, num.Float64]()

	n := NormalizeN(zero)
	assert.True(t, math.IsNaN(n.X()))
	assert.True(t, math.IsNaN(n.Y()))
	assert.True(t, math.IsInf(ReciprocalLength(zero), 1))

	assert.True(t, SafeNormalizeN(zero).IsExactlyZero())
	assert.Zero(t, SafeReciprocalLength(zero))

	res := NewVec[float64, num.Float64](1, 1)
	SafeNormalizeR(res, zero)
	assert.True(t, res.IsExactlyZero())

	w := NewVec[float64, num.Float64](0.001, 0)
	assert.Same(t, w, SafeTolNormalize(w, 0.01))
	assert.True(t, w.IsExactlyZero())
	SafeTolNormalizeR(w, NewVec[float64, num.Float64](0, 2), 0.01)
	assertXY(t, 0, 1, w)
	assert.True(t, SafeNormalize(ZeroVec[float64, num.Float64]()).IsExactlyZero())
}

func TestMetricOverConst(t *testing.T) {
	var m Metric[float32, num.Float32, Const[float32, num.Float32]]
	c := NewConst[float32, num.Float32](3, 4)

	assert.Equal(t, float32(5), m.Length(c))
	assertXY(t, 0.6, 0.8, m.NormalizeN(c))
	assert.True(t, m.SafeNormalizeN(ZeroConst[float32, num.Float32]()).IsExactlyZero())
}

func TestDecimalLength(t *testing.T) {
	d := num.MustDecimal
	v := NewVec[*apd.Decimal, num.Decimal128](d("3"), d("4"))

	assert.Zero(t, Length(v).Cmp(d("5")))
	assert.Zero(t, ReciprocalLength(v).Cmp(d("0.2")))
	assert.True(t, NormalizeN(v).Equal(NewConst[*apd.Decimal, num.Decimal128](d("0.6"), d("0.8"))))

	z := ZeroVec[*apd.Decimal, num.Decimal128]()
	err := recoverError(func() { NormalizeN(z) })
	assert.ErrorIs(t, err, tuple.ErrArithmetic)
	assert.True(t, SafeNormalizeN(z).IsExactlyZero())

	small := NewVec[*apd.Decimal, num.Decimal128](d("0.001"), d("-0.002"))
	assert.True(t, SafeTolLength(small, d("0.01")).IsZero())
	assert.False(t, Length(small).IsZero())
}

func TestFixedLength(t *testing.T) {
	v := NewVec[fixed.Int26_6, num.Fixed26_6](fixed.I(3), fixed.I(4))
	assert.Equal(t, fixed.I(5), Length(v))
	assert.Equal(t, fixed.I(25), v.SquaredLength())
}
