package vec3

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

func TestAt(t *testing.T) {
	v := NewTup[float64, num.Float64](2, 3, 6)

	tests := []struct {
		name string
		i    int
		want float64
		err  error
	}{
		{"X", 0, 2, nil},
		{"Y", 1, 3, nil},
		{"Z", 2, 6, nil},
		{"Negative", -1, 0, tuple.ErrIndexOutOfRange},
		{"PastEnd", Size, 0, tuple.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			err := recoverError(func() { got = At[float64](v, tt.i) })
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetters(t *testing.T) {
	v := ZeroTup[int64, num.Int64]()
	assertComps(t, []int64{1, 2, 3}, v.SetXYZ(1, 2, 3))
	assertComps(t, []int64{7, 7, 7}, v.SetScalar(7))
	assertComps(t, []int64{3, 2, 1}, v.SetArray([]int64{3, 2, 1}))
	assertComps(t, []int64{3, 2, 0}, v.SetAt(Size-1, 0))

	err := recoverError(func() { v.SetAt(Size, 1) })
	assert.ErrorIs(t, err, tuple.ErrIndexOutOfRange)
	err = recoverError(func() { v.SetArray(make([]int64, Size+1)) })
	assert.ErrorIs(t, err, tuple.ErrSizeMismatch)
	err = recoverError(func() { v.ArrayInto(make([]int64, Size-1)) })
	assert.ErrorIs(t, err, tuple.ErrSizeMismatch)
	err = recoverError(func() { v.Set(nil) })
	assert.ErrorIs(t, err, tuple.ErrNilArgument)

	w := SetXYZ[int64](new(Tup[int64, num.Int64]), 1, 2, 3)
	assertComps(t, []int64{1, 2, 3}, w)
}

func TestAll(t *testing.T) {
	var got []int32
	for i, c := range NewTup[int32, num.Int32](1, 2, 3).All() {
		assert.Equal(t, len(got), i)
		got = append(got, c)
	}
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestInvalidComponent(t *testing.T) {
	b := num.BigIntOf
	v := ZeroTup[*big.Int, num.BigInt]()
	require.True(t, v.IsValid())

	err := recoverError(func() { v.SetXYZ(b(1), b(1), nil) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)
	assert.True(t, v.IsExactlyZero())
}

func TestEqualAndHash(t *testing.T) {
	a := NewConst[float64, num.Float64](math.NaN(), 2, 3)
	b := NewTup[float64, num.Float64](math.NaN(), 2, 3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := NewConst[float64, num.Float64](math.Copysign(0, -1), 2, 3)
	d := NewConst[float64, num.Float64](0, 2, 3)
	assert.False(t, c.Equal(d))
	assert.True(t, IsExactlyZero[float64, num.Float64](ZeroConst[float64, num.Float64]()))
}

func TestIsZero(t *testing.T) {
	v := NewTup[float64, num.Float64](0.001, 0.001, -0.002)
	assert.False(t, v.IsExactlyZero())
	assert.True(t, v.IsZero(0.01))
	assert.False(t, v.SetAt(Size-1, 1).IsZero(0.01))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2, 3)", NewConst[int32, num.Int32](1, 2, 3).String())
}

func TestTypedNilArguments(t *testing.T) {
	var (
		nilTup *Tup[float64, num.Float64]
		nilVec *Vecd
	)
	v := NewVec[float64, num.Float64](1, 2, 3)

	tests := []struct {
		name string
		f    func()
	}{
		{"TupOf", func() { TupOf[float64, num.Float64](nilTup) }},
		{"SubN", func() { v.SubN(nilTup) }},
		{"SubR", func() { v.SubR(nilTup, v) }},
		{"AddXYZN", func() { nilVec.AddXYZN(1, 2, 3) }},
		{"InvertN", func() { nilVec.InvertN() }},
		{"NormalizeN", func() { NormalizeN(nilVec) }},
		{"Set", func() { Set[float64](nilTup, v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, recoverError(tt.f), tuple.ErrNilArgument)
		})
	}
}

func TestConv(t *testing.T) {
	v := Conv[int64, num.Int64, float32](NewTup[float32, num.Float32](1.5, 2.5, 3.5))
	assertComps(t, []int64{1, 2, 3}, v)
}
