package vec2

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deedles.dev/tuple"
	"deedles.dev/tuple/num"
)

type tupd = Tup[float64, num.Float64]

func TestAt(t *testing.T) {
	v := NewTup[float64, num.Float64](3, 4)

	tests := []struct {
		name string
		i    int
		want float64
		err  error
	}{
		{name: "X", i: 0, want: 3},
		{name: "Y", i: 1, want: 4},
		{name: "Negative", i: -1, err: tuple.ErrIndexOutOfRange},
		{name: "PastEnd", i: Size, err: tuple.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			err := recoverError(func() { got = v.At(tt.i) })
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetAt(t *testing.T) {
	v := ZeroTup[int64, num.Int64]()
	assert.Same(t, v, v.SetAt(1, 9))
	assertXY(t, 0, 9, v)

	err := recoverError(func() { v.SetAt(2, 1) })
	assert.ErrorIs(t, err, tuple.ErrIndexOutOfRange)
	assertXY(t, 0, 9, v)
}

func TestArray(t *testing.T) {
	v := NewTup[int32, num.Int32](1, 2)
	assert.Equal(t, []int32{1, 2}, v.Array())

	dst := make([]int32, 3)
	assert.Equal(t, []int32{1, 2, 0}, v.ArrayInto(dst))

	err := recoverError(func() { v.ArrayInto(make([]int32, 1)) })
	assert.ErrorIs(t, err, tuple.ErrSizeMismatch)
}

func TestSetArray(t *testing.T) {
	v := TupArray[int32, num.Int32]([]int32{5, 6})
	assertXY(t, 5, 6, v)

	for _, a := range [][]int32{nil, {1}, {1, 2, 3}} {
		err := recoverError(func() { v.SetArray(a) })
		assert.ErrorIs(t, err, tuple.ErrSizeMismatch, "len %d", len(a))
	}
	assertXY(t, 5, 6, v)
}

func TestAll(t *testing.T) {
	var got []float64
	for i, c := range NewTup[float64, num.Float64](7, 8).All() {
		assert.Equal(t, len(got), i)
		got = append(got, c)
	}
	assert.Equal(t, []float64{7, 8}, got)

	for range NewTup[float64, num.Float64](7, 8).All() {
		break
	}
}

func TestRoundTrip(t *testing.T) {
	v := new(tupd)
	v.SetXY(1.5, -2.5)
	assertXY(t, 1.5, -2.5, v)

	v.SetScalar(3)
	assertXY(t, 3, 3, v)

	v.Set(NewConst[float64, num.Float64](9, 10))
	assertXY(t, 9, 10, v)

	w := SetXY[float64](new(tupd), 1, 2)
	assertXY(t, 1, 2, w)
	assert.Same(t, w, SetScalar[float64](w, 0))
}

func TestNilReader(t *testing.T) {
	v := ZeroTup[float64, num.Float64]()

	err := recoverError(func() { v.Set(nil) })
	assert.ErrorIs(t, err, tuple.ErrNilArgument)

	err = recoverError(func() { TupOf[float64, num.Float64](nil) })
	assert.ErrorIs(t, err, tuple.ErrNilArgument)
}

func TestInvalidComponent(t *testing.T) {
	v := NewTup[*big.Int, num.BigInt](num.BigIntOf(1), num.BigIntOf(2))

	err := recoverError(func() { v.SetXY(num.BigIntOf(3), nil) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)
	assert.Equal(t, "(1, 2)", v.String(), "a failed SetXY changes nothing")

	err = recoverError(func() { v.SetY(nil) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)

	err = recoverError(func() { NewConst[*big.Int, num.BigInt](nil, nil) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)
}

func TestZeroTupIsValid(t *testing.T) {
	assert.True(t, ZeroTup[*big.Int, num.BigInt]().IsValid())
	assert.True(t, ZeroConst[*big.Int, num.BigInt]().IsExactlyZero())
	assert.False(t, new(Tup[*big.Int, num.BigInt]).IsValid())
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		tol   float64
		exact bool
		near  bool
	}{
		{name: "Zero", exact: true, near: true},
		{name: "NegativeZero", x: math.Copysign(0, -1), exact: true, near: true},
		{name: "Small", x: 0.001, y: -0.002, tol: 0.01, near: true},
		{name: "OnBoundary", x: 0.01, y: -0.01, tol: 0.01, near: true},
		{name: "OneComponentOut", x: 0.001, y: 0.5, tol: 0.01},
		{name: "Large", x: 3, y: 4, tol: 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTup[float64, num.Float64](tt.x, tt.y)
			assert.Equal(t, tt.exact, v.IsExactlyZero())
			assert.Equal(t, tt.near, v.IsZero(tt.tol))
		})
	}
}

func TestIsZeroChecksEveryDecimalComponent(t *testing.T) {
	d := num.MustDecimal
	v := NewTup[*apd.Decimal, num.Decimal64](d("0.001"), d("5"))
	assert.False(t, v.IsZero(d("0.01")))

	v.SetY(d("-0.002"))
	assert.True(t, v.IsZero(d("0.01")))
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name string
		a, b Const[float64, num.Float64]
		want bool
	}{
		{"Same", NewConst[float64, num.Float64](1, 2), NewConst[float64, num.Float64](1, 2), true},
		{"Different", NewConst[float64, num.Float64](1, 2), NewConst[float64, num.Float64](2, 1), false},
		{"NaN", NewConst[float64, num.Float64](nan, 0), NewConst[float64, num.Float64](nan, 0), true},
		{"SignedZero", NewConst[float64, num.Float64](0, 0), NewConst[float64, num.Float64](negZero, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, Equal[float64, num.Float64](tt.b, tt.a))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHashIgnoresStorage(t *testing.T) {
	c := NewConst[int64, num.Int64](1, 2)
	v := NewVec[int64, num.Int64](1, 2)
	assert.Equal(t, c.Hash(), v.Hash())
	assert.NotEqual(t, c.Hash(), NewConst[int64, num.Int64](2, 1).Hash())

	d := num.MustDecimal
	assert.Equal(t,
		NewConst[*apd.Decimal, num.Decimal64](d("2.0"), d("1")).Hash(),
		NewConst[*apd.Decimal, num.Decimal64](d("2"), d("1.00")).Hash())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3, -4)", NewTup[int32, num.Int32](3, -4).String())
	assert.Equal(t, "(0.5, 2)", NewConst[float64, num.Float64](0.5, 2).String())
}

func TestConv(t *testing.T) {
	v := Conv[int32, num.Int32, float64](NewTup[float64, num.Float64](1.9, -2.5))
	assertXY(t, 1, -2, v)
}

func TestConstIsImmutableCopy(t *testing.T) {
	v := NewTup[float64, num.Float64](1, 2)
	c := ConstOf[float64, num.Float64](v)
	v.SetXY(5, 6)
	assertXY(t, 1, 2, c)
	assertXY(t, 7, 7, ConstScalar[float64, num.Float64](7))
	assertXY(t, 3, 4, ConstArray[float64, num.Float64]([]float64{3, 4}))
}

func TestNewFactory(t *testing.T) {
	v := ZeroTup[float64, num.Float64]()
	n := v.New(1, 2)
	assert.NotSame(t, v, n)
	assertXY(t, 0, 0, v)
	assertXY(t, 1, 2, n)
}

func TestTypedNilArguments(t *testing.T) {
	var (
		nilTup *Tup[float64, num.Float64]
		nilVec *Vecd
	)
	v := NewVec[float64, num.Float64](1, 2)

	tests := []struct {
		name string
		f    func()
	}{
		{"TupOf", func() { TupOf[float64, num.Float64](nilTup) }},
		{"AddN", func() { v.AddN(nilTup) }},
		{"AddR", func() { v.AddR(nilTup, v) }},
		{"AddXYN", func() { nilVec.AddXYN(1, 2) }},
		{"InvertN", func() { nilVec.InvertN() }},
		{"ReciprocalN", func() { nilVec.ReciprocalN() }},
		{"Length", func() { Length(nilVec) }},
		{"SetXY", func() { SetXY[float64](nilTup, 1, 2) }},
		{"Equal", func() { v.Equal(nilVec) }},
		{"OpsMulScalarN", func() { Ops[float64, num.Float64, *Vecd]{}.MulScalarN(nilVec, 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(tt.f)
			assert.ErrorIs(t, err, tuple.ErrNilArgument)
		})
	}
	assertXY(t, 1, 2, v)
}

func TestSetArrayValidatesFirst(t *testing.T) {
	b := num.BigIntOf
	v := NewTup[*big.Int, num.BigInt](b(1), b(2))

	err := recoverError(func() { v.SetArray([]*big.Int{b(3), nil}) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)
	assert.Equal(t, "(1, 2)", v.String())

	// The generic setter writes through the Writer one component at a
	// time, so a rejected Y leaves the new X in place.
	err = recoverError(func() { SetXY[*big.Int](v, b(3), nil) })
	assert.ErrorIs(t, err, tuple.ErrInvalidComponent)
	assert.Equal(t, "(3, 2)", v.String())
}
