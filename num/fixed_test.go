package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"deedles.dev/tuple"
)

func TestFixed26_6(t *testing.T) {
	var k Fixed26_6
	a, b := fixed.I(3), fixed.I(4)

	assert.Equal(t, fixed.I(7), k.Add(a, b))
	assert.Equal(t, fixed.I(12), k.Mul(a, b))
	assert.Equal(t, fixed.Int26_6(48), k.Div(a, b)) // 0.75
	assert.Equal(t, fixed.I(5), k.Sqrt(fixed.I(25)))
	assert.Equal(t, fixed.Int26_6(32), k.Sqrt(fixed.Int26_6(16))) // sqrt(0.25) = 0.5
	assert.Equal(t, fixed.I(3), k.Abs(-a))
	assert.Equal(t, 1, k.Cmp(b, a))
	assert.Equal(t, k.One(), fixed.I(1))
}

func TestFixed26_6DivisionByZeroPanics(t *testing.T) {
	var k Fixed26_6
	assert.Panics(t, func() { k.Div(k.One(), k.Zero()) })
}

func TestFixed52_12(t *testing.T) {
	var k Fixed52_12
	one := k.One()
	three, four := 3*one, 4*one

	assert.Equal(t, 7*one, k.Add(three, four))
	assert.Equal(t, 12*one, k.Mul(three, four))
	assert.Equal(t, fixed.Int52_12(3072), k.Div(three, four)) // 0.75
	assert.Equal(t, fixed.Int52_12(-3072), k.Div(-three, four))
	assert.Equal(t, 5*one, k.Sqrt(25*one))
	assert.Equal(t, three, k.Abs(-three))
}

func TestFixed52_12DivisionByZeroPanics(t *testing.T) {
	var k Fixed52_12
	assert.Panics(t, func() { k.Div(k.One(), k.Zero()) })
}

func TestFixedDivisionOverflow(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"26_6", func() { Fixed26_6{}.Div(fixed.I(1<<20), fixed.Int26_6(1)) }},
		{"26_6Negative", func() { Fixed26_6{}.Div(fixed.I(-(1 << 20)), fixed.Int26_6(1)) }},
		{"52_12", func() { Fixed52_12{}.Div(fixed.Int52_12(1<<60), fixed.Int52_12(1)) }},
		{"52_12Quotient", func() { Fixed52_12{}.Div(fixed.Int52_12(1<<51), fixed.Int52_12(1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(tt.f)
			require.Error(t, err)
			assert.ErrorIs(t, err, tuple.ErrArithmetic)
		})
	}

	// Large quotients that still fit are exact.
	var k Fixed26_6
	assert.Equal(t, fixed.I(1<<20), k.Div(fixed.I(1<<20), k.One()))
}
