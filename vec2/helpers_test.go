package vec2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func assertNear(t *testing.T, want, got Reader[float64]) {
	t.Helper()
	assert.True(t,
		scalar.EqualWithinAbs(want.X(), got.X(), tol) &&
			scalar.EqualWithinAbs(want.Y(), got.Y(), tol),
		"want (%v, %v), got (%v, %v)", want.X(), want.Y(), got.X(), got.Y())
}

func assertXY[T comparable](t *testing.T, x, y T, got Reader[T]) {
	t.Helper()
	assert.Equal(t, x, got.X(), "x")
	assert.Equal(t, y, got.Y(), "y")
}
