package tuple

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		fail bool
	}{
		{"First", 0, 2, false},
		{"Last", 1, 2, false},
		{"Negative", -1, 2, true},
		{"PastEnd", 2, 2, true},
		{"FarPastEnd", 9, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(func() { CheckIndex("test", tt.i, tt.n) })
			if !tt.fail {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func TestCheckLen(t *testing.T) {
	assert.NoError(t, recoverError(func() { CheckLen("test", 3, 3) }))
	assert.ErrorIs(t, recoverError(func() { CheckLen("test", 2, 3) }), ErrSizeMismatch)
	assert.ErrorIs(t, recoverError(func() { CheckLen("test", 4, 3) }), ErrSizeMismatch)
}

func TestCheckRoom(t *testing.T) {
	assert.NoError(t, recoverError(func() { CheckRoom("test", 3, 3) }))
	assert.NoError(t, recoverError(func() { CheckRoom("test", 8, 3) }))
	assert.ErrorIs(t, recoverError(func() { CheckRoom("test", 2, 3) }), ErrSizeMismatch)
}

func TestCheckNotNilAndValid(t *testing.T) {
	assert.NoError(t, recoverError(func() { CheckNotNil("test", "r", true) }))
	assert.ErrorIs(t, recoverError(func() { CheckNotNil("test", "r", false) }), ErrNilArgument)

	assert.NoError(t, recoverError(func() { CheckValid("test", 0, true) }))
	assert.ErrorIs(t, recoverError(func() { CheckValid("test", 1, false) }), ErrInvalidComponent)
}

func TestArithmetic(t *testing.T) {
	cause := errors.New("division by zero")
	err := recoverError(func() { Arithmetic("div", cause) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArithmetic)
	assert.ErrorIs(t, err, cause)
}

func TestLoggerRecordsViolations(t *testing.T) {
	l, records := newCapturingLogger()
	prev := SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })

	_ = recoverError(func() { CheckIndex("vec2.At", 5, 2) })

	require.Len(t, *records, 1)
	r := (*records)[0]
	assert.Equal(t, "precondition violated", r.Message)
	op, ok := attr(r, "op")
	require.True(t, ok)
	assert.Equal(t, "vec2.At", op.String())
	index, ok := attr(r, "index")
	require.True(t, ok)
	assert.Equal(t, int64(5), index.Int64())
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	l, _ := newCapturingLogger()
	prev := SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })

	assert.Same(t, l, Logger())
	SetLogger(nil)
	assert.Equal(t, DefaultSLogger(), Logger())
}
