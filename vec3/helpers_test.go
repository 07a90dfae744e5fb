package vec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func assertComps[T any](t *testing.T, want []T, got Reader[T]) {
	t.Helper()
	assert.Equal(t, want, Array(got))
}
