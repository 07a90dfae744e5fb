package vec4

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deedles.dev/tuple/num"
)

func TestVecInPlace(t *testing.T) {
	v := NewVec[int64, num.Int64](1, 2, 2, 4)

	assert.Same(t, v, v.AddXYZW(1, 2, 3, 4))
	assertComps(t, []int64{2, 4, 5, 8}, v)

	v.Sub(NewConst[int64, num.Int64](1, 2, 3, 4)).MulScalar(2).DivScalar(2).Invert()
	assertComps(t, []int64{-1, -2, -2, -4}, v)

	v.SetScalar(0).SafeReciprocal()
	assert.True(t, v.IsExactlyZero())
	v.SetScalar(1).SafeTolReciprocal(0)
	assertComps(t, []int64{1, 1, 1, 1}, v)
	v.Reciprocal()
	assertComps(t, []int64{1, 1, 1, 1}, v)
}

func TestVecConstructors(t *testing.T) {
	v := VecArray[int32, num.Int32]([]int32{1, 2, 3, 4})
	assertComps(t, []int32{1, 2, 3, 4}, VecOf[int32, num.Int32](v))
	assertComps(t, []int32{3, 3, 3, 3}, VecScalar[int32, num.Int32](3))
	assert.Same(t, v.Tuple(), v.Tuple())
	assert.NotSame(t, v, v.New(1, 2, 3, 4))
}
