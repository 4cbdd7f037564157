package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	a := NewAllocator[int](0)
	before := AS.Get()

	block, err := a.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, block, 4)
	assert.Equal(t, []int{0, 0, 0, 0}, block)

	after := AS.Get()
	assert.Equal(t, before.AllocCount+1, after.AllocCount)
	assert.Equal(t, before.AllocBytes+4*elemSize[int](), after.AllocBytes)
}

func TestAllocateZero(t *testing.T) {
	a := NewAllocator[string](0)
	before := AS.Get()
	block, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, block)
	assert.Equal(t, before.AllocCount, AS.Get().AllocCount)
}

func TestAllocateFailures(t *testing.T) {
	before := AS.Get()

	_, err := NewAllocator[int](0).Allocate(-1)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = NewAllocator[[1024]byte](0).Allocate(math.MaxInt/1024 + 1)
	assert.ErrorIs(t, err, ErrAllocation)

	limited := NewAllocator[int](8)
	assert.Equal(t, 8, limited.Limit())
	_, err = limited.Allocate(9)
	assert.ErrorIs(t, err, ErrAllocation)
	block, err := limited.Allocate(8)
	require.NoError(t, err)
	assert.Len(t, block, 8)

	assert.Equal(t, before.FailedCount+3, AS.Get().FailedCount)
}

func TestAllocatorNegativeLimit(t *testing.T) {
	a := NewAllocator[int](-5)
	assert.Equal(t, 0, a.Limit())
	_, err := a.Allocate(1024)
	assert.NoError(t, err)

	var nilAllocator *Allocator[int]
	assert.Equal(t, 0, nilAllocator.Limit())
}

func TestRelease(t *testing.T) {
	a := NewAllocator[*int](0)
	block, err := a.Allocate(3)
	require.NoError(t, err)
	val := 1
	block[0] = &val

	before := AS.Get()
	a.Release(block)
	assert.Nil(t, block[0])

	after := AS.Get()
	assert.Equal(t, before.ReleaseCount+1, after.ReleaseCount)
	assert.Equal(t, before.ReleaseBytes+3*elemSize[*int](), after.ReleaseBytes)

	a.Release(nil)
	assert.Equal(t, after.ReleaseCount, AS.Get().ReleaseCount)
}

func TestZeroSizedElements(t *testing.T) {
	a := NewAllocator[struct{}](0)
	block, err := a.Allocate(math.MaxInt32)
	require.NoError(t, err)
	assert.Len(t, block, math.MaxInt32)
	a.Release(block)
}
