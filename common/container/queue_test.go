package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	assert.True(t, q.Empty())
	_, ok := q.Pop()
	assert.False(t, ok)

	for i := range 5 {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 5, q.Size())
	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, head)

	for i := range 5 {
		val, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, val)
	}
	assert.True(t, q.Empty())
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue[int]()
	next, want := 0, 0
	for round := range 50 {
		for range round%7 + 1 {
			require.NoError(t, q.Push(next))
			next++
		}
		for range round % 5 {
			val, ok := q.Pop()
			if !ok {
				break
			}
			assert.Equal(t, want, val)
			want++
		}
		assert.Equal(t, next-want, q.Size())
	}
	values := q.Value()
	require.Len(t, values, next-want)
	for i, val := range values {
		assert.Equal(t, want+i, val)
	}
}

func TestQueueShrinks(t *testing.T) {
	q := NewQueue[int]()
	for i := range 64 {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 64, q.Capacity())
	for range 62 {
		_, ok := q.Pop()
		require.True(t, ok)
	}
	assert.Equal(t, 2, q.Size())
	assert.Less(t, q.Capacity(), 64)
	assert.Equal(t, []int{62, 63}, q.Value())
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[string]()
	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))
	q.Clear()
	assert.True(t, q.Empty())
	assert.Empty(t, q.Value())
	require.NoError(t, q.Push("c"))
	val, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", val)
}
