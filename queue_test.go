package arangocorex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFifoOrder(t *testing.T) {
	q := newQueue[int]()
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	require.NoError(t, q.Push(3))
	assert.Equal(t, 3, q.Len())

	for _, expected := range []int{1, 2, 3} {
		item, ok := q.TryNext()
		require.True(t, ok)
		assert.Equal(t, expected, item)
	}

	_, ok := q.TryNext()
	assert.False(t, ok)
}

func TestQueueClose(t *testing.T) {
	q := newQueue[int]()
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))

	remaining := q.Close()
	assert.Equal(t, []int{1, 2}, remaining)

	require.ErrorIs(t, q.Push(3), ErrQueueClosed)

	_, ok := q.TryNext()
	assert.False(t, ok)
}
