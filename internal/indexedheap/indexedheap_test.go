// File: internal/indexedheap/indexedheap_test.go
// Project: OS Final Project
// Version: 1.0.0

package indexedheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/indexedheap"
)

func TestTopIsMinimumOfPushed(t *testing.T) {
	h := indexedheap.New()
	h.Push(0, 10)
	h.Push(1, 3)
	h.Push(2, 7)

	id, key, err := h.Top()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, uint64(3), key)
}

func TestPopDrainsInAscendingOrder(t *testing.T) {
	h := indexedheap.New()
	h.Push(0, 5)
	h.Push(1, 1)
	h.Push(2, 9)
	h.Push(3, 3)

	var order []uint64
	for !h.Empty() {
		_, key, err := h.Pop()
		require.NoError(t, err)
		order = append(order, key)
	}
	assert.Equal(t, []uint64{1, 3, 5, 9}, order)
}

func TestIndexOfMatchesHeapPosition(t *testing.T) {
	h := indexedheap.New()
	h.Push(5, 10)
	h.Push(6, 2)

	i, err := h.IndexOf(6)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "vertex 6 has the smallest key so it should sit at the root")
}

func TestDecreaseKeyReordersHeap(t *testing.T) {
	h := indexedheap.New()
	h.Push(0, 10)
	h.Push(1, 20)
	h.Push(2, 30)

	require.NoError(t, h.DecreaseKey(2, 1))

	id, key, err := h.Top()
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, uint64(1), key)
}

func TestDecreaseKeyRejectsNonImprovingKey(t *testing.T) {
	h := indexedheap.New()
	h.Push(0, 10)

	err := h.DecreaseKey(0, 10)
	assert.ErrorIs(t, err, indexedheap.ErrKeyNotDecreasing)

	err = h.DecreaseKey(0, 20)
	assert.ErrorIs(t, err, indexedheap.ErrKeyNotDecreasing)
}

func TestPopOnEmptyHeapErrors(t *testing.T) {
	h := indexedheap.New()
	_, _, err := h.Pop()
	assert.ErrorIs(t, err, indexedheap.ErrEmpty)
}

func TestDecreaseKeyOnMissingVertexErrors(t *testing.T) {
	h := indexedheap.New()
	err := h.DecreaseKey(99, 1)
	assert.ErrorIs(t, err, indexedheap.ErrNotFound)
}
