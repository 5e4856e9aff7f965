// File: internal/indexedheap/indexedheap.go
// Project: OS Final Project
// Description: Binary min-heap with decrease_key keyed by vertex id
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Package indexedheap implements a binary min-heap over (vertex id, key)
// pairs supporting decrease_key by vertex id in O(log n).
//
// The specification's design notes call out that keying the index map by
// the full (vertex, key) composite is fragile: the map key changes the
// moment the key component changes. This implementation instead keys the
// index map by the stable vertex id, with a parallel keys slice carrying
// the current key for each heap slot; DecreaseKey updates both the key
// array and the index map in lock-step.
package indexedheap

import "errors"

// ErrEmpty is returned by Pop and Top on an empty heap.
var ErrEmpty = errors.New("indexedheap: heap is empty")

// ErrNotFound is returned when a vertex id has no entry in the heap.
var ErrNotFound = errors.New("indexedheap: vertex not present")

// ErrKeyNotDecreasing is returned by DecreaseKey when newKey does not
// strictly improve on the current key.
var ErrKeyNotDecreasing = errors.New("indexedheap: new key is not smaller")

// Heap is a binary min-heap of (vertexID, key) pairs ordered by key
// ascending.
type Heap struct {
	ids     []int         // heap[i] = vertex id at heap position i
	keys    []uint64      // keys[i] = current key of heap[i]
	indexOf map[int]int   // vertex id -> current heap position
}

// New creates an empty heap.
func New() *Heap {
	return &Heap{indexOf: make(map[int]int)}
}

// Empty reports whether the heap holds no elements.
func (h *Heap) Empty() bool { return len(h.ids) == 0 }

// Size returns the number of elements in the heap.
func (h *Heap) Size() int { return len(h.ids) }

// IndexOf returns the current heap position of vertexID.
func (h *Heap) IndexOf(vertexID int) (int, error) {
	i, ok := h.indexOf[vertexID]
	if !ok {
		return 0, ErrNotFound
	}
	return i, nil
}

// Push inserts vertexID with the given key, restoring the heap invariant.
func (h *Heap) Push(vertexID int, key uint64) {
	h.ids = append(h.ids, vertexID)
	h.keys = append(h.keys, key)
	i := len(h.ids) - 1
	h.indexOf[vertexID] = i
	h.siftUp(i)
}

// Top returns the vertex id with the smallest key without removing it.
func (h *Heap) Top() (int, uint64, error) {
	if h.Empty() {
		return 0, 0, ErrEmpty
	}
	return h.ids[0], h.keys[0], nil
}

// Pop removes and returns the vertex id with the smallest key.
func (h *Heap) Pop() (int, uint64, error) {
	if h.Empty() {
		return 0, 0, ErrEmpty
	}
	topID, topKey := h.ids[0], h.keys[0]
	last := len(h.ids) - 1

	h.swap(0, last)
	h.ids = h.ids[:last]
	h.keys = h.keys[:last]
	delete(h.indexOf, topID)

	if !h.Empty() {
		h.siftDown(0)
	}
	return topID, topKey, nil
}

// DecreaseKey lowers the key of vertexID to newKey and restores the heap
// invariant. Rejects newKey that does not strictly improve on the current
// key.
func (h *Heap) DecreaseKey(vertexID int, newKey uint64) error {
	i, ok := h.indexOf[vertexID]
	if !ok {
		return ErrNotFound
	}
	if newKey >= h.keys[i] {
		return ErrKeyNotDecreasing
	}
	h.keys[i] = newKey
	h.siftUp(i)
	return nil
}

func (h *Heap) swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.indexOf[h.ids[i]] = i
	h.indexOf[h.ids[j]] = j
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.keys[i] >= h.keys[parent] {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.ids)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.keys[left] < h.keys[smallest] {
			smallest = left
		}
		if right < n && h.keys[right] < h.keys[smallest] {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
