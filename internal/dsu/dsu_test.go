// File: internal/dsu/dsu_test.go
// Project: OS Final Project
// Version: 1.0.0

package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/dsu"
)

func TestUnionFindConnectsTransitively(t *testing.T) {
	u := dsu.New(5)

	assert.False(t, u.Connected(0, 4))

	assert.True(t, u.Union(0, 1))
	assert.True(t, u.Union(1, 2))
	assert.True(t, u.Union(2, 3))

	assert.True(t, u.Connected(0, 3))
	assert.False(t, u.Connected(0, 4))
}

func TestUnionOnSameSetIsNoOp(t *testing.T) {
	u := dsu.New(3)
	assert.True(t, u.Union(0, 1))
	assert.False(t, u.Union(0, 1), "re-unioning already-joined elements must report no-op")
}

func TestFindCompressesPath(t *testing.T) {
	u := dsu.New(4)
	u.Union(0, 1)
	u.Union(1, 2)
	u.Union(2, 3)

	root := u.Find(3)
	for i := 0; i < 4; i++ {
		assert.Equal(t, root, u.Find(i))
	}
}
