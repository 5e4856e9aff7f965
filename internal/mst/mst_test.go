// File: internal/mst/mst_test.go
// Project: OS Final Project
// Version: 1.0.0

package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/graph"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/mst"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(0, 2, 10))
	return g
}

func TestPrimMatchesKruskalWeight(t *testing.T) {
	g := triangle(t)

	prim, err := mst.Create(mst.NamePrim)
	require.NoError(t, err)
	primResult, err := prim.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), primResult.TotalWeight())

	kruskal, err := mst.Create(mst.NameKruskal)
	require.NoError(t, err)
	kruskalResult, err := kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), kruskalResult.TotalWeight())
}

func TestComputeOnDisconnectedGraphErrors(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	prim, err := mst.Create(mst.NamePrim)
	require.NoError(t, err)
	_, err = prim.Compute(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	kruskal, err := mst.Create(mst.NameKruskal)
	require.NoError(t, err)
	_, err = kruskal.Compute(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestCreateRejectsUnknownStrategy(t *testing.T) {
	_, err := mst.Create("dijkstra")
	assert.Error(t, err)
}

func TestRegistryReturnsSharedStatelessInstance(t *testing.T) {
	a, err := mst.Create(mst.NamePrim)
	require.NoError(t, err)
	b, err := mst.Create(mst.NamePrim)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
