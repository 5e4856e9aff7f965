// File: internal/graph/types.go
// Project: OS Final Project
// Description: Undirected weighted graph: adjacency, connectivity, shortest paths
// Version: 1.1.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Package graph implements the undirected, weighted, integer-vertex graph
// the specification's session state is built on: adjacency bookkeeping,
// connectivity, all-pairs shortest paths via Floyd-Warshall, and the
// human-readable stats bundle an MST request returns to its client.
//
// Per the specification's ownership design note, a Graph is the single
// owner of edge identity: edges live in one map keyed by their endpoint
// pair, and each Vertex's incidence list holds pointers into that same map
// rather than a private copy, avoiding a reference cycle between Vertex and
// Edge. A Graph is not internally synchronized — the owning session's mutex
// is the caller's responsibility, per the specification's concurrency model.
package graph

import (
	"errors"
	"math"
)

// INF is the sentinel distance meaning "no path", the maximum value of the
// unsigned machine word.
const INF = uint64(math.MaxUint64)

// Sentinel errors returned by Graph operations.
var (
	ErrVertexNotFound = errors.New("graph: vertex not found")
	ErrSelfLoop       = errors.New("graph: self-loops are not allowed")
	ErrDuplicateEdge  = errors.New("graph: edge already exists")
	ErrEmptyGraph     = errors.New("graph: connectivity undefined for an empty graph")
)

// Edge is an unordered pair of vertex ids with a weight. Equality is by
// endpoint pair regardless of order; ordering is by weight.
type Edge struct {
	U, V   int
	Weight uint64
}

// edgeKey is the canonical (smaller, larger) form of an endpoint pair, used
// to key the graph's edge set so (u,v) and (v,u) refer to the same edge.
type edgeKey struct{ a, b int }

func keyFor(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// Vertex is a node identified by a nonnegative integer id, holding its
// incident edges and an adjacency map for O(1) neighbor-weight lookup.
type Vertex struct {
	ID        int
	edges     []*Edge
	neighbors map[int]uint64
}

// Graph is a mapping of vertex id to Vertex plus the edge set, with an
// optional cached Floyd-Warshall result that mutation invalidates.
type Graph struct {
	vertices map[int]*Vertex
	order    []int // vertex ids in ascending order, for deterministic iteration
	edges    map[edgeKey]*Edge

	dist   [][]uint64 // cached all-pairs distances, nil until computed
	parent [][]uint64 // cached Floyd-Warshall parent matrix, nil until computed
}

// New creates a graph with vertices 0..n-1 and no edges.
func New(n int) *Graph {
	g := &Graph{
		vertices: make(map[int]*Vertex, n),
		order:    make([]int, n),
		edges:    make(map[edgeKey]*Edge),
	}
	for i := 0; i < n; i++ {
		g.vertices[i] = &Vertex{ID: i, neighbors: make(map[int]uint64)}
		g.order[i] = i
	}
	return g
}
