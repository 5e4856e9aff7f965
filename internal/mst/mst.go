// File: internal/mst/mst.go
// Project: OS Final Project
// Description: Prim and Kruskal MST strategies
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-03

// Package mst implements the two Minimum Spanning Tree strategies the
// specification names — Prim with a decrease-key-capable indexed min-heap,
// Kruskal with a rank/path-compression disjoint-set union — behind a
// process-wide, lazily-initialized registry keyed by strategy name.
package mst

import (
	"errors"
	"sort"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/dsu"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/graph"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/indexedheap"
)

// ErrDisconnected is returned when the input graph is not connected; the
// reactor is expected to check connectivity before dispatch, but strategies
// defend the precondition too.
var ErrDisconnected = errors.New("mst: graph is not connected")

// Strategy computes a minimum spanning tree of g. Implementations are
// stateless and safe for concurrent use by multiple callers.
type Strategy interface {
	Compute(g *graph.Graph) (*graph.Graph, error)
}

// primStrategy grows the MST outward from vertex 0 using an indexed
// min-heap with decrease-key.
type primStrategy struct{}

// Compute implements Strategy for Prim's algorithm. See the specification's
// component design for the full algorithm: key[]<-INF, key[0]<-0, repeatedly
// pop the smallest key, relax its neighbors via decrease_key, and finally
// assemble the MST edges from the parent array before caching
// Floyd-Warshall on the result.
func (primStrategy) Compute(g *graph.Graph) (*graph.Graph, error) {
	n := g.NumVertices()
	result := graph.New(n)
	if n == 0 {
		return result, nil
	}

	const noParent = -1
	key := make([]uint64, n)
	parent := make([]int, n)
	inMST := make([]bool, n)
	for i := range key {
		key[i] = graph.INF
		parent[i] = noParent
	}
	key[0] = 0

	h := indexedheap.New()
	for i := 0; i < n; i++ {
		h.Push(i, key[i])
	}

	for !h.Empty() {
		u, _, err := h.Pop()
		if err != nil {
			return nil, err
		}
		inMST[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for w, weight := range neighbors {
			if !inMST[w] && weight < key[w] {
				key[w] = weight
				parent[w] = u
				if err := h.DecreaseKey(w, weight); err != nil {
					return nil, err
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if parent[i] != noParent {
			if err := result.AddEdge(parent[i], i, key[i]); err != nil {
				return nil, err
			}
		}
	}

	if connected, _ := result.IsConnected(); n > 0 && !connected {
		return nil, ErrDisconnected
	}

	result.FloydWarshall()
	return result, nil
}

// kruskalStrategy sorts all edges ascending by weight and greedily adds
// edges that do not close a cycle, tracked with a disjoint-set union.
type kruskalStrategy struct{}

// Compute implements Strategy for Kruskal's algorithm.
func (kruskalStrategy) Compute(g *graph.Graph) (*graph.Graph, error) {
	n := g.NumVertices()
	result := graph.New(n)
	if n == 0 {
		return result, nil
	}

	edges := collectEdges(g)
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf := dsu.New(n)
	added := 0
	for _, e := range edges {
		if added == n-1 {
			break
		}
		if uf.Union(e.U, e.V) {
			if err := result.AddEdge(e.U, e.V, e.Weight); err != nil {
				return nil, err
			}
			added++
		}
	}

	if added < n-1 {
		return nil, ErrDisconnected
	}

	result.FloydWarshall()
	return result, nil
}

func collectEdges(g *graph.Graph) []graph.Edge {
	edges := make([]graph.Edge, 0, g.NumEdges())
	seen := make(map[[2]int]bool)
	for _, id := range g.VertexIDs() {
		neighbors, _ := g.Neighbors(id)
		for w, weight := range neighbors {
			u, v := id, w
			if u > v {
				u, v = v, u
			}
			if seen[[2]int{u, v}] {
				continue
			}
			seen[[2]int{u, v}] = true
			edges = append(edges, graph.Edge{U: u, V: v, Weight: weight})
		}
	}
	return edges
}
