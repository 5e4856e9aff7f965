// File: internal/dsu/dsu.go
// Project: OS Final Project
// Description: Disjoint-set union with path compression and union-by-rank
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Package dsu implements a disjoint-set union (union-find) over a dense
// range of integer elements [0, n), with full path compression on Find and
// union-by-rank on Union, as Kruskal's MST strategy requires.
package dsu

// DSU is a disjoint-set union over the elements [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New creates a DSU with n singleton sets, one per element.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of the set containing x, compressing the
// path from x to the representative so every visited node points directly
// at it.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the sets containing x and y. Returns true if they were
// previously distinct sets (and were merged), false if x and y were already
// in the same set (a no-op).
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
