// File: internal/graph/stats.go
// Project: OS Final Project
// Description: MST report formatting (edge count, total weight, longest path, avg distance)
// Version: 1.1.0

package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Stats assembles the human-readable bundle an MST response carries: vertex
// and edge counts, total weight, longest path, average distance, and every
// pairwise shortest path. Computes Floyd-Warshall first if the cache is
// empty.
func (g *Graph) Stats() string {
	g.FloydWarshall()

	var b strings.Builder
	fmt.Fprintf(&b, "Number of vertices: %d\n", g.NumVertices())
	fmt.Fprintf(&b, "Number of edges: %d\n", g.NumEdges())
	fmt.Fprintf(&b, "Total weight of edges: %d\n", g.TotalWeight())
	fmt.Fprintf(&b, "Longest shortest path: %d\n", g.LongestPath())
	fmt.Fprintf(&b, "The average distance between vertices is: %s\n", formatFloat(g.AvgDistance()))
	b.WriteString("The shortest paths are: \n")
	b.WriteString(g.AllShortestPathsText())
	return b.String()
}

// AllShortestPathsText renders every pairwise shortest path as one line per
// ordered pair, in ascending (i, j) order, skipping unreachable pairs.
func (g *Graph) AllShortestPathsText() string {
	paths := g.AllShortestPaths()

	keys := make([][2]int, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d -> %d: %s\n", k[0], k[1], formatPath(paths[k]))
	}
	return b.String()
}

// ShortestPathText renders a single s→t path, or a "no path" message if s
// and t are not connected.
func (g *Graph) ShortestPathText(s, t int) string {
	path := g.ShortestPath(s, t)
	if path == nil {
		return fmt.Sprintf("no path between %d and %d", s, t)
	}
	return formatPath(path)
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
