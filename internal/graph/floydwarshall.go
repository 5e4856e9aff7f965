// File: internal/graph/floydwarshall.go
// Project: OS Final Project
// Version: 1.1.0

package graph

// FloydWarshall computes all-pairs shortest paths in O(n^3), caching the
// resulting distance and parent matrices on g. parent[i][j] = i where a
// direct edge (i,j) exists, and is updated to parent[k][j] whenever routing
// through k strictly improves dist[i][j]; parent[i][j] stays INF where i and
// j are unreachable from one another.
func (g *Graph) FloydWarshall() ([][]uint64, [][]uint64) {
	if g.dist != nil && g.parent != nil {
		return g.dist, g.parent
	}

	n := len(g.vertices)
	dist := g.AdjacencyMatrix()
	parent := make([][]uint64, n)
	for i := range parent {
		parent[i] = make([]uint64, n)
		for j := range parent[i] {
			if i != j && dist[i][j] != INF {
				parent[i][j] = uint64(i)
			} else {
				parent[i][j] = INF
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == INF {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == INF {
					continue
				}
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
					parent[i][j] = parent[k][j]
				}
			}
		}
	}

	g.dist = dist
	g.parent = parent
	return dist, parent
}

// ShortestPath reconstructs the s→t walk from the cached Floyd-Warshall
// parent matrix, returning the vertex sequence in forward order. Returns nil
// if s and t are not connected.
func (g *Graph) ShortestPath(s, t int) []int {
	dist, parent := g.FloydWarshall()
	if dist[s][t] == INF {
		return nil
	}
	if s == t {
		return []int{s}
	}

	path := []int{t}
	cur := t
	for cur != s {
		p := parent[s][cur]
		if p == INF {
			return nil
		}
		cur = int(p)
		path = append(path, cur)
	}

	// reverse into forward order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// LongestPath returns the largest finite pairwise distance in the cached
// Floyd-Warshall result, scanning the off-diagonal.
func (g *Graph) LongestPath() uint64 {
	dist, _ := g.FloydWarshall()
	var longest uint64
	for i := range dist {
		for j := range dist[i] {
			if i == j || dist[i][j] == INF {
				continue
			}
			if dist[i][j] > longest {
				longest = dist[i][j]
			}
		}
	}
	return longest
}

// AvgDistance returns the mean pairwise distance over the upper triangle
// (including the diagonal in the sum, per the original implementation's
// semantics), with the denominator excluding self-pairs: average pairwise
// distance, self-pairs excluded. Only finite entries are summed; if g is
// disconnected the caller must treat the result as meaningful only once
// INF entries have been filtered (they are skipped here).
func (g *Graph) AvgDistance() float64 {
	dist, _ := g.FloydWarshall()
	n := len(dist)
	if n <= 1 {
		return 0
	}

	var sum float64
	var count int
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if dist[i][j] == INF {
				continue
			}
			sum += float64(dist[i][j])
			count++
		}
	}
	count -= n // exclude self-pairs from the denominator
	if count <= 0 {
		return 0
	}
	return sum / float64(count)
}

// AllShortestPaths returns the shortest path between every ordered pair of
// distinct, mutually-reachable vertices.
func (g *Graph) AllShortestPaths() map[[2]int][]int {
	dist, _ := g.FloydWarshall()
	n := len(dist)
	paths := make(map[[2]int][]int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || dist[i][j] == INF {
				continue
			}
			paths[[2]int{i, j}] = g.ShortestPath(i, j)
		}
	}
	return paths
}
