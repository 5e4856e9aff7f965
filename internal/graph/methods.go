// File: internal/graph/methods.go
// Project: OS Final Project
// Version: 1.1.0

package graph

// HasVertex reports whether id names a vertex of g.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]
	return ok
}

// NumVertices returns the number of vertices in g.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges in g.
func (g *Graph) NumEdges() int { return len(g.edges) }

// VertexIDs returns the vertex ids in ascending order.
func (g *Graph) VertexIDs() []int { return g.order }

// AddEdge adds an undirected edge between u and v with the given weight,
// updating both endpoints' incidence lists and adjacency maps symmetrically
// and invalidating the distance cache. Self-loops and duplicate edges are
// rejected (per the specification's resolution of that open behavior).
func (g *Graph) AddEdge(u, v int, weight uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	uv, ok := g.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	k := keyFor(u, v)
	if _, exists := g.edges[k]; exists {
		return ErrDuplicateEdge
	}

	e := &Edge{U: u, V: v, Weight: weight}
	g.edges[k] = e
	uv.edges = append(uv.edges, e)
	vv.edges = append(vv.edges, e)
	uv.neighbors[v] = weight
	vv.neighbors[u] = weight

	g.invalidateCache()
	return nil
}

// RemoveEdge removes the edge between u and v if present. Idempotent on
// absence: removing an edge that does not exist is not an error.
func (g *Graph) RemoveEdge(u, v int) error {
	k := keyFor(u, v)
	e, ok := g.edges[k]
	if !ok {
		return nil
	}
	delete(g.edges, k)

	if uv, ok := g.vertices[u]; ok {
		delete(uv.neighbors, v)
		uv.edges = removeEdge(uv.edges, e)
	}
	if vv, ok := g.vertices[v]; ok {
		delete(vv.neighbors, u)
		vv.edges = removeEdge(vv.edges, e)
	}

	g.invalidateCache()
	return nil
}

func removeEdge(edges []*Edge, target *Edge) []*Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func (g *Graph) invalidateCache() {
	g.dist = nil
	g.parent = nil
}

// Neighbors returns the weight of every edge incident to id, keyed by the
// other endpoint. Returns ErrVertexNotFound if id is not a vertex of g.
func (g *Graph) Neighbors(id int) (map[int]uint64, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v.neighbors, nil
}

// TotalWeight returns the sum of all edge weights in g.
func (g *Graph) TotalWeight() uint64 {
	var total uint64
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}

// AdjacencyMatrix returns an n×n matrix with mat[i][i]=0 and INF where no
// edge connects i and j; symmetric by construction.
func (g *Graph) AdjacencyMatrix() [][]uint64 {
	n := len(g.vertices)
	mat := make([][]uint64, n)
	for i := range mat {
		mat[i] = make([]uint64, n)
		for j := range mat[i] {
			if i == j {
				mat[i][j] = 0
			} else {
				mat[i][j] = INF
			}
		}
	}
	for _, e := range g.edges {
		mat[e.U][e.V] = e.Weight
		mat[e.V][e.U] = e.Weight
	}
	return mat
}

// IsConnected runs a breadth-first search from vertex 0 and reports whether
// every vertex is reachable. The caller must ensure NumVertices() > 0;
// connectivity of the empty graph is undefined.
func (g *Graph) IsConnected() (bool, error) {
	n := len(g.vertices)
	if n == 0 {
		return false, ErrEmptyGraph
	}

	visited := make(map[int]bool, n)
	queue := []int{0}
	visited[0] = true
	count := 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for w := range g.vertices[u].neighbors {
			if !visited[w] {
				visited[w] = true
				count++
				queue = append(queue, w)
			}
		}
	}
	return count == n, nil
}
