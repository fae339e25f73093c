package strandgraph

// unionFind is a small disjoint-set structure over vertex indices, used to
// compute connectivity from the current edge set. Strand graphs are small
// (bounded by maxComplexSize), so a plain path-compressing union-find
// is more than fast enough; no union-by-rank bookkeeping is needed.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// vertexUnionFind builds the union-find over vertices induced by current
// edges: two strands are in the same component iff a chain of current
// bonds connects them (sites on the same strand are trivially connected).
func (sg *StrandGraph) vertexUnionFind() *unionFind {
	uf := newUnionFind(len(sg.Vertices))
	for e := range sg.Current {
		uf.union(e.A.Vertex, e.B.Vertex)
	}
	return uf
}

// IsConnected reports whether every vertex lies in one component.
func (sg *StrandGraph) IsConnected() bool {
	if len(sg.Vertices) == 0 {
		return true
	}
	uf := sg.vertexUnionFind()
	root := uf.find(0)
	for i := 1; i < len(sg.Vertices); i++ {
		if uf.find(i) != root {
			return false
		}
	}
	return true
}

// SameSpecies reports whether s1 and s2 currently lie in the same connected
// component, without constructing the split subgraphs.
func (sg *StrandGraph) SameSpecies(s1, s2 Site) bool {
	uf := sg.vertexUnionFind()
	return uf.find(s1.Vertex) == uf.find(s2.Vertex)
}

// ConnectedComponents partitions sg into one StrandGraph per connected
// component (spec.md §4.1), re-indexing vertices to a dense 0-based range
// per component and keeping only the edges whose endpoints both fall in
// that component.
func (sg *StrandGraph) ConnectedComponents() []*StrandGraph {
	if len(sg.Vertices) == 0 {
		return nil
	}
	uf := sg.vertexUnionFind()

	rootOrder := make([]int, 0)
	rootSeen := map[int]bool{}
	componentOf := make([]int, len(sg.Vertices)) // vertex -> component index
	for i := range sg.Vertices {
		r := uf.find(i)
		if !rootSeen[r] {
			rootSeen[r] = true
			rootOrder = append(rootOrder, r)
		}
	}
	compIndex := map[int]int{}
	for idx, r := range rootOrder {
		compIndex[r] = idx
	}
	for i := range sg.Vertices {
		componentOf[i] = compIndex[uf.find(i)]
	}

	newVertexIndex := make([]int, len(sg.Vertices)) // old vertex -> new index within its component
	counters := make([]int, len(rootOrder))
	for i := range sg.Vertices {
		c := componentOf[i]
		newVertexIndex[i] = counters[c]
		counters[c]++
	}

	out := make([]*StrandGraph, len(rootOrder))
	for c := range rootOrder {
		out[c] = &StrandGraph{
			Vertices:     make([]VertexInstance, counters[c]),
			Admissible:   EdgeSet{},
			Toehold:      EdgeSet{},
			Current:      EdgeSet{},
			DomainLength: sg.DomainLength,
		}
	}
	for i, v := range sg.Vertices {
		c := componentOf[i]
		out[c].Vertices[newVertexIndex[i]] = v
	}

	remap := func(s Site) Site {
		return Site{Vertex: newVertexIndex[s.Vertex], Index: s.Index}
	}
	place := func(sets []EdgeSet, pick func(*StrandGraph) EdgeSet) {
		for _, set := range sets {
			for e := range set {
				ca, cb := componentOf[e.A.Vertex], componentOf[e.B.Vertex]
				if ca != cb {
					continue
				}
				pick(out[ca])[NewEdge(remap(e.A), remap(e.B))] = struct{}{}
			}
		}
	}
	place([]EdgeSet{sg.Admissible}, func(s *StrandGraph) EdgeSet { return s.Admissible })
	place([]EdgeSet{sg.Toehold}, func(s *StrandGraph) EdgeSet { return s.Toehold })
	place([]EdgeSet{sg.Current}, func(s *StrandGraph) EdgeSet { return s.Current })

	return out
}
