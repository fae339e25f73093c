package strandgraph

import (
	"sort"
	"strconv"
	"strings"
)

// strandShape is the part of a vertex's identity that canonicalization may
// not permute across: the ordered (name, toehold, complement) sequence of
// its domains. Bond labels are deliberately excluded — they are syntactic
// sugar from the input surface syntax (see package syntax) and are not
// kept in sync with the Current edge set after transitions, so they carry
// no structural information once a StrandGraph exists.
func strandShape(v VertexInstance) string {
	var b strings.Builder
	for i, d := range v.Strand.Domains {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(d.Name)
		if d.Toehold {
			b.WriteByte('^')
		}
		if d.Complement {
			b.WriteByte('*')
		}
	}
	return b.String()
}

// CanonicalKey returns a deterministic string that is equal for two strand
// graphs iff they are isomorphic respecting site colors, strand-domain
// order and edge kinds (spec.md §3's canonical-form equality contract).
// It is also a valid map key for the plausibility cache (spec.md §4.5).
func (sg *StrandGraph) CanonicalKey() string {
	return sg.Canonical().encode()
}

// Canonical returns sg re-labeled under the lexicographically minimal
// vertex permutation consistent with each vertex's strand shape (spec.md
// §9): vertices are grouped by shape, groups are ordered by shape string,
// and every permutation of vertices *within* a group is tried, keeping the
// relabeling whose encoding is lexicographically smallest. This is exact
// (not a heuristic signature) for the group sizes realistic inputs produce
// under maxComplexSize; see DESIGN.md for the bound on group size at which
// this degrades to a deterministic but non-exhaustive ordering.
func (sg *StrandGraph) Canonical() *StrandGraph {
	n := len(sg.Vertices)
	groups := map[string][]int{}
	for i, v := range sg.Vertices {
		shape := strandShape(v)
		groups[shape] = append(groups[shape], i)
	}
	shapes := make([]string, 0, len(groups))
	for s := range groups {
		shapes = append(shapes, s)
	}
	sort.Strings(shapes)

	// slot[i] = the canonical index reserved for the i-th member, in input
	// order, of its shape group.
	slotBase := map[string]int{}
	base := 0
	for _, s := range shapes {
		slotBase[s] = base
		base += len(groups[s])
	}

	// Guard against combinatorial blowup: beyond this size, permuting a
	// group exhaustively is not worth the cost for inputs this system is
	// meant to enumerate (maxComplexSize bounds realistic complexes), so we
	// fall back to input order within the oversized group. This keeps
	// Canonical total and deterministic; it only stops being a minimum
	// over *all* automorphisms once a single shape repeats more than this
	// many times in one complex.
	const maxExhaustiveGroup = 7

	var best *StrandGraph
	var bestEncoded string

	// permute walks every permutation of each group's original vertex
	// indices into that group's canonical slots, building a candidate
	// mapping old-vertex -> new-vertex, and evaluates it.
	var permuteGroup func(remainingShapes []string, mapping []int)
	permuteGroup = func(remainingShapes []string, mapping []int) {
		if len(remainingShapes) == 0 {
			cand := sg.relabel(mapping)
			enc := cand.encode()
			if best == nil || enc < bestEncoded {
				best, bestEncoded = cand, enc
			}
			return
		}
		shape := remainingShapes[0]
		rest := remainingShapes[1:]
		members := groups[shape]
		slot := slotBase[shape]
		if len(members) > maxExhaustiveGroup {
			for k, old := range members {
				mapping[old] = slot + k
			}
			permuteGroup(rest, mapping)
			return
		}
		permutations(members, func(order []int) {
			for k, old := range order {
				mapping[old] = slot + k
			}
			permuteGroup(rest, mapping)
		})
	}
	permuteGroup(shapes, make([]int, n))

	if best == nil {
		return sg
	}
	return best
}

// permutations invokes fn once per permutation of xs (Heap's algorithm),
// reusing xs's backing array across calls; fn must not retain the slice.
func permutations(xs []int, fn func([]int)) {
	a := make([]int, len(xs))
	copy(a, xs)
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			fn(a)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	generate(len(a))
}

// relabel returns a new StrandGraph where old vertex i is placed at
// mapping[i].
func (sg *StrandGraph) relabel(mapping []int) *StrandGraph {
	n := len(sg.Vertices)
	vertices := make([]VertexInstance, n)
	for old, nw := range mapping {
		vertices[nw] = sg.Vertices[old]
	}
	remap := func(s Site) Site { return Site{Vertex: mapping[s.Vertex], Index: s.Index} }
	remapSet := func(in EdgeSet) EdgeSet {
		out := make(EdgeSet, len(in))
		for e := range in {
			out[NewEdge(remap(e.A), remap(e.B))] = struct{}{}
		}
		return out
	}
	return &StrandGraph{
		Vertices:     vertices,
		Admissible:   remapSet(sg.Admissible),
		Toehold:      remapSet(sg.Toehold),
		Current:      remapSet(sg.Current),
		DomainLength: sg.DomainLength,
	}
}

// encode produces the canonical-key string for sg taken as-is (no further
// relabeling): vertex shapes in order, then each edge kind's sorted edge
// list. Two StrandGraphs with identical vertex order and edge sets encode
// identically; Canonical/CanonicalKey rely on trying every admissible
// relabeling and keeping the lexicographic minimum of this encoding.
func (sg *StrandGraph) encode() string {
	var b strings.Builder
	for i, v := range sg.Vertices {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strandShape(v))
	}
	b.WriteByte('|')
	writeEdges := func(tag byte, es []Edge) {
		b.WriteByte(tag)
		for _, e := range es {
			b.WriteByte('(')
			b.WriteString(strconv.Itoa(e.A.Vertex))
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(e.A.Index))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(e.B.Vertex))
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(e.B.Index))
			b.WriteByte(')')
		}
	}
	writeEdges('A', sg.Admissible.Slice())
	writeEdges('T', sg.Toehold.Slice())
	writeEdges('C', sg.Current.Slice())
	return b.String()
}
