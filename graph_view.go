package mcda

import "sort"

// ImportanceGraph is a read-only view of a Model's importance-group
// partition and its direct strict-preference edges, exported solely for
// external renderers (see the visualize package) — mcda's own algorithms
// use the unexported groupSet/importanceDAG directly and never go through
// this view.
type ImportanceGraph struct {
	// Groups lists, for each group index, its member criterion names.
	Groups [][]string
	// Edges lists direct more-important relations as [from, to] group index
	// pairs, meaning group Edges[i][0] is more important than Edges[i][1].
	Edges [][2]int
}

// ImportanceGraph builds the exported view of m's importance groups and
// direct preference edges.
func (m *Model) ImportanceGraph() ImportanceGraph {
	groups := make([][]string, len(m.groups.members))
	for i, members := range m.groups.members {
		groups[i] = append([]string(nil), members...)
	}

	var edges [][2]int
	for less, more := range m.dag.direct {
		for target := range more {
			edges = append(edges, [2]int{target, less})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return ImportanceGraph{Groups: groups, Edges: edges}
}
