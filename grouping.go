// grouping.go — the Preference grouper (spec.md §4.4). Criteria connected
// by equivalence edges are collapsed into maximal importance groups via a
// union-find, grounded on the teacher's Kruskal DSU
// (graph/algorithms/prim_kruskal.go: path-compressed parent/rank maps),
// repurposed here from spanning-tree cycle avoidance to equivalence-class
// partitioning. Group identity is a stable integer index (spec.md §9
// "Group identity"), not the Python reference's object-identity sets.
package mcda

import "sort"

// groupSet assigns each criterion name to a 0-based group index and lists
// the member criteria of each group, in a deterministic order.
type groupSet struct {
	indexOf map[string]int // criterion name -> group index
	members [][]string     // group index -> sorted member criterion names
}

// buildGroups partitions criteria into importance groups using the
// equivalence edges in preferences. Criteria unmentioned by any equivalence
// preference form singleton groups.
func buildGroups(criteria []Criterion, preferences []Preference) *groupSet {
	parent := make(map[string]string, len(criteria))
	rank := make(map[string]int, len(criteria))
	for _, c := range criteria {
		parent[c.Name] = c.Name
		rank[c.Name] = 0
	}

	var find func(string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	for _, p := range preferences {
		if p.Equivalent {
			union(p.Criterion1, p.Criterion2)
		}
	}

	byRoot := make(map[string][]string, len(criteria))
	for _, c := range criteria {
		root := find(c.Name)
		byRoot[root] = append(byRoot[root], c.Name)
	}

	roots := make([]string, 0, len(byRoot))
	for root := range byRoot {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	gs := &groupSet{
		indexOf: make(map[string]int, len(criteria)),
		members: make([][]string, 0, len(roots)),
	}
	for _, root := range roots {
		members := byRoot[root]
		sort.Strings(members)
		idx := len(gs.members)
		gs.members = append(gs.members, members)
		for _, name := range members {
			gs.indexOf[name] = idx
		}
	}
	return gs
}

// count returns the number of importance groups.
func (gs *groupSet) count() int { return len(gs.members) }

// groupOf returns the group index owning criterion.
func (gs *groupSet) groupOf(criterion string) int { return gs.indexOf[criterion] }
