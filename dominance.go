// dominance.go — the t-Dominance tester (spec.md §4.6), the core of the
// engine. Decides whether normalized row Z t-dominates normalized row W via
// a fast weak-equivalence path and, failing that, a mass-transfer
// feasibility check over the importance DAG. Ported term-for-term from the
// Python reference's _check_t_dominance / _dominates_group_sums /
// _dominates_or_equal_group_sums, with every sum, capacity, excess, and
// transfer amount rounded to roundPlaces decimals to absorb floating-point
// drift (spec.md §9 "Floating-point policy").
package mcda

import "sort"

// groupSums computes, for each group index, the sum of a row's normalized
// values over that group's member criteria, rounded to roundPlaces.
func groupSums(row map[string]float64, gs *groupSet) []float64 {
	sums := make([]float64, gs.count())
	for idx, members := range gs.members {
		var s float64
		for _, c := range members {
			s += row[c]
		}
		sums[idx] = round8(s)
	}
	return sums
}

// round8 rounds v to roundPlaces decimal places.
func round8(v float64) float64 {
	scale := 1.0
	for i := 0; i < roundPlaces; i++ {
		scale *= 10
	}
	return float64(roundNearest(v*scale)) / scale
}

// roundNearest rounds to the nearest integer, matching Python's round()
// half-to-even only in the sense that we never rely on ties in practice
// here (sums of normalized floats); standard half-away-from-zero rounding
// is what the reference's round() reduces to for these magnitudes.
func roundNearest(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// tDominates decides whether Z t-dominates W, given the two normalized
// rows, the importance-group partition, and its transitive-closure DAG.
func tDominates(z, w map[string]float64, gs *groupSet, dag *importanceDAG) bool {
	zSum := groupSums(z, gs)
	wSum := groupSums(w, gs)

	if dominatesOrEqualSums(zSum, wSum) && dominatesSumsStrictly(zSum, wSum) {
		return true
	}

	return massTransfer(zSum, wSum, gs, dag)
}

// dominatesSumsStrictly reports whether zSum has at least one strictly
// greater entry than wSum (used only in combination with the componentwise
// >= check below — spec.md §4.6 "Fast path").
func dominatesSumsStrictly(zSum, wSum []float64) bool {
	for i := range zSum {
		if zSum[i] > wSum[i] {
			return true
		}
	}
	return false
}

// dominatesOrEqualSums reports whether zSum[i] >= wSum[i] for every group i.
func dominatesOrEqualSums(zSum, wSum []float64) bool {
	for i := range zSum {
		if zSum[i] < wSum[i] {
			return false
		}
	}
	return true
}

// groupProcessingOrder returns group indices ordered by descending
// ancestor-set size (least-important groups first), matching the Python
// reference's groups_sorted = sorted(..., key=len, reverse=True). Ties
// break by ascending group index for determinism.
func groupProcessingOrder(dag *importanceDAG) []int {
	order := make([]int, len(dag.direct))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		gi, gj := order[i], order[j]
		si, sj := len(dag.ancestors[gi]), len(dag.ancestors[gj])
		if si != sj {
			return si > sj
		}
		return gi < gj
	})
	return order
}

// sortedAncestors returns the ancestor indices of group in ascending order,
// per spec.md §9 "Transfer ordering" (determinism; the true/false outcome
// is invariant to this order, only intermediate states differ).
func sortedAncestors(dag *importanceDAG, group int) []int {
	anc := dag.ancestorsOf(group)
	out := make([]int, 0, len(anc))
	for a := range anc {
		out = append(out, a)
	}
	sort.Ints(out)
	return out
}

// massTransfer implements spec.md §4.6's mass-transfer path: W's excess
// mass in each group (processed least-important first) is redistributed
// upward along the importance DAG into groups where Z still has spare
// capacity. Returns true iff at least one transfer occurred and the fully
// adjusted W' is dominated-or-equal by Z in every group.
func massTransfer(zSum, wSum []float64, gs *groupSet, dag *importanceDAG) bool {
	wAdjusted := append([]float64(nil), wSum...)
	transferred := false

	for _, g := range groupProcessingOrder(dag) {
		if wAdjusted[g] <= zSum[g] {
			continue
		}

		excess := round8(wAdjusted[g] - zSum[g])
		wAdjusted[g] = zSum[g]

		ancestors := sortedAncestors(dag, g)
		if len(ancestors) == 0 {
			return false
		}

		for _, h := range ancestors {
			capacity := round8(zSum[h] - wAdjusted[h])
			if capacity <= 0 {
				continue
			}
			transfer := excess
			if capacity < transfer {
				transfer = capacity
			}
			wAdjusted[h] = round8(wAdjusted[h] + transfer)
			excess = round8(excess - transfer)
			if excess <= 0 {
				transferred = true
				break
			}
		}

		if excess > 0 {
			return false
		}
	}

	return transferred && dominatesOrEqualSums(zSum, wAdjusted)
}
