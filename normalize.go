// normalize.go — the Normalizer (spec.md §4.2). Maps every cell to [0,1]
// respecting polarity and ordinal encoding, ported from the Python
// reference's DecisionModel.normalize_data.
package mcda

// NormalizedMatrix maps an alternative identifier to a criterion-name ->
// [0,1] value map. 1 is always best, 0 always worst, regardless of the
// criterion's original polarity.
type NormalizedMatrix map[string]map[string]float64

// normalize builds a NormalizedMatrix from criteria and alternatives. The
// caller must have already run validate successfully: normalize assumes
// every cell is present, typed, and in-domain.
func normalize(criteria []Criterion, alternatives AlternativeMatrix) NormalizedMatrix {
	out := make(NormalizedMatrix, len(alternatives))
	for alt := range alternatives {
		out[alt] = make(map[string]float64, len(criteria))
	}

	for _, c := range criteria {
		if c.degenerate() {
			for alt := range alternatives {
				out[alt][c.Name] = 1.0
			}
			continue
		}

		switch kind := c.Kind.(type) {
		case Absolute:
			for alt, row := range alternatives {
				out[alt][c.Name] = normalizeAbsolute(row[c.Name].Number, kind.Min, kind.Max, c.Maximize)
			}
		case Ordinal:
			kMax := float64(len(kind.Values) - 1)
			for alt, row := range alternatives {
				rank := float64(kind.rank(row[c.Name].Category))
				out[alt][c.Name] = normalizeAbsolute(rank, 0, kMax, c.Maximize)
			}
		}
	}
	return out
}

// normalizeAbsolute applies the common absolute-scale formula: (v-min)/(max-min)
// when maximize, (max-v)/(max-min) otherwise. Callers guarantee max != min.
func normalizeAbsolute(v, min, max float64, maximize bool) float64 {
	if maximize {
		return (v - min) / (max - min)
	}
	return (max - v) / (max - min)
}
