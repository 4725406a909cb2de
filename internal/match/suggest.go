package match

// DefaultThreshold is the minimum similarity Suggest accepts.
const DefaultThreshold = 0.5

// Suggest returns the known name closest to name after normalization.
// Ties keep the earlier candidate. It reports false when no candidate
// reaches threshold.
func Suggest(name string, known []string, threshold float64) (string, bool) {
	norm := NormalizeTypeName(name)

	best, bestScore := "", -1.0
	for _, k := range known {
		score := Similarity(norm, NormalizeTypeName(k))
		if score > bestScore {
			best, bestScore = k, score
		}
	}

	if bestScore < threshold {
		return "", false
	}

	return best, true
}
