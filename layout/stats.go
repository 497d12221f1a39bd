package layout

import (
	"math"
	"sort"
)

// median returns the middle value, averaging the two middle values for an
// even count. The input is not modified.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mode returns the single most frequent value. ok is false for an empty
// input or when two values tie for the highest count.
func mode(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	best, bestCount, tied := 0, 0, false
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, tied = v, c, false
		case c == bestCount:
			tied = true
		}
	}
	if tied {
		return 0, false
	}
	return best, true
}

// roundSize rounds a font size to the nearest integer, ties to even
func roundSize(size float64) int {
	return int(math.RoundToEven(size))
}
