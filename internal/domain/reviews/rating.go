package reviews

import "math"

// Rating returns the displayed rating for a set of review scores: nil when
// there are no reviews, otherwise the arithmetic mean rounded to the nearest
// integer. Halves round away from zero (math.Round), so 3.5 -> 4.
func Rating(scores []int) *int {
	if len(scores) == 0 {
		return nil
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	r := int(math.Round(float64(sum) / float64(len(scores))))
	return &r
}

// Scores extracts the score column from a loaded review set.
func Scores(rs []Review) []int {
	if len(rs) == 0 {
		return nil
	}
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Score)
	}
	return out
}
