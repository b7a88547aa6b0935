package stats

import (
	"github.com/verte-zerg/elemquiz/internal/model"
)

// SelectWeakElements selects the lowest-accuracy elements that were missed
// at least once.
func SelectWeakElements(aggs []model.ElementAggregate, top int) map[int]struct{} {
	weakSet := map[int]struct{}{}
	candidates := make([]model.ElementAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	if len(candidates) == 0 {
		return weakSet
	}
	sortWeakest(candidates)
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		weakSet[candidates[i].Number] = struct{}{}
	}
	return weakSet
}

func accuracy(agg model.ElementAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
