package stats

import (
	"testing"

	"github.com/verte-zerg/elemquiz/internal/model"
)

func TestSelectWeakElements(t *testing.T) {
	aggs := []model.ElementAggregate{
		{Number: 1, Correct: 5, Incorrect: 0},
		{Number: 2, Correct: 1, Incorrect: 1},
		{Number: 3, Correct: 0, Incorrect: 2},
		{Number: 4, Correct: 3, Incorrect: 1},
	}
	weak := SelectWeakElements(aggs, 2)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak elements, got %v", weak)
	}
	for _, n := range []int{3, 2} {
		if _, ok := weak[n]; !ok {
			t.Fatalf("expected %d to be weak, got %v", n, weak)
		}
	}

	all := SelectWeakElements(aggs, 0)
	if len(all) != 3 {
		t.Fatalf("expected every missed element, got %v", all)
	}
	if _, ok := all[1]; ok {
		t.Fatalf("never-missed element must not be weak")
	}
	if len(SelectWeakElements(nil, 3)) != 0 {
		t.Fatalf("expected empty set for no stats")
	}
}
