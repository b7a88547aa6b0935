package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/elemquiz/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %.1f, got %.1f", i, want[i], got[i])
		}
	}
}

func TestSparklineFlatAndRange(t *testing.T) {
	if got := Sparkline([]float64{5, 5, 5}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 100}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	rounds := []model.RoundAggregate{
		{RoundID: 1, EndedAt: time.Unix(0, 0), Score: 10, Total: 10},
		{RoundID: 2, EndedAt: time.Unix(60, 0), Score: 10, Total: 20, RetryPasses: 3},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, rounds); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 2", "Answers: 30", "Avg Accuracy: 75.00%", "Best Accuracy: 100.00%", "Perfect Rounds: 1", "Avg Retry Passes: 1.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No rounds found.\n" {
		t.Fatalf("unexpected empty summary %q", buf.String())
	}
}

func TestRenderTrendLimitsWidth(t *testing.T) {
	rounds := make([]model.RoundAggregate, 10)
	for i := range rounds {
		rounds[i] = model.RoundAggregate{Score: i, Total: 10}
	}
	var buf bytes.Buffer
	if err := RenderTrend(&buf, rounds, 1, 4); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != "[ -*@] 90.0%" {
		t.Fatalf("unexpected trend line %q", lines[1])
	}
}

func TestRenderElementTableWeakestFirst(t *testing.T) {
	aggs := []model.ElementAggregate{
		{Number: 1, Correct: 4, Incorrect: 0},
		{Number: 26, Correct: 1, Incorrect: 3},
		{Number: 79, Correct: 1, Incorrect: 1},
	}
	var buf bytes.Buffer
	if err := RenderElementTable(&buf, aggs, 2); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title, header and 2 rows, got %q", lines)
	}
	if !strings.Contains(lines[2], "Iron") || !strings.Contains(lines[3], "Gold") {
		t.Fatalf("unexpected order: %q", lines)
	}
}
