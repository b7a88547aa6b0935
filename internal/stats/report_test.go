package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "elemquiz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Minute)
		stats := model.RoundStats{
			StartedAt:   start,
			EndedAt:     start.Add(30 * time.Second),
			Mode:        model.ModeRandom,
			Questions:   2,
			Score:       2,
			Total:       3,
			RetryPasses: 1,
		}
		elems := []model.ElementStats{
			{Number: 1, Correct: 1},
			{Number: 6, Correct: 1, Incorrect: 1},
		}
		id, err := st.InsertRound(ctx, stats, elems)
		if err != nil {
			t.Fatalf("insert round: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{Mode: "random", Last: 2, Top: 5}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(report.Rounds))
	}
	if report.Rounds[0].RoundID != ids[1] || report.Rounds[1].RoundID != ids[2] {
		t.Fatalf("unexpected round ids: %+v", report.Rounds)
	}
	for _, agg := range report.ElementAggs {
		if agg.Number == 6 && agg.Incorrect != 2 {
			t.Fatalf("expected carbon aggregated over 2 rounds, got %+v", agg)
		}
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, cfg, 5, 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 2", "Accuracy Trend", "Weakest Elements", "Carbon"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
