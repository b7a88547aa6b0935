package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Rounds      []model.RoundAggregate
	ElementAggs []model.ElementAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	rounds, err := st.ListRounds(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(rounds) > cfg.Last {
		rounds = rounds[len(rounds)-cfg.Last:]
	}
	aggs, err := st.ListElementAggregatesForRounds(ctx, roundIDs(rounds))
	if err != nil {
		return Report{}, err
	}
	return Report{Rounds: rounds, ElementAggs: aggs}, nil
}

// Render writes the summary, the accuracy trend, and the weakest elements.
func (r Report) Render(w io.Writer, cfg model.StatsConfig, trendWindow, trendWidth int) error {
	if err := RenderSummary(w, r.Rounds); err != nil {
		return err
	}
	if err := RenderTrend(w, r.Rounds, trendWindow, trendWidth); err != nil {
		return err
	}
	if len(r.Rounds) == 0 {
		return nil
	}
	return RenderElementTable(w, r.ElementAggs, cfg.Top)
}

func roundIDs(rounds []model.RoundAggregate) []int64 {
	ids := make([]int64, len(rounds))
	for i, r := range rounds {
		ids[i] = r.RoundID
	}
	return ids
}
