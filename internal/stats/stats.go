// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/elemquiz/internal/elements"
	"github.com/verte-zerg/elemquiz/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Accuracy returns correct/total in [0, 1], or 0 when total is 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary of rounds.
func RenderSummary(w io.Writer, rounds []model.RoundAggregate) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds found.")
		return err
	}
	var totalAcc, bestAcc float64
	answers, perfect, retryPasses := 0, 0, 0
	for _, r := range rounds {
		acc := Accuracy(r.Score, r.Total)
		totalAcc += acc
		if acc > bestAcc {
			bestAcc = acc
		}
		if r.Total > 0 && r.Score == r.Total {
			perfect++
		}
		answers += r.Total
		retryPasses += r.RetryPasses
	}
	count := float64(len(rounds))
	lines := []string{
		"Summary",
		fmt.Sprintf("Rounds: %d", len(rounds)),
		fmt.Sprintf("Answers: %d", answers),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		fmt.Sprintf("Best Accuracy: %.2f%%", bestAcc*100),
		fmt.Sprintf("Perfect Rounds: %d", perfect),
		fmt.Sprintf("Avg Retry Passes: %.2f", float64(retryPasses)/count),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrend prints a sparkline of the moving-average accuracy, limited to
// the last width rounds when width is positive.
func RenderTrend(w io.Writer, rounds []model.RoundAggregate, window, width int) error {
	if len(rounds) == 0 {
		return nil
	}
	accs := make([]float64, len(rounds))
	for i, r := range rounds {
		accs[i] = Accuracy(r.Score, r.Total) * 100
	}
	accs = MovingAverage(accs, window)
	if width > 0 && len(accs) > width {
		accs = accs[len(accs)-width:]
	}
	last := accs[len(accs)-1]
	if _, err := fmt.Fprintf(w, "Accuracy Trend (window %d)\n", window); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "[%s] %.1f%%\n\n", Sparkline(accs), last); err != nil {
		return err
	}
	return nil
}

// RenderElementTable prints per-element aggregates, weakest first. top
// limits the number of rows when positive.
func RenderElementTable(w io.Writer, aggs []model.ElementAggregate, top int) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No element stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Weakest Elements"); err != nil {
		return err
	}
	tableRows := ElementRows(aggs, top)
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(ElementHeaders, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// ElementHeaders are the column titles of the per-element table.
var ElementHeaders = []string{"#", "Symbol", "Name", "Accuracy", "Correct", "Incorrect"}

// ElementRows formats aggregates as table rows, weakest first. top limits
// the number of rows when positive.
func ElementRows(aggs []model.ElementAggregate, top int) [][]string {
	rows := make([]model.ElementAggregate, len(aggs))
	copy(rows, aggs)
	sortWeakest(rows)
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		symbol, name := "?", "?"
		if e, ok := elements.ByNumber(r.Number); ok {
			symbol, name = e.Symbol, e.Name
		}
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Number),
			symbol,
			name,
			fmt.Sprintf("%.2f%%", accuracy(r)*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
		})
	}
	return tableRows
}

func sortWeakest(aggs []model.ElementAggregate) {
	sort.Slice(aggs, func(i, j int) bool {
		ai := accuracy(aggs[i])
		aj := accuracy(aggs[j])
		if ai == aj {
			return aggs[i].Number < aggs[j].Number
		}
		return ai < aj
	})
}
