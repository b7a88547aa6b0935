package quiz

import "fmt"

// Verdict is the qualitative band of a final score.
type Verdict int

// Score bands from lowest to highest.
const (
	VerdictNeedsWork Verdict = iota
	VerdictKeepStudying
	VerdictGood
	VerdictExcellent
	VerdictPerfect
)

// Percentage returns score/total in percent, or 0 when total is 0.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Grade bands a final score: 100% perfect, 80% excellent, 60% good,
// 40% keep studying, below that needs work.
func Grade(score, total int) Verdict {
	if total > 0 && score == total {
		return VerdictPerfect
	}
	pct := Percentage(score, total)
	switch {
	case pct >= 80:
		return VerdictExcellent
	case pct >= 60:
		return VerdictGood
	case pct >= 40:
		return VerdictKeepStudying
	default:
		return VerdictNeedsWork
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictPerfect:
		return "perfect"
	case VerdictExcellent:
		return "excellent"
	case VerdictGood:
		return "good"
	case VerdictKeepStudying:
		return "keep studying"
	default:
		return "needs work"
	}
}

// Message returns the comment shown under the final score.
func (v Verdict) Message() string {
	switch v {
	case VerdictPerfect:
		return "Perfect score! You're a periodic table master!"
	case VerdictExcellent:
		return "Excellent work! Keep practicing!"
	case VerdictGood:
		return "Good effort! Room for improvement."
	case VerdictKeepStudying:
		return "Keep studying! You'll get there."
	default:
		return "Time to hit the books! Practice makes perfect."
	}
}

// FinalScoreLine formats the final score with its percentage.
func FinalScoreLine(score, total int) string {
	return fmt.Sprintf("Final Score: %d/%d (%.1f%%)", score, total, Percentage(score, total))
}
