// Package quiz runs question rounds over the element table.
//
// A Session owns the score counters and the retry queue of a round. Rounds
// drill until every missed question has been answered correctly once; with
// the default unlimited retry passes a round does not end while the answer
// source keeps answering one question wrong. Options.MaxRetryPasses caps the
// number of retry passes.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/verte-zerg/elemquiz/internal/generator"
	"github.com/verte-zerg/elemquiz/internal/match"
	"github.com/verte-zerg/elemquiz/internal/model"
)

// DefaultQuestions is the number of questions in a round when none is given.
const DefaultQuestions = 10

var (
	// ErrInputClosed is returned when the answer source ends mid-round.
	ErrInputClosed = errors.New("answer input closed")
	// ErrInvalidQuestionCount is returned for rounds with fewer than one question.
	ErrInvalidQuestionCount = errors.New("question count must be greater than 0")
	// ErrUnknownMode is returned for modes outside the question kinds.
	ErrUnknownMode = errors.New("unknown question mode")
)

var banner = strings.Repeat("=", 50)

// Options configures a Session. The zero value is usable.
type Options struct {
	// Rand drives element draws and random-mode resolution. Nil seeds from the clock.
	Rand *rand.Rand
	// Threshold is the fuzzy-match threshold for name answers. Nil selects
	// match.DefaultThreshold; zero accepts any name answer.
	Threshold *float64
	// MaxRetryPasses caps retry passes per round. Zero or less means unlimited.
	MaxRetryPasses int
	// WeakSet holds atomic numbers whose draw weight is multiplied by 1+WeakFactor.
	WeakSet    map[int]struct{}
	WeakFactor float64
	// Now returns the current time for round timestamps. Nil uses time.Now.
	Now func() time.Time
}

// Pending is a missed question queued for retry.
type Pending struct {
	Element model.Element
	Mode    model.Mode
}

// Outcome is the result of one asked question. Mode is always concrete.
type Outcome struct {
	Correct bool
	Element model.Element
	Mode    model.Mode
}

// RoundResult summarizes a played round.
type RoundResult struct {
	Mode        model.Mode
	Questions   int
	Score       int
	Total       int
	RetryPasses int
	Elements    []model.ElementStats
	Unresolved  []Pending
	StartedAt   time.Time
	EndedAt     time.Time
}

// Percentage returns the share of correct answers in percent.
func (r RoundResult) Percentage() float64 {
	return Percentage(r.Score, r.Total)
}

// Stats converts the result into a storable round record.
func (r RoundResult) Stats() model.RoundStats {
	return model.RoundStats{
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
		Mode:        r.Mode,
		Questions:   r.Questions,
		Score:       r.Score,
		Total:       r.Total,
		RetryPasses: r.RetryPasses,
		Unresolved:  len(r.Unresolved),
	}
}

// Session holds the quiz state for one player.
type Session struct {
	in             AnswerSource
	out            Sink
	gen            *generator.Generator
	threshold      float64
	maxRetryPasses int
	now            func() time.Time

	score        int
	total        int
	pending      []Pending
	elementStats map[int]*model.ElementStats
}

// NewSession constructs a Session over elements. Selection weights are
// computed once here.
func NewSession(elements []model.Element, in AnswerSource, out Sink, opts Options) *Session {
	threshold := match.DefaultThreshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		in:             in,
		out:            out,
		gen:            generator.NewWeighted(elements, opts.Rand, opts.WeakSet, opts.WeakFactor),
		threshold:      threshold,
		maxRetryPasses: opts.MaxRetryPasses,
		now:            now,
	}
}

// Score returns the number of correct answers in the current round.
func (s *Session) Score() int { return s.score }

// Total returns the number of answers given in the current round.
func (s *Session) Total() int { return s.total }

// Weights returns the per-element selection weights.
func (s *Session) Weights() []float64 { return s.gen.Weights() }

// ResetScore zeroes the score counters.
func (s *Session) ResetScore() {
	s.score = 0
	s.total = 0
}

// RandomElement draws a weighted-random element.
func (s *Session) RandomElement() model.Element {
	return s.gen.Element()
}

// AskQuestion asks one question and grades the answer. A nil element is
// drawn at random and ModeRandom resolves to a concrete kind; the returned
// Outcome carries the resolved kind so a retry asks the same question.
// Score counters are not touched.
func (s *Session) AskQuestion(mode model.Mode, element *model.Element) (Outcome, error) {
	if mode != model.ModeRandom && !mode.Concrete() {
		return Outcome{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	var e model.Element
	if element != nil {
		e = *element
	} else {
		e = s.RandomElement()
	}
	resolved := s.gen.ResolveMode(mode)

	prompt, err := Prompt(resolved, e)
	if err != nil {
		return Outcome{}, err
	}
	s.out.Display("\n" + prompt)
	answer, err := s.in.NextAnswer()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Outcome{}, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		return Outcome{}, fmt.Errorf("failed to read answer: %w", err)
	}
	correct, msg, err := Check(resolved, e, answer, s.threshold)
	if err != nil {
		return Outcome{}, err
	}
	s.out.Display(msg)
	return Outcome{Correct: correct, Element: e, Mode: resolved}, nil
}

// PlayRound plays questions fresh questions and then retries every miss in
// its original order, pass after pass, until none remain. The final score is
// displayed when the round completes. If the answer source closes mid-round
// the partial result is returned with ErrInputClosed.
func (s *Session) PlayRound(mode model.Mode, questions int) (RoundResult, error) {
	if questions < 1 {
		return RoundResult{}, fmt.Errorf("%w: got %d", ErrInvalidQuestionCount, questions)
	}
	if mode != model.ModeRandom && !mode.Concrete() {
		return RoundResult{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	s.ResetScore()
	s.pending = nil
	s.elementStats = map[int]*model.ElementStats{}
	result := RoundResult{Mode: mode, Questions: questions, StartedAt: s.now()}

	s.out.Display("\n" + banner)
	s.out.Display(fmt.Sprintf("Starting quiz with %d questions!", questions))
	s.out.Display(banner)

	for i := 0; i < questions; i++ {
		s.out.Display(fmt.Sprintf("\n--- Question %d/%d ---", i+1, questions))
		outcome, err := s.AskQuestion(mode, nil)
		if err != nil {
			return s.finish(result), err
		}
		s.record(outcome)
		if !outcome.Correct {
			s.pending = append(s.pending, Pending{Element: outcome.Element, Mode: outcome.Mode})
		}
	}

	if len(s.pending) > 0 {
		s.out.Display("\n" + banner)
		s.out.Display(fmt.Sprintf("RETRY: %d missed question(s)", len(s.pending)))
		s.out.Display(banner)
	}
	for pass := 1; len(s.pending) > 0; pass++ {
		if s.maxRetryPasses > 0 && pass > s.maxRetryPasses {
			s.out.Display(fmt.Sprintf("\nRetry limit reached with %d question(s) unresolved.", len(s.pending)))
			break
		}
		result.RetryPasses = pass
		s.out.Display(fmt.Sprintf("\n--- Retry Round %d ---", pass))
		var stillMissed []Pending
		for i, p := range s.pending {
			s.out.Display(fmt.Sprintf("\n[Retry %d/%d]", i+1, len(s.pending)))
			e := p.Element
			outcome, err := s.AskQuestion(p.Mode, &e)
			if err != nil {
				s.pending = append(stillMissed, s.pending[i:]...)
				return s.finish(result), err
			}
			s.record(outcome)
			if !outcome.Correct {
				stillMissed = append(stillMissed, p)
			}
		}
		s.pending = stillMissed
	}

	result = s.finish(result)
	s.showFinalScore()
	return result, nil
}

func (s *Session) record(outcome Outcome) {
	entry, ok := s.elementStats[outcome.Element.Number]
	if !ok {
		entry = &model.ElementStats{Number: outcome.Element.Number}
		s.elementStats[outcome.Element.Number] = entry
	}
	if outcome.Correct {
		s.score++
		entry.Correct++
	} else {
		entry.Incorrect++
	}
	s.total++
	s.out.Display(fmt.Sprintf("Score: %d/%d", s.score, s.total))
}

func (s *Session) finish(result RoundResult) RoundResult {
	result.Score = s.score
	result.Total = s.total
	result.EndedAt = s.now()
	result.Unresolved = append([]Pending(nil), s.pending...)
	result.Elements = make([]model.ElementStats, 0, len(s.elementStats))
	for _, entry := range s.elementStats {
		result.Elements = append(result.Elements, *entry)
	}
	sort.Slice(result.Elements, func(i, j int) bool {
		return result.Elements[i].Number < result.Elements[j].Number
	})
	return result
}

func (s *Session) showFinalScore() {
	s.out.Display("\n" + banner)
	s.out.Display("QUIZ COMPLETE!")
	s.out.Display(banner)
	s.out.Display(FinalScoreLine(s.score, s.total))
	s.out.Display(Grade(s.score, s.total).Message())
	s.out.Display("")
}
