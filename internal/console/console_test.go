package console

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/verte-zerg/elemquiz/internal/elements"
	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/quiz"
)

func newMenu(t *testing.T, input string) (*Menu, *bytes.Buffer) {
	t.Helper()
	h, ok := elements.ByNumber(1)
	if !ok {
		t.Fatalf("hydrogen missing")
	}
	elems := []model.Element{h}
	var out bytes.Buffer
	lines := NewLineSource(strings.NewReader(input), &out)
	session := quiz.NewSession(elems, lines, quiz.WriterSink{W: &out}, quiz.Options{
		Rand: rand.New(rand.NewSource(1)),
	})
	return &Menu{Lines: lines, Out: &out, Session: session, Elements: elems}, &out
}

func TestLineSourceTrimsAndReturnsLastLine(t *testing.T) {
	var out bytes.Buffer
	src := NewLineSource(strings.NewReader("  He \r\nlast"), &out)
	got, err := src.NextAnswer()
	if err != nil || got != "He" {
		t.Fatalf("expected He, got %q err=%v", got, err)
	}
	got, err = src.NextAnswer()
	if err != nil || got != "last" {
		t.Fatalf("expected last, got %q err=%v", got, err)
	}
	if _, err := src.NextAnswer(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if strings.Count(out.String(), AnswerPrompt) != 3 {
		t.Fatalf("expected three prompts, got %q", out.String())
	}
}

func TestAskQuestionCount(t *testing.T) {
	m, out := newMenu(t, "abc\n0\n-3\n4\n")
	n, err := m.AskQuestionCount()
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
	text := out.String()
	if strings.Count(text, "Please enter a valid number.") != 1 {
		t.Fatalf("expected one invalid number message: %q", text)
	}
	if strings.Count(text, "Please enter a positive number.") != 2 {
		t.Fatalf("expected two positive number messages: %q", text)
	}
	if !strings.Contains(text, "How many questions? (default 10): ") {
		t.Fatalf("missing prompt: %q", text)
	}
}

func TestAskQuestionCountDefault(t *testing.T) {
	m, _ := newMenu(t, "\n")
	m.DefaultQuestions = 3
	n, err := m.AskQuestionCount()
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected default 3, got %d", n)
	}
}

func TestMenuFlow(t *testing.T) {
	m, out := newMenu(t, "9\n1\nabc\n0\n2\nH\nh\n6\n\n7\n")
	var rounds []quiz.RoundResult
	m.OnRound = func(r quiz.RoundResult) { rounds = append(rounds, r) }
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected one round, got %d", len(rounds))
	}
	r := rounds[0]
	if r.Mode != model.ModeNameToSymbol || r.Score != 2 || r.Total != 2 {
		t.Fatalf("unexpected round %+v", r)
	}
	text := out.String()
	for _, want := range []string{
		"PERIODIC TABLE QUIZ",
		"Invalid option. Please choose 1-7.",
		"Selected mode: Name → Symbol",
		"Please enter a valid number.",
		"Please enter a positive number.",
		"What is the chemical symbol for Hydrogen?",
		"Final Score: 2/2 (100.0%)",
		"Total: 1 elements",
		"Thanks for playing! Keep learning!",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	if strings.Count(text, "MAIN MENU") != 4 {
		t.Fatalf("expected menu shown four times, got %d", strings.Count(text, "MAIN MENU"))
	}
}

func TestMenuChoiceSelectsMode(t *testing.T) {
	m, out := newMenu(t, "3\n1\n1\n7\n")
	var rounds []quiz.RoundResult
	m.OnRound = func(r quiz.RoundResult) { rounds = append(rounds, r) }
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Mode != model.ModeNameToNumber || rounds[0].Score != 1 {
		t.Fatalf("unexpected rounds %+v", rounds)
	}
	if !strings.Contains(out.String(), "Selected mode: Name → Atomic Number") {
		t.Fatalf("missing selected mode line")
	}
}

func TestMenuInputClosed(t *testing.T) {
	m, _ := newMenu(t, "1\n")
	err := m.Run()
	if !errors.Is(err, quiz.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestMenuInputClosedMidRound(t *testing.T) {
	m, _ := newMenu(t, "2\n3\nHydrogen\n")
	called := false
	m.OnRound = func(quiz.RoundResult) { called = true }
	if err := m.Run(); !errors.Is(err, quiz.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if called {
		t.Fatalf("incomplete round must not be reported")
	}
}
