package quiz

import (
	"fmt"
	"io"
)

// AnswerSource supplies the next answer. It may block. io.EOF signals that
// no more answers will arrive.
type AnswerSource interface {
	NextAnswer() (string, error)
}

// AnswerFunc adapts a function to AnswerSource.
type AnswerFunc func() (string, error)

// NextAnswer implements AnswerSource.
func (f AnswerFunc) NextAnswer() (string, error) {
	return f()
}

// Sink receives game messages.
type Sink interface {
	Display(msg string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(msg string)

// Display implements Sink.
func (f SinkFunc) Display(msg string) {
	f(msg)
}

// WriterSink writes each message as a line to W.
type WriterSink struct {
	W io.Writer
}

// Display implements Sink.
func (s WriterSink) Display(msg string) {
	if _, err := fmt.Fprintln(s.W, msg); err != nil {
		// Best-effort output.
		_ = err
	}
}

// ScriptedAnswers replays a fixed sequence of answers and then reports io.EOF.
type ScriptedAnswers struct {
	answers []string
	next    int
}

// Answers returns a ScriptedAnswers over answers.
func Answers(answers ...string) *ScriptedAnswers {
	return &ScriptedAnswers{answers: answers}
}

// NextAnswer implements AnswerSource.
func (s *ScriptedAnswers) NextAnswer() (string, error) {
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Remaining returns the number of answers not yet consumed.
func (s *ScriptedAnswers) Remaining() int {
	return len(s.answers) - s.next
}
