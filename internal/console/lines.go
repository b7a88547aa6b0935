// Package console implements the line-based front end: reading answers from
// a terminal or pipe, the main menu and the question-count prompt.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AnswerPrompt is written before every quiz answer.
const AnswerPrompt = "Your answer: "

// LineSource reads trimmed lines from an input stream, printing a prompt
// before each read. It implements quiz.AnswerSource.
type LineSource struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineSource reads from r and writes prompts to w.
func NewLineSource(r io.Reader, w io.Writer) *LineSource {
	return &LineSource{r: bufio.NewReader(r), w: w}
}

// NextAnswer implements quiz.AnswerSource.
func (s *LineSource) NextAnswer() (string, error) {
	return s.ReadLine(AnswerPrompt)
}

// ReadLine prints prompt and returns the next line without surrounding
// whitespace. A final line without a newline is returned before io.EOF.
func (s *LineSource) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(s.w, prompt); err != nil {
			// Best-effort prompt.
			_ = err
		}
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
