package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/elemquiz/internal/browse"
	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/quiz"
)

const (
	menuRule  = 30
	titleRule = 50
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB069"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
)

var menuModes = map[string]model.Mode{
	"1": model.ModeNameToSymbol,
	"2": model.ModeSymbolToName,
	"3": model.ModeNameToNumber,
	"4": model.ModeNumberToName,
	"5": model.ModeRandom,
}

// Menu runs the interactive main menu.
type Menu struct {
	Lines    *LineSource
	Out      io.Writer
	Session  *quiz.Session
	Elements []model.Element
	// DefaultQuestions is used when the question-count prompt is left blank.
	DefaultQuestions int
	// OnRound is called after every completed round.
	OnRound func(quiz.RoundResult)
}

// Run shows the menu until the player quits. Closed input ends the loop with
// quiz.ErrInputClosed.
func (m *Menu) Run() error {
	m.println("\n" + strings.Repeat("=", titleRule))
	m.println(titleStyle.Render("   PERIODIC TABLE QUIZ"))
	m.println("   Learn chemical symbols and atomic numbers!")
	m.println(strings.Repeat("=", titleRule))

	for {
		m.showOptions()
		choice, err := m.readLine("Select an option (1-7): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1", "2", "3", "4", "5":
			if err := m.playMode(menuModes[choice]); err != nil {
				return err
			}
		case "6":
			if err := m.browse(); err != nil {
				return err
			}
		case "7":
			m.println("\nThanks for playing! Keep learning!")
			return nil
		default:
			m.println(warnStyle.Render("Invalid option. Please choose 1-7."))
		}
	}
}

func (m *Menu) showOptions() {
	rule := strings.Repeat("-", menuRule)
	m.println("\nMAIN MENU")
	m.println(rule)
	for i, mode := range model.AllModes {
		m.println(fmt.Sprintf("%d. %s", i+1, mode.Label()))
	}
	m.println(fmt.Sprintf("%d. Browse All Elements", len(model.AllModes)+1))
	m.println(fmt.Sprintf("%d. Quit", len(model.AllModes)+2))
	m.println(rule)
}

func (m *Menu) playMode(mode model.Mode) error {
	m.println("\n" + selectedStyle.Render("Selected mode: "+mode.Label()))
	questions, err := m.AskQuestionCount()
	if err != nil {
		return err
	}
	result, err := m.Session.PlayRound(mode, questions)
	if err != nil {
		return err
	}
	if m.OnRound != nil {
		m.OnRound(result)
	}
	return nil
}

func (m *Menu) browse() error {
	if err := browse.RenderPlain(m.Out, m.Elements); err != nil {
		return fmt.Errorf("failed to render elements: %w", err)
	}
	_, err := m.readLine("\nPress Enter to continue...")
	return err
}

// AskQuestionCount prompts until a positive count is entered. A blank
// answer selects DefaultQuestions.
func (m *Menu) AskQuestionCount() (int, error) {
	def := m.DefaultQuestions
	if def < 1 {
		def = quiz.DefaultQuestions
	}
	prompt := fmt.Sprintf("How many questions? (default %d): ", def)
	for {
		answer, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			m.println(warnStyle.Render("Please enter a valid number."))
			continue
		}
		if n < 1 {
			m.println(warnStyle.Render("Please enter a positive number."))
			continue
		}
		return n, nil
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	line, err := m.Lines.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", quiz.ErrInputClosed, err)
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func (m *Menu) println(line string) {
	if _, err := fmt.Fprintln(m.Out, line); err != nil {
		// Best-effort output.
		_ = err
	}
}
