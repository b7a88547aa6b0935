package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/elemquiz/internal/match"
	"github.com/verte-zerg/elemquiz/internal/model"
)

// Prompt returns the question text for a concrete mode.
func Prompt(mode model.Mode, e model.Element) (string, error) {
	switch mode {
	case model.ModeNameToSymbol:
		return fmt.Sprintf("What is the chemical symbol for %s?", e.Name), nil
	case model.ModeSymbolToName:
		return fmt.Sprintf("What element has the symbol %s?", e.Symbol), nil
	case model.ModeNameToNumber:
		return fmt.Sprintf("What is the atomic number of %s?", e.Name), nil
	case model.ModeNumberToName:
		return fmt.Sprintf("What element has atomic number %d?", e.Number), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// Check grades answer for a concrete mode and returns the result message.
// Names accept fuzzy matches at threshold; symbols and numbers must be exact.
func Check(mode model.Mode, e model.Element, answer string, threshold float64) (bool, string, error) {
	switch mode {
	case model.ModeNameToSymbol:
		ok, msg := checkNameToSymbol(e, answer)
		return ok, msg, nil
	case model.ModeSymbolToName:
		ok, msg := checkSymbolToName(e, answer, threshold)
		return ok, msg, nil
	case model.ModeNameToNumber:
		ok, msg := checkNameToNumber(e, answer)
		return ok, msg, nil
	case model.ModeNumberToName:
		ok, msg := checkNumberToName(e, answer, threshold)
		return ok, msg, nil
	default:
		return false, "", fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

func details(e model.Element) string {
	return fmt.Sprintf("valence: %d, discovered: %s", e.Valence, e.Discovered)
}

func checkNameToSymbol(e model.Element, answer string) (bool, string) {
	if match.Normalize(answer) == match.Normalize(e.Symbol) {
		return true, fmt.Sprintf("Correct! %s = %s (%s)", e.Name, e.Symbol, details(e))
	}
	return false, fmt.Sprintf("Incorrect. The symbol for %s is %s (%s)", e.Name, e.Symbol, details(e))
}

func checkSymbolToName(e model.Element, answer string, threshold float64) (bool, string) {
	switch gradeName(e, answer, threshold) {
	case gradeExact:
		return true, fmt.Sprintf("Correct! %s = %s (%s)", e.Symbol, e.Name, details(e))
	case gradeClose:
		return true, fmt.Sprintf("Close enough! %s = %s (%s) (you typed: %s)", e.Symbol, e.Name, details(e), strings.TrimSpace(answer))
	default:
		return false, fmt.Sprintf("Incorrect. %s is the symbol for %s (%s)", e.Symbol, e.Name, details(e))
	}
}

func checkNameToNumber(e model.Element, answer string) (bool, string) {
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n == e.Number {
		return true, fmt.Sprintf("Correct! %s has atomic number %d (%s)", e.Name, e.Number, details(e))
	}
	return false, fmt.Sprintf("Incorrect. %s has atomic number %d (%s)", e.Name, e.Number, details(e))
}

func checkNumberToName(e model.Element, answer string, threshold float64) (bool, string) {
	switch gradeName(e, answer, threshold) {
	case gradeExact:
		return true, fmt.Sprintf("Correct! Atomic number %d is %s (%s)", e.Number, e.Name, details(e))
	case gradeClose:
		return true, fmt.Sprintf("Close enough! Atomic number %d is %s (%s) (you typed: %s)", e.Number, e.Name, details(e), strings.TrimSpace(answer))
	default:
		return false, fmt.Sprintf("Incorrect. Atomic number %d is %s (%s, %s)", e.Number, e.Name, e.Symbol, details(e))
	}
}

type nameGrade int

const (
	gradeWrong nameGrade = iota
	gradeClose
	gradeExact
)

func gradeName(e model.Element, answer string, threshold float64) nameGrade {
	if match.Normalize(answer) == match.Normalize(e.Name) {
		return gradeExact
	}
	if match.IsCloseMatch(answer, e.Name, threshold) {
		return gradeClose
	}
	return gradeWrong
}
