// Package model defines shared data structures.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Discovery is the year an element was first isolated or identified.
// Elements known since antiquity carry no year.
type Discovery struct {
	Ancient bool
	Year    int
}

// AncientDiscovery returns the discovery value for elements known since antiquity.
func AncientDiscovery() Discovery {
	return Discovery{Ancient: true}
}

// DiscoveredIn returns the discovery value for a known year.
func DiscoveredIn(year int) Discovery {
	return Discovery{Year: year}
}

// Before reports whether the discovery predates year. Ancient discoveries
// predate every year.
func (d Discovery) Before(year int) bool {
	return d.Ancient || d.Year < year
}

func (d Discovery) String() string {
	if d.Ancient {
		return "ancient"
	}
	return strconv.Itoa(d.Year)
}

// Element is one entry of the periodic table.
type Element struct {
	Number     int
	Symbol     string
	Name       string
	Valence    int
	Discovered Discovery
}

// Mode is a question kind.
type Mode int

// Question kinds. ModeRandom is a meta-mode that resolves to one of the
// concrete kinds per question.
const (
	ModeNameToSymbol Mode = iota + 1
	ModeSymbolToName
	ModeNameToNumber
	ModeNumberToName
	ModeRandom
)

// ConcreteModes lists the question kinds ModeRandom resolves to.
var ConcreteModes = []Mode{
	ModeNameToSymbol,
	ModeSymbolToName,
	ModeNameToNumber,
	ModeNumberToName,
}

// AllModes lists every selectable mode in menu order.
var AllModes = append(append([]Mode(nil), ConcreteModes...), ModeRandom)

// String returns the flag/storage name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNameToSymbol:
		return "name-symbol"
	case ModeSymbolToName:
		return "symbol-name"
	case ModeNameToNumber:
		return "name-number"
	case ModeNumberToName:
		return "number-name"
	case ModeRandom:
		return "random"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the human-readable menu label of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeNameToSymbol:
		return "Name → Symbol"
	case ModeSymbolToName:
		return "Symbol → Name"
	case ModeNameToNumber:
		return "Name → Atomic Number"
	case ModeNumberToName:
		return "Atomic Number → Name"
	case ModeRandom:
		return "Random Mix"
	default:
		return m.String()
	}
}

// Concrete reports whether m is one of the four fixed question kinds.
func (m Mode) Concrete() bool {
	return m >= ModeNameToSymbol && m <= ModeNumberToName
}

// ParseMode parses a mode name as produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllModes {
		if m.String() == name {
			return m, nil
		}
	}
	names := make([]string, len(AllModes))
	for i, m := range AllModes {
		names[i] = m.String()
	}
	return 0, fmt.Errorf("unknown mode %q (available: %s)", s, strings.Join(names, ", "))
}

// Config defines quiz settings.
type Config struct {
	Mode           Mode
	Questions      int
	Threshold      float64
	MaxRetryPasses int
	FocusWeak      bool
	WeakTop        int
	WeakFactor     float64
	WeakWindow     int
	Seed           int64
	History        bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Mode  string
	Since *time.Time
	Last  int
	Top   int
}

// RoundStats captures a completed quiz round.
type RoundStats struct {
	StartedAt   time.Time
	EndedAt     time.Time
	Mode        Mode
	Questions   int
	Score       int
	Total       int
	RetryPasses int
	Unresolved  int
}

// ElementStats stores per-element answer counts for a round.
type ElementStats struct {
	Number    int
	Correct   int
	Incorrect int
}

// ElementAggregate aggregates element stats across rounds.
type ElementAggregate struct {
	Number    int
	Correct   int
	Incorrect int
}

// RoundAggregate summarizes a round for reporting.
type RoundAggregate struct {
	RoundID     int64
	EndedAt     time.Time
	Mode        string
	Questions   int
	Score       int
	Total       int
	RetryPasses int
}
