package browse

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/elemquiz/internal/elements"
)

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlain(&buf, elements.All()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "PERIODIC TABLE OF ELEMENTS") {
		t.Fatalf("missing title")
	}
	if !strings.Contains(out, "Total: 118 elements") {
		t.Fatalf("missing total line")
	}
	var goldLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Gold") {
			goldLine = line
		}
	}
	if goldLine == "" || !strings.Contains(goldLine, " Au ") || !strings.HasSuffix(goldLine, "ancient") {
		t.Fatalf("unexpected gold line %q", goldLine)
	}
}

func TestRow(t *testing.T) {
	h, _ := elements.ByNumber(1)
	got := strings.Join(Row(h), "|")
	if got != "1|H|Hydrogen|1|1766" {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestModelNavigationAndQuit(t *testing.T) {
	m := NewModel(elements.All())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !strings.Contains(m.detail(), "Helium (He)") {
		t.Fatalf("expected cursor on helium, got %q", m.detail())
	}
	if !strings.Contains(m.View(), "Total: 118 elements") {
		t.Fatalf("view missing footer")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
