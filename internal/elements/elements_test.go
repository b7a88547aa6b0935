package elements

import (
	"testing"

	"github.com/verte-zerg/elemquiz/internal/model"
)

func TestTableHasAllElements(t *testing.T) {
	all := All()
	if len(all) != 118 {
		t.Fatalf("expected 118 elements, got %d", len(all))
	}
	for i, e := range all {
		if e.Number != i+1 {
			t.Fatalf("expected atomic number %d at index %d, got %d", i+1, i, e.Number)
		}
		if e.Symbol == "" || e.Name == "" {
			t.Fatalf("element %d is missing symbol or name", e.Number)
		}
	}
}

func TestValenceElectronsInRange(t *testing.T) {
	for _, e := range All() {
		if e.Valence < 0 || e.Valence > 8 {
			t.Fatalf("%s has invalid valence: %d", e.Name, e.Valence)
		}
	}
}

func TestDiscoveryYearsInRange(t *testing.T) {
	for _, e := range All() {
		if e.Discovered.Ancient {
			continue
		}
		if e.Discovered.Year < 1669 || e.Discovered.Year > 2025 {
			t.Fatalf("%s has invalid year: %d", e.Name, e.Discovered.Year)
		}
	}
}

func TestSymbolsAndNamesUnique(t *testing.T) {
	symbols := map[string]bool{}
	names := map[string]bool{}
	for _, e := range All() {
		if symbols[e.Symbol] {
			t.Fatalf("duplicate symbol %q", e.Symbol)
		}
		if names[e.Name] {
			t.Fatalf("duplicate name %q", e.Name)
		}
		symbols[e.Symbol] = true
		names[e.Name] = true
	}
}

func TestBySymbolCaseInsensitive(t *testing.T) {
	cases := map[string]string{
		"H":    "Hydrogen",
		"h":    "Hydrogen",
		"AU":   "Gold",
		"fe":   "Iron",
		" Og ": "Oganesson",
	}
	for symbol, name := range cases {
		e, ok := BySymbol(symbol)
		if !ok {
			t.Fatalf("expected %q to resolve", symbol)
		}
		if e.Name != name {
			t.Fatalf("expected %q for %q, got %q", name, symbol, e.Name)
		}
	}
	if _, ok := BySymbol("Xx"); ok {
		t.Fatalf("expected unknown symbol to miss")
	}
}

func TestByNameAndNumber(t *testing.T) {
	e, ok := ByName("  gold ")
	if !ok || e.Number != 79 {
		t.Fatalf("expected gold to resolve to 79, got %+v", e)
	}
	if _, ok := ByName("Gol"); ok {
		t.Fatalf("expected no fuzzy lookup on the data layer")
	}
	e, ok = ByNumber(8)
	if !ok || e.Symbol != "O" {
		t.Fatalf("expected oxygen at 8, got %+v", e)
	}
	for _, n := range []int{0, -1, 119} {
		if _, ok := ByNumber(n); ok {
			t.Fatalf("expected %d to miss", n)
		}
	}
}

func TestLookup(t *testing.T) {
	for query, number := range map[string]int{"26": 26, "fe": 26, "Iron": 26, "Sn": 50} {
		e, ok := Lookup(query)
		if !ok || e.Number != number {
			t.Fatalf("expected %q to resolve to %d, got %+v (ok=%v)", query, number, e, ok)
		}
	}
	if _, ok := Lookup("unobtainium"); ok {
		t.Fatalf("expected unknown query to miss")
	}
}

func TestKnownValenceElectrons(t *testing.T) {
	cases := map[string]int{"H": 1, "He": 2, "C": 4, "N": 5, "O": 6, "F": 7, "Ne": 8, "Na": 1, "Cl": 7}
	for symbol, valence := range cases {
		e, _ := BySymbol(symbol)
		if e.Valence != valence {
			t.Fatalf("%s should have valence %d, got %d", e.Name, valence, e.Valence)
		}
	}
}

func TestKnownDiscoveries(t *testing.T) {
	cases := map[string]model.Discovery{
		"Au": model.AncientDiscovery(),
		"Fe": model.AncientDiscovery(),
		"H":  model.DiscoveredIn(1766),
		"O":  model.DiscoveredIn(1774),
		"Og": model.DiscoveredIn(2006),
	}
	for symbol, want := range cases {
		e, _ := BySymbol(symbol)
		if e.Discovered != want {
			t.Fatalf("%s should be %s, got %s", e.Name, want, e.Discovered)
		}
	}
}

func TestAncientElements(t *testing.T) {
	for _, symbol := range []string{"C", "S", "Fe", "Cu", "Zn", "As", "Ag", "Sn", "Sb", "Au", "Hg", "Pb", "Bi"} {
		e, _ := BySymbol(symbol)
		if !e.Discovered.Ancient {
			t.Fatalf("%s should be ancient, got %s", e.Name, e.Discovered)
		}
	}
}
