package match

import "testing"

func expectMatch(t *testing.T, answer, correct string, threshold float64, want bool) {
	t.Helper()
	if got := IsCloseMatch(answer, correct, threshold); got != want {
		t.Fatalf("IsCloseMatch(%q, %q, %.2f) = %v, want %v (ratio %.3f)",
			answer, correct, threshold, got, want, Ratio(Normalize(answer), Normalize(correct)))
	}
}

func TestExactMatch(t *testing.T) {
	for _, s := range []string{"Hydrogen", "Oxygen", "Gold", "", "Rutherfordium"} {
		expectMatch(t, s, s, DefaultThreshold, true)
		expectMatch(t, s, s, 1, true)
	}
}

func TestCaseAndWhitespaceIgnored(t *testing.T) {
	expectMatch(t, "hydrogen", "Hydrogen", DefaultThreshold, true)
	expectMatch(t, "HYDROGEN", "Hydrogen", DefaultThreshold, true)
	expectMatch(t, "HyDrOgEn", "Hydrogen", DefaultThreshold, true)
	expectMatch(t, "oxygen", "OXYGEN", DefaultThreshold, true)
	expectMatch(t, " HYDROGEN ", "Hydrogen", 1, true)
	expectMatch(t, "Oxygen ", " Oxygen", 1, true)
}

func TestSmallTyposAccepted(t *testing.T) {
	cases := map[string]string{
		"Hydorgen":  "Hydrogen",
		"Ocygen":    "Oxygen",
		"Sliver":    "Silver",
		"Hydrogn":   "Hydrogen",
		"Oxyge":     "Oxygen",
		"Calium":    "Calcium",
		"Hydrogenn": "Hydrogen",
		"Oxygenn":   "Oxygen",
		"Telurium":  "Tellurium",
		"Telluriom": "Tellurium",
		"Oxigen":    "Oxygen",
		"Calcuim":   "Calcium",
		"Pottasium": "Potassium",
		"Magnesuim": "Magnesium",
		"Aluminium": "Aluminum",
		"Sulfer":    "Sulfur",
	}
	for answer, correct := range cases {
		expectMatch(t, answer, correct, DefaultThreshold, true)
	}
}

func TestUnrelatedRejected(t *testing.T) {
	expectMatch(t, "Iron", "Gold", DefaultThreshold, false)
	expectMatch(t, "Hydrogen", "Helium", DefaultThreshold, false)
	expectMatch(t, "Carbon", "Nitrogen", DefaultThreshold, false)
	expectMatch(t, "Neon", "Argon", DefaultThreshold, false)
}

func TestShortAnswersRejected(t *testing.T) {
	expectMatch(t, "Hyd", "Hydrogen", DefaultThreshold, false)
	expectMatch(t, "Ox", "Oxygen", DefaultThreshold, false)
	expectMatch(t, "Ca", "Calcium", DefaultThreshold, false)
}

func TestEmptyAnswers(t *testing.T) {
	expectMatch(t, "", "Hydrogen", DefaultThreshold, false)
	expectMatch(t, "   ", "Oxygen", DefaultThreshold, false)
	expectMatch(t, "", "Hydrogen", 0, true)
}

func TestCustomThreshold(t *testing.T) {
	expectMatch(t, "Hydrogn", "Hydrogen", 0.95, false)
	expectMatch(t, "Hydrogn", "Hydrogen", DefaultThreshold, true)
	expectMatch(t, "Hidrogen", "Hydrogen", 0.7, true)
}

func TestRatio(t *testing.T) {
	if r := Ratio("", ""); r != 1 {
		t.Fatalf("expected empty strings to be identical, got %.3f", r)
	}
	if r := Ratio("abc", ""); r != 0 {
		t.Fatalf("expected 0 against empty, got %.3f", r)
	}
	// hyd + gen + o out of 16 runes.
	if r := Ratio("hydorgen", "hydrogen"); r != 14.0/16.0 {
		t.Fatalf("unexpected ratio %.4f", r)
	}
	if r := Ratio("abcd", "dcba"); r != 2.0/8.0 {
		t.Fatalf("unexpected ratio for reversed string %.4f", r)
	}
}

func TestRatioCountsRunes(t *testing.T) {
	if r := Ratio("öl", "öl"); r != 1 {
		t.Fatalf("expected identical multibyte strings to score 1, got %.3f", r)
	}
	if !IsClose("ÖSTERREICH", "österreich") {
		t.Fatalf("expected unicode lowercasing to match")
	}
}
