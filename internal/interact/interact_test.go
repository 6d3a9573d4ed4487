// ABOUTME: Tests for the drug interaction matcher.
// ABOUTME: Covers asymmetric lookup, severity attribution, and removal.
package interact

import (
	"testing"

	"github.com/harperreed/medtrack/internal/models"
)

func TestCheckWarfarinAspirin(t *testing.T) {
	var c Checker
	got := c.Check([]string{"Warfarin", "Aspirin"})

	if len(got) != 1 {
		t.Fatalf("Check() returned %d interactions, want 1", len(got))
	}
	in := got[0]
	if in.Drugs != [2]string{"Warfarin", "Aspirin"} {
		t.Errorf("Drugs = %v, want [Warfarin Aspirin]", in.Drugs)
	}
	if in.Severity != models.SeverityMedium {
		t.Errorf("Severity = %s, want medium", in.Severity)
	}
	if in.Recommendation == "" {
		t.Error("expected a recommendation")
	}
}

func TestCheckRemovalClearsInteraction(t *testing.T) {
	var c Checker
	if got := c.Check([]string{"Warfarin"}); len(got) != 0 {
		t.Errorf("single drug should have no interactions, got %d", len(got))
	}
	if got := c.Check([]string{"Aspirin"}); len(got) != 0 {
		t.Errorf("single drug should have no interactions, got %d", len(got))
	}
}

func TestCheckWarfarinIbuprofen(t *testing.T) {
	var c Checker
	got := c.Check([]string{"Warfarin", "Ibuprofen"})

	if len(got) != 1 {
		t.Fatalf("Check() returned %d interactions, want 1", len(got))
	}
	// Ibuprofen has no reference row, so severity stays with Warfarin.
	if got[0].Severity != models.SeverityHigh {
		t.Errorf("Severity = %s, want high", got[0].Severity)
	}
}

func TestCheckAsymmetricLookup(t *testing.T) {
	var c Checker
	// Ibuprofen first: its row is absent, and the asymmetric lookup only
	// queries the first drug's side, so the pair is not flagged.
	got := c.Check([]string{"Ibuprofen", "Lisinopril"})
	if len(got) != 0 {
		t.Errorf("asymmetric Check() flagged %d interactions, want 0", len(got))
	}

	sym := Checker{Symmetric: true}
	got = sym.Check([]string{"Ibuprofen", "Lisinopril"})
	if len(got) != 1 {
		t.Fatalf("symmetric Check() flagged %d interactions, want 1", len(got))
	}
	if got[0].Drugs != [2]string{"Lisinopril", "Ibuprofen"} {
		t.Errorf("Drugs = %v, want [Lisinopril Ibuprofen]", got[0].Drugs)
	}
}

func TestCheckNoKnownDrugs(t *testing.T) {
	var c Checker
	got := c.Check([]string{"Acetaminophen", "Omeprazole"})
	if len(got) != 0 {
		t.Errorf("Check() = %d interactions, want 0", len(got))
	}
}

func TestCheckThreeWay(t *testing.T) {
	var c Checker
	got := c.Check([]string{"Warfarin", "Aspirin", "Ibuprofen"})

	// Pairs flagged: Warfarin+Aspirin, Warfarin+Ibuprofen, Aspirin+Ibuprofen.
	if len(got) != 3 {
		t.Fatalf("Check() returned %d interactions, want 3", len(got))
	}
}

func TestRecommendationBySeverity(t *testing.T) {
	tests := []struct {
		severity models.Severity
		want     string
	}{
		{models.SeverityHigh, "Consult doctor immediately. Do not take together without medical supervision."},
		{models.SeverityMedium, "Monitor closely. Consult healthcare provider about timing and dosage."},
		{models.SeverityLow, "Generally safe but monitor for side effects."},
	}
	for _, tt := range tests {
		if got := Recommendation(tt.severity); got != tt.want {
			t.Errorf("Recommendation(%s) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
