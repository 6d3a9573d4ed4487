// ABOUTME: Drug interaction matcher over a static reference table.
// ABOUTME: Pairwise O(n²) check with asymmetric lookup for compatibility.
package interact

import "github.com/harperreed/medtrack/internal/models"

// refEntry is one row of the drug reference table, keyed by drug name.
type refEntry struct {
	Interactions []string
	Severity     models.Severity
	Effects      string
}

// referenceTable is the static interaction reference set. Entries are
// asymmetric: a drug's row lists its known partners, and the reverse
// direction is not guaranteed to be present.
var referenceTable = map[string]refEntry{
	"Warfarin": {
		Interactions: []string{"Aspirin", "Ibuprofen"},
		Severity:     models.SeverityHigh,
		Effects:      "Increased bleeding risk",
	},
	"Aspirin": {
		Interactions: []string{"Warfarin", "Ibuprofen"},
		Severity:     models.SeverityMedium,
		Effects:      "Increased bleeding, stomach irritation",
	},
	"Metformin": {
		Interactions: []string{"Alcohol"},
		Severity:     models.SeverityMedium,
		Effects:      "Increased risk of lactic acidosis",
	},
	"Lisinopril": {
		Interactions: []string{"Ibuprofen"},
		Severity:     models.SeverityMedium,
		Effects:      "Reduced effectiveness, kidney problems",
	},
}

// Checker finds pairwise interactions within an active medication set.
// The zero value uses the asymmetric lookup the reference data was built
// for; Symmetric also consults the second drug's row when the first
// drug's row has no match.
type Checker struct {
	Symmetric bool
}

// Check returns all flagged interactions among the given medications.
// The list is re-derived in full on every call; nothing is persisted.
func (c Checker) Check(meds []string) []models.Interaction {
	var found []models.Interaction

	for i := 0; i < len(meds); i++ {
		for j := i + 1; j < len(meds); j++ {
			if in, ok := c.lookup(meds[i], meds[j]); ok {
				found = append(found, in)
			}
		}
	}

	return found
}

// lookup checks the pair (med1, med2) against the reference table. The
// pair is only flagged from med1's side unless symmetric mode is on; the
// asymmetry is deliberate, matching the shape of the reference data.
func (c Checker) lookup(med1, med2 string) (models.Interaction, bool) {
	if entry, ok := referenceTable[med1]; ok && contains(entry.Interactions, med2) {
		return interaction(med1, med2, entry), true
	}
	if c.Symmetric {
		if entry, ok := referenceTable[med2]; ok && contains(entry.Interactions, med1) {
			return interaction(med2, med1, entry), true
		}
	}
	return models.Interaction{}, false
}

// interaction builds the flagged pair. Severity and effects are
// attributed to the partner's reference row when it also lists the pair;
// the reference data records per-pair severity on the partner side.
func interaction(first, second string, entry refEntry) models.Interaction {
	src := entry
	if partner, ok := referenceTable[second]; ok && contains(partner.Interactions, first) {
		src = partner
	}
	return models.Interaction{
		Drugs:          [2]string{first, second},
		Severity:       src.Severity,
		Effects:        src.Effects,
		Recommendation: Recommendation(src.Severity),
	}
}

// Recommendation derives the human-readable safety advice for a severity.
func Recommendation(severity models.Severity) string {
	switch severity {
	case models.SeverityHigh:
		return "Consult doctor immediately. Do not take together without medical supervision."
	case models.SeverityMedium:
		return "Monitor closely. Consult healthcare provider about timing and dosage."
	default:
		return "Generally safe but monitor for side effects."
	}
}

// KnownDrugs returns the drugs present in the reference table.
func KnownDrugs() []string {
	names := make([]string, 0, len(referenceTable))
	for name := range referenceTable {
		names = append(names, name)
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
