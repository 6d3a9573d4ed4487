// ABOUTME: Facility recommender ranking the catalog against analysis output.
// ABOUTME: Priority batches: cardiac, advanced care, then general fallback.
package recommend

import (
	"strings"

	"github.com/harperreed/medtrack/internal/models"
)

// Reason tags attached to recommended facilities.
const (
	ReasonCardiac     = "Cardiac care specialist"
	ReasonAdvanced    = "Advanced medical care"
	ReasonHighlyRated = "Highly rated hospital"
	ReasonFollowUp    = "Follow-up tests"
)

// maxRecommendations caps the final recommendation list.
const maxRecommendations = 4

// batchCap caps each individual signal batch before concatenation.
const batchCap = 2

// ForAnalysis ranks the facility catalog against the analysis and the
// original report text. Batches are produced in priority order, then
// concatenated, deduplicated by facility ID (first occurrence wins), and
// truncated to four entries.
func ForAnalysis(analysis models.AnalysisResult, reportText string, catalog []models.Facility) []models.Recommendation {
	var recs []models.Recommendation

	if hasCardiacSignal(analysis, reportText) {
		recs = append(recs, tag(filterCardiac(catalog), ReasonCardiac)...)
	}

	if needsAdvancedCare(analysis) {
		recs = append(recs, tag(filterAdvanced(catalog), ReasonAdvanced)...)
	}

	// General fallback always runs.
	for _, f := range capped(filterGeneral(catalog)) {
		reason := ReasonHighlyRated
		if f.Type == models.FacilityLaboratory {
			reason = ReasonFollowUp
		}
		recs = append(recs, models.Recommendation{Facility: f, Reason: reason})
	}

	return dedupe(recs)
}

func hasCardiacSignal(analysis models.AnalysisResult, reportText string) bool {
	text := strings.ToLower(reportText)
	for _, kw := range []string{"heart", "cardiac", "blood pressure"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	for _, finding := range analysis.KeyFindings {
		f := strings.ToLower(finding)
		if strings.Contains(f, "heart") || strings.Contains(f, "cardiac") {
			return true
		}
	}
	return false
}

func needsAdvancedCare(analysis models.AnalysisResult) bool {
	return len(analysis.RiskFactors) > 2 || len(analysis.CriticalValues) > 0
}

func filterCardiac(catalog []models.Facility) []models.Facility {
	var out []models.Facility
	for _, f := range catalog {
		if strings.Contains(f.Name, "Apex Heart") || hasService(f, "cardiology") {
			out = append(out, f)
		}
	}
	return out
}

// filterAdvanced selects premium hospitals: a fixed allowlist of names
// plus the top price tier.
func filterAdvanced(catalog []models.Facility) []models.Facility {
	var out []models.Facility
	for _, f := range catalog {
		if f.Type != models.FacilityHospital {
			continue
		}
		if strings.Contains(f.Name, "Sterling") || strings.Contains(f.Name, "Sayaji") || f.PriceRange == "₹₹₹" {
			out = append(out, f)
		}
	}
	return out
}

func filterGeneral(catalog []models.Facility) []models.Facility {
	var out []models.Facility
	for _, f := range catalog {
		if (f.Type == models.FacilityHospital && f.Rating >= 4.5) ||
			(f.Type == models.FacilityLaboratory && strings.Contains(f.Name, "SRL")) {
			out = append(out, f)
		}
	}
	return out
}

func hasService(f models.Facility, service string) bool {
	for _, s := range f.Services {
		if strings.Contains(strings.ToLower(s), service) {
			return true
		}
	}
	return false
}

func capped(fs []models.Facility) []models.Facility {
	if len(fs) > batchCap {
		return fs[:batchCap]
	}
	return fs
}

func tag(fs []models.Facility, reason string) []models.Recommendation {
	var out []models.Recommendation
	for _, f := range capped(fs) {
		out = append(out, models.Recommendation{Facility: f, Reason: reason})
	}
	return out
}

// dedupe keeps the first occurrence per facility ID and truncates to the
// overall cap. Order is significant: earlier batches carry the more
// specific reasons.
func dedupe(recs []models.Recommendation) []models.Recommendation {
	seen := make(map[int]bool, len(recs))
	var out []models.Recommendation
	for _, r := range recs {
		if seen[r.Facility.ID] {
			continue
		}
		seen[r.Facility.ID] = true
		out = append(out, r)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}
