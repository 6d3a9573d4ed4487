// ABOUTME: Metric extractor that parses report text into clinical readings.
// ABOUTME: Declarative case-insensitive regexp rules, one per metric kind.
package extract

import (
	"regexp"
	"strconv"

	"github.com/harperreed/medtrack/internal/models"
)

// rule maps one pattern to the value fields it captures. Each capture
// group fills the field at the same index. Rules for the same kind are
// independent: a kind appears in the result if any of its rules matched.
type rule struct {
	kind    models.MetricKind
	pattern *regexp.Regexp
	fields  []string
}

var rules = []rule{
	{
		kind:    models.KindBloodPressure,
		pattern: regexp.MustCompile(`(?i)(\d{2,3})/(\d{2,3})\s*mmHg`),
		fields:  []string{models.FieldSystolic, models.FieldDiastolic},
	},
	{
		kind:    models.KindGlucose,
		pattern: regexp.MustCompile(`(?i)glucose[:\s]*(\d+)\s*mg/dl`),
		fields:  []string{models.FieldValue},
	},
	{
		kind:    models.KindCholesterol,
		pattern: regexp.MustCompile(`(?i)total[\s\w]*cholesterol[:\s]*(\d+)\s*mg/dl`),
		fields:  []string{models.FieldTotal},
	},
	{
		kind:    models.KindCholesterol,
		pattern: regexp.MustCompile(`(?i)hdl[:\s]*(\d+)\s*mg/dl`),
		fields:  []string{models.FieldHDL},
	},
	{
		kind:    models.KindCholesterol,
		pattern: regexp.MustCompile(`(?i)ldl[:\s]*(\d+)\s*mg/dl`),
		fields:  []string{models.FieldLDL},
	},
	{
		kind:    models.KindHeartRate,
		pattern: regexp.MustCompile(`(?i)heart rate[:\s]*(\d+)\s*bpm`),
		fields:  []string{models.FieldValue},
	},
	{
		kind:    models.KindBMI,
		pattern: regexp.MustCompile(`(?i)bmi[:\s]*(\d+\.?\d*)`),
		fields:  []string{models.FieldValue},
	},
}

// Metrics extracts clinical readings from free-form report text. Each
// reading is dated today. A kind with no matching pattern is simply
// absent from the result; text with no matches yields an empty map.
func Metrics(text string) models.Extraction {
	out := models.Extraction{}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		reading, ok := out[r.kind]
		if !ok {
			reading = models.NewReading(r.kind, map[string]float64{})
		}
		for i, field := range r.fields {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				continue
			}
			reading.Values[field] = v
		}
		out[r.kind] = reading
	}

	return out
}
