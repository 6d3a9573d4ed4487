// ABOUTME: Unit tests for Charm-based session archive storage.
// ABOUTME: Tests key formats for the type-prefixed layout.
package charm

import (
	"fmt"
	"testing"

	"github.com/harperreed/medtrack/internal/models"
)

func TestReportKeyFormat(t *testing.T) {
	r := models.NewReport(1700000000000, "report.jpg", "text", models.AnalysisResult{})
	key := fmt.Sprintf("%s%020d", ReportPrefix, r.ID)

	if key != "report:00000001700000000000" {
		t.Errorf("unexpected report key: %s", key)
	}
}

func TestReportKeysSortNumerically(t *testing.T) {
	early := fmt.Sprintf("%s%020d", ReportPrefix, int64(999))
	late := fmt.Sprintf("%s%020d", ReportPrefix, int64(1700000000000))

	if !(early < late) {
		t.Errorf("zero-padded keys out of order: %s >= %s", early, late)
	}
}

func TestReadingKeyEmbedsIdentity(t *testing.T) {
	r := models.Reading{Kind: models.KindGlucose, Date: "2026-08-28"}
	key := fmt.Sprintf("%s%s:%s", ReadingPrefix, r.Kind, r.Date)

	if key != "reading:glucose:2026-08-28" {
		t.Errorf("unexpected reading key: %s", key)
	}

	// The same (kind, date) must map to the same key, so a second save
	// overwrites rather than duplicates.
	again := fmt.Sprintf("%s%s:%s", ReadingPrefix, models.KindGlucose, "2026-08-28")
	if key != again {
		t.Error("identical identities produced different keys")
	}
}

func TestArchivePrefixes(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected string
	}{
		{"Report", ReportPrefix, "report:"},
		{"Reading", ReadingPrefix, "reading:"},
		{"Appointment", AppointmentPrefix, "appointment:"},
		{"Chat", ChatPrefix, "chat:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prefix != tt.expected {
				t.Errorf("Expected %s = %q, got %q", tt.name, tt.expected, tt.prefix)
			}
		})
	}
}
