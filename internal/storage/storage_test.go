// ABOUTME: Tests for the SQLite session archive.
// ABOUTME: Covers round-trips, the reading upsert, and chat clearing.
package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/medtrack/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "medtrack.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestReportRoundTrip(t *testing.T) {
	d := testDB(t)

	r := models.NewReport(1700000000000, "report.jpg", "Blood Pressure: 118/76 mmHg", models.AnalysisResult{
		KeyFindings: []string{"BP normal"},
		Summary:     "All good.",
		ReportType:  "Blood Panel",
	})
	if err := d.SaveReport(&r); err != nil {
		t.Fatalf("save report: %v", err)
	}

	got, err := d.ListReports(0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1", len(got))
	}
	if got[0].ExtractedText != r.ExtractedText {
		t.Errorf("ExtractedText = %q, want %q", got[0].ExtractedText, r.ExtractedText)
	}
	if got[0].Analysis.Summary != "All good." {
		t.Errorf("Analysis.Summary = %q", got[0].Analysis.Summary)
	}
	if got[0].Metadata.ReportType != "Blood Panel" {
		t.Errorf("Metadata.ReportType = %q", got[0].Metadata.ReportType)
	}
}

func TestReportsInsertionOrder(t *testing.T) {
	d := testDB(t)

	for _, id := range []int64{10, 20, 30} {
		r := models.NewReport(id, "r.jpg", "text", models.AnalysisResult{})
		if err := d.SaveReport(&r); err != nil {
			t.Fatalf("save report %d: %v", id, err)
		}
	}

	got, err := d.ListReports(0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(got) != 3 || got[0].ID != 10 || got[2].ID != 30 {
		t.Errorf("reports out of insertion order: %v", ids(got))
	}
}

func TestReadingUpsertByKindAndDate(t *testing.T) {
	d := testDB(t)

	first := models.Reading{Kind: models.KindGlucose, Date: "2026-08-28",
		Values: map[string]float64{models.FieldValue: 95}}
	second := models.Reading{Kind: models.KindGlucose, Date: "2026-08-28",
		Values: map[string]float64{models.FieldValue: 110}}

	if err := d.SaveReading(&first); err != nil {
		t.Fatalf("save first reading: %v", err)
	}
	if err := d.SaveReading(&second); err != nil {
		t.Fatalf("save second reading: %v", err)
	}

	kind := models.KindGlucose
	got, err := d.ListReadings(&kind, 0)
	if err != nil {
		t.Fatalf("list readings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d readings for same (kind, date), want 1", len(got))
	}
	if got[0].Values[models.FieldValue] != 110 {
		t.Errorf("value = %v, want the second submission's 110", got[0].Values[models.FieldValue])
	}
}

func TestReadingsFilteredByKind(t *testing.T) {
	d := testDB(t)

	readings := []models.Reading{
		{Kind: models.KindGlucose, Date: "2026-08-27", Values: map[string]float64{models.FieldValue: 95}},
		{Kind: models.KindGlucose, Date: "2026-08-28", Values: map[string]float64{models.FieldValue: 98}},
		{Kind: models.KindHeartRate, Date: "2026-08-28", Values: map[string]float64{models.FieldValue: 70}},
	}
	for i := range readings {
		if err := d.SaveReading(&readings[i]); err != nil {
			t.Fatalf("save reading: %v", err)
		}
	}

	kind := models.KindGlucose
	got, err := d.ListReadings(&kind, 0)
	if err != nil {
		t.Fatalf("list readings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d glucose readings, want 2", len(got))
	}
	if got[0].Date != "2026-08-27" {
		t.Errorf("readings not in date order: first is %s", got[0].Date)
	}
}

func TestAppointmentRoundTrip(t *testing.T) {
	d := testDB(t)

	a := models.NewAppointment(models.Facility{Name: "Sterling Hospital"},
		"Follow-up based on medical report analysis: Advanced medical care",
		models.PatientInfo{Name: "Asha", Phone: "+91 98765 43210"})
	if err := d.SaveAppointment(&a); err != nil {
		t.Fatalf("save appointment: %v", err)
	}

	got, err := d.ListAppointments(0)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d appointments, want 1", len(got))
	}
	if got[0].FacilityName != "Sterling Hospital" {
		t.Errorf("FacilityName = %q", got[0].FacilityName)
	}
	if got[0].Doctor.Name == "" {
		t.Error("expected doctor details to survive the round trip")
	}
}

func TestChatHistoryClearable(t *testing.T) {
	d := testDB(t)

	for _, text := range []string{"hello", "hi there"} {
		m := models.NewChatMessage(models.RoleUser, text)
		if err := d.SaveChatMessage(&m); err != nil {
			t.Fatalf("save chat message: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	got, err := d.ListChatMessages(0)
	if err != nil {
		t.Fatalf("list chat messages: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].Text != "hello" {
		t.Errorf("messages out of sent order: first is %q", got[0].Text)
	}

	if err := d.ClearChatHistory(); err != nil {
		t.Fatalf("clear chat history: %v", err)
	}
	got, err = d.ListChatMessages(0)
	if err != nil {
		t.Fatalf("list after clear: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d messages after clear, want 0", len(got))
	}
}

func TestExportJSONIncludesAllSections(t *testing.T) {
	d := testDB(t)

	r := models.NewReport(1, "r.jpg", "Glucose: 95 mg/dL", models.AnalysisResult{})
	if err := d.SaveReport(&r); err != nil {
		t.Fatalf("save report: %v", err)
	}
	m := models.NewChatMessage(models.RoleUser, "What does this mean?")
	if err := d.SaveChatMessage(&m); err != nil {
		t.Fatalf("save chat message: %v", err)
	}

	data, err := d.ExportJSON()
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	for _, want := range []string{`"reports"`, `"readings"`, `"appointments"`, `"chat_history"`, `"tool": "medtrack"`, "What does this mean?"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export missing %s", want)
		}
	}
}

func ids(reports []*models.Report) []int64 {
	out := make([]int64, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}
