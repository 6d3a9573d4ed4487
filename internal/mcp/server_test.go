// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/medtrack/internal/interact"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/harperreed/medtrack/internal/state"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stubAnalyzer struct {
	analysis models.AnalysisResult
	reply    string
}

func (a *stubAnalyzer) AnalyzeReport(_ context.Context, _ string) models.AnalysisResult {
	return a.analysis
}

func (a *stubAnalyzer) AssistantReply(_ context.Context, _ string) (string, error) {
	return a.reply, nil
}

// setupTestServer creates a server over a memory-only session.
func setupTestServer(t *testing.T, analyzer *stubAnalyzer) *Server {
	t.Helper()

	session := state.NewSession(analyzer, interact.Checker{}, nil)
	server, err := NewServer(session)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.session == nil {
		t.Error("Expected non-nil session")
	}
}

func TestHandleSubmitReport(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{analysis: models.AnalysisResult{
		Summary: "All values within range.",
	}})
	ctx := context.Background()

	_, output, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{
		Filename: "report.jpg",
		Text:     "Blood Pressure: 118/76 mmHg, Glucose: 95 mg/dL",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if output.ReportID == 0 {
		t.Error("Expected non-zero report ID")
	}
	if output.Summary != "All values within range." {
		t.Errorf("Summary = %q", output.Summary)
	}
	if output.HealthScore != 93 {
		t.Errorf("HealthScore = %d, want 93", output.HealthScore)
	}
	if len(output.Recommendations) == 0 {
		t.Error("Expected recommendations for a cardiac-signal report")
	}
	if output.Message == "" {
		t.Error("Expected non-empty Message")
	}
}

func TestHandleSubmitReportEmptyText(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, _, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{})
	if err == nil {
		t.Error("Expected error for empty report text")
	}
}

func TestHandleListReports(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	// Empty session returns a message map
	_, output, err := server.handleListReports(ctx, &mcp.CallToolRequest{}, listReportsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := output.(map[string]interface{}); !ok {
		t.Error("Expected message map for empty session")
	}

	for i := 0; i < 3; i++ {
		if _, _, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{
			Text: "Patient feels fine.",
		}); err != nil {
			t.Fatalf("submit report: %v", err)
		}
	}

	_, output, err = server.handleListReports(ctx, &mcp.CallToolRequest{}, listReportsInput{Limit: 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	reports, ok := output.([]models.Report)
	if !ok {
		t.Fatal("Expected report slice output")
	}
	if len(reports) != 2 {
		t.Errorf("Expected 2 reports with limit 2, got %d", len(reports))
	}
}

func TestHandleGetHealthScore(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleGetHealthScore(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.HealthScore != 92 {
		t.Errorf("HealthScore = %d, want the initial 92", output.HealthScore)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleSetMedications(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleSetMedications(ctx, &mcp.CallToolRequest{}, medicationsInput{
		Medications: []string{"Warfarin", "Aspirin"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(output.Interactions) != 1 {
		t.Fatalf("Expected 1 interaction, got %d", len(output.Interactions))
	}
	if output.Interactions[0].Severity != models.SeverityMedium {
		t.Errorf("Severity = %s, want medium", output.Interactions[0].Severity)
	}
	if !strings.Contains(output.Message, "1 interaction") {
		t.Errorf("Message = %q", output.Message)
	}
}

func TestHandleCheckInteractionsDoesNotMutateSession(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleCheckInteractions(ctx, &mcp.CallToolRequest{}, medicationsInput{
		Medications: []string{"Warfarin", "Ibuprofen"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(output.Interactions) != 1 {
		t.Errorf("Expected 1 interaction, got %d", len(output.Interactions))
	}

	if meds := server.session.Medications(); len(meds) != 0 {
		t.Errorf("check_interactions changed the medication list: %v", meds)
	}
}

func TestHandleCheckInteractionsUsesSessionLookupMode(t *testing.T) {
	ctx := context.Background()

	// Ibuprofen has no reference row, so the pair is only visible from
	// Warfarin's side. The asymmetric default misses it in this order.
	input := medicationsInput{Medications: []string{"Ibuprofen", "Warfarin"}}

	asymmetric := setupTestServer(t, &stubAnalyzer{})
	_, output, err := asymmetric.handleCheckInteractions(ctx, &mcp.CallToolRequest{}, input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(output.Interactions) != 0 {
		t.Errorf("Asymmetric checker flagged %d interaction(s), want 0", len(output.Interactions))
	}

	session := state.NewSession(&stubAnalyzer{}, interact.Checker{Symmetric: true}, nil)
	symmetric, err := NewServer(session)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	_, output, err = symmetric.handleCheckInteractions(ctx, &mcp.CallToolRequest{}, input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(output.Interactions) != 1 {
		t.Fatalf("Symmetric checker flagged %d interaction(s), want 1", len(output.Interactions))
	}
	if output.Interactions[0].Severity != models.SeverityHigh {
		t.Errorf("Severity = %s, want high from Warfarin's row", output.Interactions[0].Severity)
	}
}

func TestHandleCheckInteractionsNoneFound(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleCheckInteractions(ctx, &mcp.CallToolRequest{}, medicationsInput{
		Medications: []string{"Paracetamol", "Vitamin D"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(output.Interactions) != 0 {
		t.Errorf("Expected no interactions, got %d", len(output.Interactions))
	}
	if !strings.Contains(output.Message, "No known interactions") {
		t.Errorf("Message = %q", output.Message)
	}
}

func TestHandleRecommendFacilities(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleRecommendFacilities(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(output.Catalog) == 0 {
		t.Error("Expected non-empty facility catalog")
	}
	// No reports submitted yet, so no recommendations
	if len(output.Recommendations) != 0 {
		t.Errorf("Expected no recommendations before any report, got %d", len(output.Recommendations))
	}
}

func TestHandleBookAppointment(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, output, err := server.handleBookAppointment(ctx, &mcp.CallToolRequest{}, bookAppointmentInput{
		FacilityID:  1,
		Reason:      "cardiac follow-up",
		PatientName: "Asha",
		Phone:       "+91 98765 43210",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if output.Appointment.Status != "confirmed" {
		t.Errorf("Status = %q, want confirmed", output.Appointment.Status)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleBookAppointmentInvalid(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	_, _, err := server.handleBookAppointment(ctx, &mcp.CallToolRequest{}, bookAppointmentInput{
		FacilityID:  999,
		PatientName: "Asha",
		Phone:       "123",
	})
	if err == nil {
		t.Error("Expected error for unknown facility")
	}

	_, _, err = server.handleBookAppointment(ctx, &mcp.CallToolRequest{}, bookAppointmentInput{
		FacilityID: 1,
	})
	if err == nil {
		t.Error("Expected error for missing patient details")
	}
}

func TestHandleChat(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{reply: "Stay hydrated."})
	ctx := context.Background()

	_, output, err := server.handleChat(ctx, &mcp.CallToolRequest{}, chatInput{Message: "Any tips?"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Reply != "Stay hydrated." {
		t.Errorf("Reply = %q", output.Reply)
	}

	_, _, err = server.handleChat(ctx, &mcp.CallToolRequest{}, chatInput{})
	if err == nil {
		t.Error("Expected error for empty message")
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	if _, _, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{
		Text: "Glucose: 95 mg/dL",
	}); err != nil {
		t.Fatalf("submit report: %v", err)
	}

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "medtrack://summary" {
		t.Errorf("URI = %s, want medtrack://summary", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, "health_score") {
		t.Error("Expected health_score in summary")
	}
	if !strings.Contains(text, "glucose") {
		t.Error("Expected glucose reading in summary")
	}
}

func TestHandleRecentReportsResource(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, _, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{
			Text: "Patient feels fine.",
		}); err != nil {
			t.Fatalf("submit report: %v", err)
		}
	}

	result, err := server.handleRecentReportsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Contents[0].URI != "medtrack://reports/recent" {
		t.Errorf("URI = %s", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, `"count": 10`) {
		t.Error("Expected the recent list capped at 10")
	}
}

func TestHandleReadingsResource(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	if _, _, err := server.handleSubmitReport(ctx, &mcp.CallToolRequest{}, submitReportInput{
		Text: "Heart Rate: 72 bpm",
	}); err != nil {
		t.Fatalf("submit report: %v", err)
	}

	result, err := server.handleReadingsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Contents[0].URI != "medtrack://readings" {
		t.Errorf("URI = %s", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "heartRate") {
		t.Error("Expected heartRate history in readings resource")
	}
}

func TestHandleReadingsResourceEmpty(t *testing.T) {
	server := setupTestServer(t, &stubAnalyzer{})
	ctx := context.Background()

	result, err := server.handleReadingsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
}
