// ABOUTME: MCP tool implementations for the medtrack session.
// ABOUTME: Covers report submission, medications, bookings, and chat.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/medtrack/internal/models"
	"github.com/harperreed/medtrack/internal/recommend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// submit_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "submit_report",
		Description: "Submit medical report text for analysis, metric extraction, and facility recommendations",
	}, s.handleSubmitReport)

	// list_reports
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_reports",
		Description: "List submitted medical reports",
	}, s.handleListReports)

	// get_health_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_score",
		Description: "Get the current health score (0-100)",
	}, s.handleGetHealthScore)

	// set_medications
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_medications",
		Description: "Replace the active medication list and check for drug interactions",
	}, s.handleSetMedications)

	// check_interactions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_interactions",
		Description: "Check a list of drugs for known interactions without changing the medication list",
	}, s.handleCheckInteractions)

	// recommend_facilities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recommend_facilities",
		Description: "Get the current facility recommendations and the full facility catalog",
	}, s.handleRecommendFacilities)

	// book_appointment
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "book_appointment",
		Description: "Book a follow-up appointment at a facility by ID",
	}, s.handleBookAppointment)

	// chat
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "chat",
		Description: "Send a message to the AI health assistant",
	}, s.handleChat)
}

// Tool input/output types

type submitReportInput struct {
	Filename string `json:"filename,omitempty" jsonschema:"Original report filename"`
	Text     string `json:"text" jsonschema:"Extracted medical report text"`
}

type submitReportOutput struct {
	ReportID        int64                   `json:"report_id"`
	Summary         string                  `json:"summary"`
	HealthScore     int                     `json:"health_score"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Message         string                  `json:"message"`
}

type listReportsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type healthScoreOutput struct {
	HealthScore int    `json:"health_score"`
	Message     string `json:"message"`
}

type medicationsInput struct {
	Medications []string `json:"medications" jsonschema:"Drug names"`
}

type interactionsOutput struct {
	Interactions []models.Interaction `json:"interactions"`
	Message      string               `json:"message"`
}

type recommendFacilitiesOutput struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Catalog         []models.Facility       `json:"catalog"`
}

type bookAppointmentInput struct {
	FacilityID  int    `json:"facility_id" jsonschema:"Facility ID from the catalog"`
	Reason      string `json:"reason,omitempty" jsonschema:"Reason for the visit"`
	PatientName string `json:"patient_name" jsonschema:"Patient name"`
	Phone       string `json:"phone" jsonschema:"Patient phone number"`
}

type appointmentOutput struct {
	Appointment models.Appointment `json:"appointment"`
	Message     string             `json:"message"`
}

type chatInput struct {
	Message string `json:"message" jsonschema:"Message for the assistant"`
}

type chatOutput struct {
	Reply string `json:"reply"`
}

// Tool handlers

func (s *Server) handleSubmitReport(ctx context.Context, req *mcp.CallToolRequest, input submitReportInput) (*mcp.CallToolResult, submitReportOutput, error) {
	if input.Text == "" {
		return nil, submitReportOutput{}, fmt.Errorf("report text is required")
	}

	filename := input.Filename
	if filename == "" {
		filename = "report.txt"
	}

	report, recs, err := s.session.SubmitReport(ctx, filename, input.Text)
	if err != nil {
		return nil, submitReportOutput{}, fmt.Errorf("failed to submit report: %w", err)
	}

	return nil, submitReportOutput{
		ReportID:        report.ID,
		Summary:         report.Analysis.Summary,
		HealthScore:     s.session.HealthScore(),
		Recommendations: recs,
		Message:         fmt.Sprintf("Analyzed %s (report %d)", filename, report.ID),
	}, nil
}

func (s *Server) handleListReports(ctx context.Context, req *mcp.CallToolRequest, input listReportsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	reports := s.session.Snapshot().Reports
	if len(reports) > input.Limit {
		reports = reports[len(reports)-input.Limit:]
	}

	if len(reports) == 0 {
		return nil, map[string]interface{}{"message": "No reports found."}, nil
	}

	return nil, reports, nil
}

func (s *Server) handleGetHealthScore(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, healthScoreOutput, error) {
	score := s.session.HealthScore()
	return nil, healthScoreOutput{
		HealthScore: score,
		Message:     fmt.Sprintf("Current health score: %d/100", score),
	}, nil
}

func (s *Server) handleSetMedications(ctx context.Context, req *mcp.CallToolRequest, input medicationsInput) (*mcp.CallToolResult, interactionsOutput, error) {
	found := s.session.SetMedications(input.Medications)
	return nil, interactionsOutput{
		Interactions: found,
		Message:      interactionMessage(found),
	}, nil
}

func (s *Server) handleCheckInteractions(ctx context.Context, req *mcp.CallToolRequest, input medicationsInput) (*mcp.CallToolResult, interactionsOutput, error) {
	found := s.session.Checker().Check(input.Medications)
	return nil, interactionsOutput{
		Interactions: found,
		Message:      interactionMessage(found),
	}, nil
}

func (s *Server) handleRecommendFacilities(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, recommendFacilitiesOutput, error) {
	snapshot := s.session.Snapshot()
	return nil, recommendFacilitiesOutput{
		Recommendations: snapshot.Recommendations,
		Catalog:         recommend.Catalog(),
	}, nil
}

func (s *Server) handleBookAppointment(ctx context.Context, req *mcp.CallToolRequest, input bookAppointmentInput) (*mcp.CallToolResult, appointmentOutput, error) {
	appt, err := s.session.BookAppointment(input.FacilityID, input.Reason, models.PatientInfo{
		Name:  input.PatientName,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, appointmentOutput{}, fmt.Errorf("failed to book appointment: %w", err)
	}

	return nil, appointmentOutput{
		Appointment: appt,
		Message: fmt.Sprintf("Booked appointment #%d at %s on %s at %s with %s",
			appt.AppointmentID, appt.FacilityName, appt.Date, appt.Time, appt.Doctor.Name),
	}, nil
}

func (s *Server) handleChat(ctx context.Context, req *mcp.CallToolRequest, input chatInput) (*mcp.CallToolResult, chatOutput, error) {
	if input.Message == "" {
		return nil, chatOutput{}, fmt.Errorf("message is required")
	}

	reply, err := s.session.SendChatMessage(ctx, input.Message)
	if err != nil {
		return nil, chatOutput{}, fmt.Errorf("failed to send chat message: %w", err)
	}

	return nil, chatOutput{Reply: reply.Text}, nil
}

func interactionMessage(found []models.Interaction) string {
	if len(found) == 0 {
		return "No known interactions found."
	}
	return fmt.Sprintf("Found %d interaction(s). Review severity and recommendations.", len(found))
}
