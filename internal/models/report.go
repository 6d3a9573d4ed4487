// ABOUTME: Report and AnalysisResult models for uploaded medical reports.
// ABOUTME: Reports are append-only; analysis comes from the AI collaborator.
package models

import "time"

// AnalysisResult is the structured analysis produced by the AI service.
// It is consumed read-only; when the service fails or returns no parseable
// JSON, a fixed fallback result is substituted instead.
type AnalysisResult struct {
	KeyFindings      []string `json:"keyFindings"`
	RiskFactors      []string `json:"riskFactors"`
	Recommendations  []string `json:"recommendations"`
	CriticalValues   []string `json:"criticalValues"`
	NormalValues     []string `json:"normalValues"`
	Summary          string   `json:"summary"`
	ReportType       string   `json:"reportType"`
	DetectedDoctor   string   `json:"detectedDoctor"`
	DetectedFacility string   `json:"detectedFacility"`
}

// ReportMetadata holds secondary report attributes.
type ReportMetadata struct {
	ReportDate   string   `json:"reportDate"`
	DoctorName   string   `json:"doctorName"`
	FacilityName string   `json:"facilityName"`
	ReportType   string   `json:"reportType"`
	Notes        string   `json:"notes"`
	Tags         []string `json:"tags"`
}

// Report is an uploaded medical report with its extracted text and
// analysis. Created on upload, never mutated, never deleted.
type Report struct {
	ID            int64          `json:"id"`
	Filename      string         `json:"filename"`
	UploadDate    time.Time      `json:"uploadDate"`
	ExtractedText string         `json:"extractedText"`
	Analysis      AnalysisResult `json:"analysis"`
	Metadata      ReportMetadata `json:"metadata"`
}

// NewReport creates a report with the current upload timestamp and
// metadata derived from the analysis.
func NewReport(id int64, filename, extractedText string, analysis AnalysisResult) Report {
	now := time.Now()
	return Report{
		ID:            id,
		Filename:      filename,
		UploadDate:    now,
		ExtractedText: extractedText,
		Analysis:      analysis,
		Metadata: ReportMetadata{
			ReportDate:   now.Format(DateFormat),
			DoctorName:   analysis.DetectedDoctor,
			FacilityName: analysis.DetectedFacility,
			ReportType:   analysis.ReportType,
		},
	}
}
