// ABOUTME: Report analysis and assistant replies over the completion client.
// ABOUTME: Service failures collapse to fixed fallback results, never errors.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/harperreed/medtrack/internal/models"
)

// Completer is the minimal interface the analyzer needs from the
// completion client. Satisfied by *Client; swappable for tests.
type Completer interface {
	Complete(ctx context.Context, userPrompt, systemPrompt string) (string, error)
}

// Analyzer turns raw report text into a structured AnalysisResult and
// produces assistant chat replies.
type Analyzer struct {
	completer Completer
}

// NewAnalyzer creates an Analyzer over the given completion client.
func NewAnalyzer(c Completer) *Analyzer {
	return &Analyzer{completer: c}
}

const analyzeSystemPrompt = `You are a medical AI assistant specialized in analyzing medical reports.
Extract key information and provide a comprehensive analysis.`

const analyzePromptFormat = `Analyze this medical report and provide a structured response:

%s

Format your response as a JSON object with the following structure:
{
  "keyFindings": ["list of specific test results, measurements, values"],
  "riskFactors": ["list of abnormal values, health concerns"],
  "recommendations": ["list of actionable medical advice"],
  "criticalValues": ["list of values requiring urgent attention"],
  "normalValues": ["list of values within normal range"],
  "summary": "brief 2-3 sentence overview",
  "reportType": "detected report type",
  "detectedDoctor": "doctor name if found",
  "detectedFacility": "facility name if found"
}`

const chatSystemPrompt = `You are a helpful AI health assistant. Provide accurate, helpful medical information while being clear about your limitations.
Always recommend consulting healthcare professionals for specific medical advice.`

// jsonObjectPattern scrapes the first embedded JSON object from the
// response text; models frequently wrap the object in prose.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// AnalyzeReport analyzes report text via the AI service. Failures never
// propagate: a transport or HTTP error yields the error fallback, and a
// response without a parseable JSON object yields the processed fallback.
// Callers cannot distinguish the two beyond the summary text.
func (a *Analyzer) AnalyzeReport(ctx context.Context, reportText string) models.AnalysisResult {
	prompt := fmt.Sprintf(analyzePromptFormat, reportText)

	response, err := a.completer.Complete(ctx, prompt, analyzeSystemPrompt)
	if err != nil {
		return errorFallback()
	}

	raw := jsonObjectPattern.FindString(response)
	if raw == "" {
		return processedFallback()
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return processedFallback()
	}

	return result
}

// AssistantReply asks the AI assistant for a chat response.
func (a *Analyzer) AssistantReply(ctx context.Context, message string) (string, error) {
	return a.completer.Complete(ctx, message, chatSystemPrompt)
}

// processedFallback is returned when the service responded but no JSON
// object could be extracted.
func processedFallback() models.AnalysisResult {
	return models.AnalysisResult{
		KeyFindings:     []string{"Text extraction completed"},
		RiskFactors:     []string{"Please consult healthcare provider for proper interpretation"},
		Recommendations: []string{"Review with your doctor"},
		CriticalValues:  []string{},
		NormalValues:    []string{},
		Summary:         "Medical report processed. Please consult with a healthcare professional.",
		ReportType:      "Unknown",
	}
}

// errorFallback is returned when the service call itself failed.
func errorFallback() models.AnalysisResult {
	return models.AnalysisResult{
		KeyFindings:     []string{"Error processing report"},
		RiskFactors:     []string{"Manual review required"},
		Recommendations: []string{"Consult healthcare provider"},
		CriticalValues:  []string{},
		NormalValues:    []string{},
		Summary:         "Error analyzing report. Please consult with a healthcare professional.",
		ReportType:      "Unknown",
	}
}
