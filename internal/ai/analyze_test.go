// ABOUTME: Tests for report analysis fallbacks and JSON scraping.
// ABOUTME: Uses a stub completer and httptest for the HTTP client.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubCompleter struct {
	response string
	err      error
}

func (s stubCompleter) Complete(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	return s.response, s.err
}

func TestAnalyzeReportParsesEmbeddedJSON(t *testing.T) {
	response := `Here is the analysis you asked for:
{"keyFindings": ["BP 150/95 mmHg"], "riskFactors": ["hypertension"], "summary": "Elevated blood pressure.", "reportType": "Blood Panel"}
Let me know if you need more detail.`

	a := NewAnalyzer(stubCompleter{response: response})
	got := a.AnalyzeReport(context.Background(), "some report")

	if got.Summary != "Elevated blood pressure." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.KeyFindings) != 1 || got.KeyFindings[0] != "BP 150/95 mmHg" {
		t.Errorf("KeyFindings = %v", got.KeyFindings)
	}
	if got.ReportType != "Blood Panel" {
		t.Errorf("ReportType = %q", got.ReportType)
	}
}

func TestAnalyzeReportNoJSONFallback(t *testing.T) {
	a := NewAnalyzer(stubCompleter{response: "I cannot produce structured output."})
	got := a.AnalyzeReport(context.Background(), "some report")

	if got.Summary != "Medical report processed. Please consult with a healthcare professional." {
		t.Errorf("Summary = %q, want processed fallback", got.Summary)
	}
	if got.ReportType != "Unknown" {
		t.Errorf("ReportType = %q, want Unknown", got.ReportType)
	}
}

func TestAnalyzeReportServiceErrorFallback(t *testing.T) {
	a := NewAnalyzer(stubCompleter{err: fmt.Errorf("connection refused")})
	got := a.AnalyzeReport(context.Background(), "some report")

	if !strings.HasPrefix(got.Summary, "Error analyzing report") {
		t.Errorf("Summary = %q, want error fallback", got.Summary)
	}
	if len(got.CriticalValues) != 0 {
		t.Errorf("CriticalValues = %v, want empty", got.CriticalValues)
	}
}

func TestAnalyzeReportMalformedJSONFallback(t *testing.T) {
	a := NewAnalyzer(stubCompleter{response: `{"keyFindings": [unquoted]}`})
	got := a.AnalyzeReport(context.Background(), "some report")

	if !strings.HasPrefix(got.Summary, "Medical report processed") {
		t.Errorf("Summary = %q, want processed fallback", got.Summary)
	}
}

func TestClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v, want system then user", req.Messages)
		}

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: "hello"}}},
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test-key"))
	got, err := c.Complete(context.Background(), "hi", "be nice")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if got != "hello" {
		t.Errorf("Complete() = %q, want hello", got)
	}
}

func TestClientCompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.Complete(context.Background(), "hi", ""); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestClientCompleteCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.Complete(ctx, "hi", ""); err == nil {
		t.Fatal("expected error on canceled context")
	}
}
