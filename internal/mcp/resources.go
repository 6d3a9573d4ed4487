// ABOUTME: MCP resource implementations for the medtrack session.
// ABOUTME: Provides medtrack://summary, medtrack://reports/recent, and medtrack://readings.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/medtrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// medtrack://summary - Dashboard with score, latest readings, and counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "medtrack://summary",
		Name:        "Health Summary Dashboard",
		Description: "Health score, latest reading per metric kind, and session counts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// medtrack://reports/recent - Last 10 submitted reports
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "medtrack://reports/recent",
		Name:        "Recent Reports",
		Description: "Last 10 submitted medical reports with their analyses",
		MIMEType:    "application/json",
	}, s.handleRecentReportsResource)

	// medtrack://readings - Full per-kind reading histories
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "medtrack://readings",
		Name:        "Clinical Readings",
		Description: "All extracted clinical readings grouped by metric kind",
		MIMEType:    "application/json",
	}, s.handleReadingsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snapshot := s.session.Snapshot()

	// Latest reading per kind
	latest := make(map[string]interface{})
	for kind, history := range snapshot.Metrics {
		if len(history) == 0 {
			continue
		}
		r := history[len(history)-1]
		latest[string(kind)] = map[string]interface{}{
			"date":   r.Date,
			"values": r.Values,
			"unit":   models.MetricUnits[kind],
		}
	}

	result := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"health_score":    snapshot.HealthScore,
		"latest":          latest,
		"medications":     s.session.Medications(),
		"interactions":    s.session.Interactions(),
		"recommendations": snapshot.Recommendations,
		"counts": map[string]int{
			"reports":      len(snapshot.Reports),
			"appointments": len(snapshot.Appointments),
			"chat":         len(snapshot.ChatHistory),
		},
	}

	return resourceResult("medtrack://summary", result)
}

func (s *Server) handleRecentReportsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	reports := s.session.Snapshot().Reports
	if len(reports) > 10 {
		reports = reports[len(reports)-10:]
	}

	result := map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	}

	return resourceResult("medtrack://reports/recent", result)
}

func (s *Server) handleReadingsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snapshot := s.session.Snapshot()

	readings := make(map[string][]models.Reading)
	for kind, history := range snapshot.Metrics {
		if len(history) > 0 {
			readings[string(kind)] = history
		}
	}

	result := map[string]interface{}{
		"readings": readings,
	}

	return resourceResult("medtrack://readings", result)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
