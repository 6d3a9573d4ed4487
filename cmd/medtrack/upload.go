// ABOUTME: CLI command for uploading medical reports.
// ABOUTME: Runs analysis, extraction, scoring, and recommendations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	uploadText   string
	uploadSample bool
)

var uploadCmd = &cobra.Command{
	Use:     "upload [file]",
	Aliases: []string{"u"},
	Short:   "Upload a medical report for analysis",
	Long: `Upload a medical report for AI analysis.

The report text is analyzed by the AI service, clinical metrics are
extracted (blood pressure, glucose, cholesterol, heart rate, BMI,
weight), the health score is updated, and facility recommendations are
refreshed.

Pass a text file, provide the report text directly with --text, or use
--sample to generate a synthetic report for trying things out.

Examples:
  medtrack upload report.txt
  medtrack upload --text "Blood Pressure: 118/76 mmHg, Glucose: 95 mg/dL"
  medtrack upload --sample`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filename, text string

		switch {
		case uploadSample:
			filename = "sample-report.txt"
			text = sampleReportText()
		case uploadText != "":
			filename = "report.txt"
			text = uploadText
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			filename = filepath.Base(args[0])
			text = string(data)
		default:
			return fmt.Errorf("provide a file, --text, or --sample")
		}

		report, recs, err := session.SubmitReport(cmd.Context(), filename, text)
		if err != nil {
			return fmt.Errorf("failed to submit report: %w", err)
		}

		color.Green("✓ Analyzed %s", filename)
		faint := color.New(color.Faint)
		fmt.Printf("  %s %s\n", faint.Sprintf("%d", report.ID), report.Analysis.ReportType)
		fmt.Printf("  %s\n\n", report.Analysis.Summary)

		printList("Key findings", report.Analysis.KeyFindings)
		printList("Risk factors", report.Analysis.RiskFactors)
		printList("Critical values", report.Analysis.CriticalValues)

		fmt.Printf("Health score: %d/100\n", session.HealthScore())

		if len(recs) > 0 {
			fmt.Println("\nRecommended facilities:")
			for _, r := range recs {
				fmt.Printf("  %d. %s %s\n", r.Facility.ID, r.Facility.Name,
					faint.Sprintf("(%s)", r.Reason))
			}
		}

		return nil
	},
}

// sampleReportText generates a synthetic report with randomized vitals
// in plausible ranges.
func sampleReportText() string {
	bpSys := 110 + rand.Intn(30)
	bpDia := 70 + rand.Intn(20)
	glucose := 85 + rand.Intn(40)
	heartRate := 60 + rand.Intn(40)
	totalChol := 150 + rand.Intn(80)
	hdl := 40 + rand.Intn(30)
	ldl := 80 + rand.Intn(60)
	bmi := 20 + rand.Float64()*10

	return fmt.Sprintf(`Medical Report Analysis

Patient: Sample Patient
Date: %s

Extracted Health Metrics:
- Blood Pressure: %d/%d mmHg
- Heart Rate: %d bpm
- Cholesterol: Total %d mg/dL, HDL %d mg/dL, LDL %d mg/dL
- Glucose: %d mg/dL
- BMI: %.1f`,
		time.Now().Format("2006-01-02"),
		bpSys, bpDia, heartRate, totalChol, hdl, ldl, glucose, bmi)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func init() {
	uploadCmd.Flags().StringVar(&uploadText, "text", "", "report text (instead of a file)")
	uploadCmd.Flags().BoolVar(&uploadSample, "sample", false, "generate a synthetic sample report")
	rootCmd.AddCommand(uploadCmd)
}
