// ABOUTME: CLI command for listing submitted reports.
// ABOUTME: Shows ID, upload date, type, and summary per report.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reportsLimit int

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Aliases: []string{"ls", "list"},
	Short:   "List submitted reports",
	Long: `List submitted medical reports, oldest first.

OUTPUT FORMAT:

  Each line shows: ID  UPLOAD-DATE  TYPE  SUMMARY

EXAMPLES:

  medtrack reports           # Show last 20 reports
  medtrack reports -n 5      # Show last 5 reports
  medtrack reports show 42   # Full detail for one report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := session.Snapshot().Reports
		if reportsLimit > 0 && len(reports) > reportsLimit {
			reports = reports[len(reports)-reportsLimit:]
		}

		if len(reports) == 0 {
			fmt.Println("No reports found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range reports {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%d", r.ID),
				faint.Sprint(r.UploadDate.Format("2006-01-02 15:04")),
				padRight(r.Analysis.ReportType, 16),
				truncate(r.Analysis.Summary, 60))
		}

		return nil
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one report in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid report ID: %s", args[0])
		}

		for _, r := range session.Snapshot().Reports {
			if r.ID != id {
				continue
			}

			faint := color.New(color.Faint)
			fmt.Printf("%s %s\n", faint.Sprintf("%d", r.ID), r.Filename)
			fmt.Printf("Uploaded: %s\n", r.UploadDate.Format("2006-01-02 15:04"))
			fmt.Printf("Type:     %s\n", r.Analysis.ReportType)
			if r.Metadata.DoctorName != "" {
				fmt.Printf("Doctor:   %s\n", r.Metadata.DoctorName)
			}
			if r.Metadata.FacilityName != "" {
				fmt.Printf("Facility: %s\n", r.Metadata.FacilityName)
			}
			fmt.Printf("\n%s\n\n", r.Analysis.Summary)

			printList("Key findings", r.Analysis.KeyFindings)
			printList("Risk factors", r.Analysis.RiskFactors)
			printList("Critical values", r.Analysis.CriticalValues)
			printList("Normal values", r.Analysis.NormalValues)
			printList("Recommendations", r.Analysis.Recommendations)

			fmt.Println("Extracted text:")
			fmt.Println(faint.Sprint(r.ExtractedText))
			return nil
		}

		return fmt.Errorf("report %d not found", id)
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	reportsCmd.Flags().IntVarP(&reportsLimit, "limit", "n", 20, "max number of results")
	reportsCmd.AddCommand(reportsShowCmd)
	rootCmd.AddCommand(reportsCmd)
}
