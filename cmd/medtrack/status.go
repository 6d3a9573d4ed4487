// ABOUTME: CLI command for the session health dashboard.
// ABOUTME: Shows score, latest readings, and session counts.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show health score and latest readings",
	Long: `Show the current health score, the latest reading for each metric
kind, and session counts.

The score starts at 92 and is recomputed from extracted metrics on
every report upload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := session.Snapshot()

		score := snapshot.HealthScore
		scoreColor := color.New(color.FgGreen, color.Bold)
		switch {
		case score < 50:
			scoreColor = color.New(color.FgRed, color.Bold)
		case score < 75:
			scoreColor = color.New(color.FgYellow, color.Bold)
		}
		fmt.Printf("Health score: %s\n\n", scoreColor.Sprintf("%d/100", score))

		faint := color.New(color.Faint)
		printed := false
		for _, kind := range models.AllMetricKinds {
			history := snapshot.Metrics[kind]
			if len(history) == 0 {
				continue
			}
			r := history[len(history)-1]
			fmt.Printf("  %s %s %s\n",
				padRight(string(kind), 16),
				formatReading(r),
				faint.Sprintf("(%s, %d reading(s))", r.Date, len(history)))
			printed = true
		}
		if !printed {
			fmt.Println("No readings yet. Upload a report to get started.")
		}

		fmt.Println()
		fmt.Printf("Reports: %d  Appointments: %d  Medications: %d\n",
			len(snapshot.Reports), len(snapshot.Appointments), len(session.Medications()))

		return nil
	},
}

func formatReading(r models.Reading) string {
	unit := models.MetricUnits[r.Kind]
	switch r.Kind {
	case models.KindBloodPressure:
		return fmt.Sprintf("%.0f/%.0f %s",
			r.Values[models.FieldSystolic], r.Values[models.FieldDiastolic], unit)
	case models.KindCholesterol:
		return fmt.Sprintf("total %.0f hdl %.0f ldl %.0f %s",
			r.Values[models.FieldTotal], r.Values[models.FieldHDL], r.Values[models.FieldLDL], unit)
	default:
		return fmt.Sprintf("%.1f %s", r.Values[models.FieldValue], unit)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
