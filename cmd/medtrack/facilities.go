// ABOUTME: CLI command for the facility catalog and recommendations.
// ABOUTME: Shows current recommendations first, then the full catalog.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/medtrack/internal/recommend"
	"github.com/spf13/cobra"
)

var facilitiesCmd = &cobra.Command{
	Use:     "facilities [query]",
	Aliases: []string{"f"},
	Short:   "Show recommended facilities and the catalog",
	Long: `Show facility recommendations from the latest report analysis,
followed by the full facility catalog.

Recommendations are refreshed on every report upload. Use the facility
ID with 'medtrack book' to book an appointment. An optional query
filters the catalog by name, type, or service.

EXAMPLES:

  medtrack facilities          # Everything
  medtrack facilities cardio   # Catalog entries matching "cardio"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		faint := color.New(color.Faint)

		if query == "" {
			recs := session.Snapshot().Recommendations
			if len(recs) > 0 {
				fmt.Println("Recommended for you:")
				for _, r := range recs {
					fmt.Printf("  %d. %s %s\n", r.Facility.ID, r.Facility.Name,
						faint.Sprintf("(%s)", r.Reason))
				}
				fmt.Println()
			}
		}

		matches := 0
		fmt.Println("All facilities:")
		for _, f := range recommend.Catalog() {
			if query != "" && !facilityMatches(f.Name, f.Type, f.Services, query) {
				continue
			}
			matches++
			fmt.Printf("  %d. %s %s\n", f.ID, padRight(f.Name, 28),
				faint.Sprintf("%s · %.1f★ · %s", f.Type, f.Rating, strings.Join(f.Services, ", ")))
		}
		if matches == 0 {
			fmt.Printf("  No facilities match %q.\n", query)
		}

		return nil
	},
}

func facilityMatches(name, ftype string, services []string, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(name), q) || strings.Contains(strings.ToLower(ftype), q) {
		return true
	}
	for _, s := range services {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(facilitiesCmd)
}
