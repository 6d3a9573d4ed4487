// ABOUTME: CLI commands for the active medication list.
// ABOUTME: Set, add, remove, and check medications for interactions.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/medtrack/internal/interact"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/spf13/cobra"
)

var medsCmd = &cobra.Command{
	Use:     "meds",
	Aliases: []string{"m"},
	Short:   "Manage medications and check interactions",
	Long: `Manage the active medication list and check for drug interactions.

Every change to the list re-checks all pairs against the interaction
reference data and prints what was found.

COMMANDS:

  set       Replace the whole medication list
  add       Add one medication
  remove    Remove one medication
  list      Show the current list and its interactions
  check     Check arbitrary drugs without changing the list

EXAMPLES:

  medtrack meds set Warfarin Aspirin
  medtrack meds add Ibuprofen
  medtrack meds remove Warfarin
  medtrack meds check Metformin Alcohol`,
}

var medsSetCmd = &cobra.Command{
	Use:   "set <drug>...",
	Short: "Replace the medication list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := session.SetMedications(args)
		color.Green("✓ Medications set: %s", strings.Join(session.Medications(), ", "))
		printInteractions(found)
		return nil
	},
}

var medsAddCmd = &cobra.Command{
	Use:   "add <drug>",
	Short: "Add a medication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := session.AddMedication(args[0])
		color.Green("✓ Added %s", args[0])
		printInteractions(found)
		return nil
	},
}

var medsRemoveCmd = &cobra.Command{
	Use:     "remove <drug>",
	Aliases: []string{"rm"},
	Short:   "Remove a medication",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := session.RemoveMedication(args[0])
		color.Green("✓ Removed %s", args[0])
		printInteractions(found)
		return nil
	},
}

var medsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show medications and their interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		meds := session.Medications()
		if len(meds) == 0 {
			fmt.Println("No medications set.")
			return nil
		}
		for _, m := range meds {
			fmt.Println(" ", m)
		}
		printInteractions(session.Interactions())
		return nil
	},
}

var medsCheckCmd = &cobra.Command{
	Use:   "check <drug>...",
	Short: "Check drugs for interactions without saving them",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := interact.Checker{Symmetric: cfg.SymmetricInteractions}
		printInteractions(checker.Check(args))
		return nil
	},
}

func printInteractions(found []models.Interaction) {
	if len(found) == 0 {
		fmt.Println("No known interactions.")
		return
	}

	fmt.Printf("\n%d interaction(s) found:\n", len(found))
	for _, in := range found {
		severity := severityColor(in.Severity).Sprintf("[%s]", in.Severity)
		fmt.Printf("  %s %s + %s\n", severity, in.Drugs[0], in.Drugs[1])
		fmt.Printf("      %s\n", in.Effects)
		fmt.Printf("      %s\n", color.New(color.Faint).Sprint(in.Recommendation))
	}
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case models.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func init() {
	medsCmd.AddCommand(medsSetCmd)
	medsCmd.AddCommand(medsAddCmd)
	medsCmd.AddCommand(medsRemoveCmd)
	medsCmd.AddCommand(medsListCmd)
	medsCmd.AddCommand(medsCheckCmd)
	rootCmd.AddCommand(medsCmd)
}
