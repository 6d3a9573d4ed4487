// ABOUTME: CLI command for booking follow-up appointments.
// ABOUTME: Validates facility and patient details before booking.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	bookName   string
	bookPhone  string
	bookReason string
)

var bookCmd = &cobra.Command{
	Use:     "book <facility-id>",
	Aliases: []string{"b"},
	Short:   "Book a follow-up appointment",
	Long: `Book a follow-up appointment at a facility by its catalog ID.

The appointment is scheduled for the next day at 10:00 AM with an
assigned doctor. A cardiac reason gets a cardiology specialist.

Examples:
  medtrack book 1 --name "Asha" --phone "+91 98765 43210"
  medtrack book 2 --name "Ravi" --phone "12345" --reason "cardiac follow-up"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		facilityID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid facility ID: %s", args[0])
		}

		reason := bookReason
		if reason == "" {
			reason = "Follow-up based on medical report analysis"
		}

		appt, err := session.BookAppointment(facilityID, reason, models.PatientInfo{
			Name:  bookName,
			Phone: bookPhone,
		})
		if err != nil {
			return fmt.Errorf("failed to book appointment: %w", err)
		}

		color.Green("✓ Appointment confirmed")
		faint := color.New(color.Faint)
		fmt.Printf("  %s #%d\n", faint.Sprint("Booking"), appt.AppointmentID)
		fmt.Printf("  %s %s\n", faint.Sprint("Facility"), appt.FacilityName)
		fmt.Printf("  %s %s at %s\n", faint.Sprint("When"), appt.Date, appt.Time)
		fmt.Printf("  %s %s (%s)\n", faint.Sprint("Doctor"), appt.Doctor.Name, appt.Doctor.Specialty)

		return nil
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookName, "name", "", "patient name (required)")
	bookCmd.Flags().StringVar(&bookPhone, "phone", "", "patient phone (required)")
	bookCmd.Flags().StringVar(&bookReason, "reason", "", "reason for the visit")
	rootCmd.AddCommand(bookCmd)
}
