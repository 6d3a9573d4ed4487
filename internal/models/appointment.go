// ABOUTME: Appointment model for facility bookings.
// ABOUTME: Created by the book operation, appended to session state.
package models

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Doctor describes the practitioner assigned to an appointment.
type Doctor struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
}

// Appointment is a confirmed booking at a facility.
type Appointment struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID int       `json:"appointmentId"`
	FacilityName  string    `json:"facilityName"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	PatientName   string    `json:"patientName"`
	Phone         string    `json:"phone"`
	Reason        string    `json:"reason"`
	Doctor        Doctor    `json:"doctorDetails"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PatientInfo carries the booking details supplied by the caller.
type PatientInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

var doctorSurnames = []string{"Sharma", "Patel", "Kumar", "Singh", "Gupta"}

// NewAppointment creates a confirmed next-day appointment at the facility.
func NewAppointment(facility Facility, reason string, patient PatientInfo) Appointment {
	now := time.Now()
	specialty := "General Medicine"
	if containsFold(reason, "cardiac") {
		specialty = "Cardiology"
	}
	return Appointment{
		ID:            uuid.New(),
		AppointmentID: 100000 + rand.Intn(900000),
		FacilityName:  facility.Name,
		Date:          now.AddDate(0, 0, 1).Format(DateFormat),
		Time:          "10:00 AM",
		Service:       "Follow-up Consultation",
		Status:        "confirmed",
		PatientName:   patient.Name,
		Phone:         patient.Phone,
		Reason:        reason,
		Doctor: Doctor{
			Name:       "Dr. " + doctorSurnames[rand.Intn(len(doctorSurnames))],
			Specialty:  specialty,
			Experience: "10+ years experience",
		},
		CreatedAt: now,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
