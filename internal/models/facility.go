// ABOUTME: Facility and Recommendation models for the facility recommender.
// ABOUTME: Facilities are read-only reference catalog entries.
package models

// Facility types found in the catalog.
const (
	FacilityHospital   = "Hospital"
	FacilityClinic     = "Clinic"
	FacilityLaboratory = "Laboratory"
)

// Facility is a static healthcare facility catalog entry.
type Facility struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Services   []string `json:"services"`
	Rating     float64  `json:"rating"`
	DistanceKm float64  `json:"distance"`
	PriceRange string   `json:"priceRange"`
}

// Recommendation pairs a facility with the reason it was suggested.
type Recommendation struct {
	Facility Facility `json:"facility"`
	Reason   string   `json:"reason"`
}
