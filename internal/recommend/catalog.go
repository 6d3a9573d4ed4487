// ABOUTME: Static healthcare facility catalog used by the recommender.
// ABOUTME: Read-only reference data; ratings and distances are indicative.
package recommend

import "github.com/harperreed/medtrack/internal/models"

// Catalog returns the static facility reference set.
func Catalog() []models.Facility {
	return facilities
}

// FacilityByID looks up a catalog entry by ID.
func FacilityByID(id int) (models.Facility, bool) {
	for _, f := range facilities {
		if f.ID == id {
			return f, true
		}
	}
	return models.Facility{}, false
}

var facilities = []models.Facility{
	{
		ID:         1,
		Name:       "Apex Heart Institute",
		Type:       models.FacilityHospital,
		Address:    "Mondeal Business Park, Ahmedabad",
		Phone:      "+91 79 4000 1234",
		Services:   []string{"Cardiology", "Cardiac Surgery", "Angioplasty", "Emergency"},
		Rating:     4.7,
		DistanceKm: 3.2,
		PriceRange: "₹₹₹",
	},
	{
		ID:         2,
		Name:       "Sterling Hospital",
		Type:       models.FacilityHospital,
		Address:    "Race Course Circle, Vadodara",
		Phone:      "+91 265 235 0000",
		Services:   []string{"Multi-specialty", "ICU", "Oncology", "Neurology"},
		Rating:     4.6,
		DistanceKm: 2.1,
		PriceRange: "₹₹₹",
	},
	{
		ID:         3,
		Name:       "Sayaji Hospital",
		Type:       models.FacilityHospital,
		Address:    "Sayajigunj, Vadodara",
		Phone:      "+91 265 242 4848",
		Services:   []string{"General Medicine", "Surgery", "Pediatrics", "Emergency"},
		Rating:     4.2,
		DistanceKm: 4.5,
		PriceRange: "₹",
	},
	{
		ID:         4,
		Name:       "Bankers Heart Institute",
		Type:       models.FacilityHospital,
		Address:    "Old Padra Road, Vadodara",
		Phone:      "+91 265 239 2600",
		Services:   []string{"Cardiology", "Cath Lab", "Cardiac Rehab"},
		Rating:     4.5,
		DistanceKm: 5.0,
		PriceRange: "₹₹",
	},
	{
		ID:         5,
		Name:       "SRL Diagnostics",
		Type:       models.FacilityLaboratory,
		Address:    "Alkapuri, Vadodara",
		Phone:      "+91 265 233 7788",
		Services:   []string{"Blood Tests", "Pathology", "Radiology", "Health Packages"},
		Rating:     4.3,
		DistanceKm: 1.8,
		PriceRange: "₹₹",
	},
	{
		ID:         6,
		Name:       "Baroda Medical Clinic",
		Type:       models.FacilityClinic,
		Address:    "Fatehgunj, Vadodara",
		Phone:      "+91 265 278 1122",
		Services:   []string{"General Practice", "Vaccinations", "Minor Procedures"},
		Rating:     4.0,
		DistanceKm: 2.9,
		PriceRange: "₹",
	},
	{
		ID:         7,
		Name:       "Kailash Cancer Hospital",
		Type:       models.FacilityHospital,
		Address:    "Goraj, Vadodara",
		Phone:      "+91 268 626 2626",
		Services:   []string{"Oncology", "Radiotherapy", "Chemotherapy"},
		Rating:     4.4,
		DistanceKm: 28.0,
		PriceRange: "₹₹",
	},
	{
		ID:         8,
		Name:       "Metropolis Laboratory",
		Type:       models.FacilityLaboratory,
		Address:    "Karelibaug, Vadodara",
		Phone:      "+91 265 248 9900",
		Services:   []string{"Blood Tests", "Hormone Panels", "Home Collection"},
		Rating:     4.1,
		DistanceKm: 3.6,
		PriceRange: "₹₹",
	},
}
