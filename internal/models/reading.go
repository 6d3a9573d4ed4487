// ABOUTME: Reading model and MetricKind enum for clinical measurements.
// ABOUTME: Defines the six metric kinds extracted from report text.
package models

import "time"

// MetricKind represents the kind of clinical reading being tracked.
type MetricKind string

const (
	KindBloodPressure MetricKind = "bloodPressure"
	KindGlucose       MetricKind = "glucose"
	KindCholesterol   MetricKind = "cholesterol"
	KindHeartRate     MetricKind = "heartRate"
	KindBMI           MetricKind = "bmi"
	KindWeight        MetricKind = "weight"
)

// Reading value field names.
const (
	FieldSystolic  = "systolic"
	FieldDiastolic = "diastolic"
	FieldValue     = "value"
	FieldTotal     = "total"
	FieldHDL       = "hdl"
	FieldLDL       = "ldl"
)

// MetricUnits maps metric kinds to their display units.
var MetricUnits = map[MetricKind]string{
	KindBloodPressure: "mmHg",
	KindGlucose:       "mg/dL",
	KindCholesterol:   "mg/dL",
	KindHeartRate:     "bpm",
	KindBMI:           "",
	KindWeight:        "kg",
}

// AllMetricKinds returns all valid metric kinds.
var AllMetricKinds = []MetricKind{
	KindBloodPressure, KindGlucose, KindCholesterol,
	KindHeartRate, KindBMI, KindWeight,
}

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	for _, k := range AllMetricKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// DateFormat is the day-precision date layout used for reading identity.
const DateFormat = "2006-01-02"

// Reading is a single dated clinical measurement of one kind.
// A reading is uniquely identified by (Kind, Date): a later extraction
// for the same kind and date replaces the earlier one.
type Reading struct {
	Kind   MetricKind         `json:"kind"`
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// NewReading creates a Reading dated today (UTC).
func NewReading(kind MetricKind, values map[string]float64) Reading {
	return Reading{
		Kind:   kind,
		Date:   time.Now().UTC().Format(DateFormat),
		Values: values,
	}
}

// Value returns the named field, or 0 if absent.
func (r Reading) Value(field string) float64 {
	return r.Values[field]
}

// Has reports whether the named field was extracted.
func (r Reading) Has(field string) bool {
	_, ok := r.Values[field]
	return ok
}

// Extraction is the output of the metric extractor: a partial mapping of
// metric kind to reading. A kind absent from the map means its pattern
// did not match, which is not an error.
type Extraction map[MetricKind]Reading
