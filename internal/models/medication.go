// ABOUTME: Medication and Interaction models for the drug interaction checker.
// ABOUTME: Interactions are derived from the reference table, never persisted.
package models

// Severity classifies how serious a drug interaction is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Medication is a user-entered drug, unique by exact name.
type Medication struct {
	Name string `json:"name"`
}

// Interaction is a flagged pairwise risk between two medications.
// Drugs preserves the order the pair was checked in: the first entry is
// the drug whose reference table row produced the match.
type Interaction struct {
	Drugs          [2]string `json:"drugs"`
	Severity       Severity  `json:"severity"`
	Effects        string    `json:"effects"`
	Recommendation string    `json:"recommendation"`
}
