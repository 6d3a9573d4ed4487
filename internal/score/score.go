// ABOUTME: Health score calculator folding extracted readings into 0-100.
// ABOUTME: Pure and deterministic; recomputes from base 85 per extraction.
package score

import "github.com/harperreed/medtrack/internal/models"

// Base is the starting score each computation builds on. Categories
// absent from the extraction contribute nothing.
const Base = 85

// Calculate folds the current extraction into a clamped [0,100] score.
// The score is always recomputed from the base, not accumulated across
// submissions.
func Calculate(extraction models.Extraction) int {
	s := Base

	if bp, ok := extraction[models.KindBloodPressure]; ok {
		sys := bp.Value(models.FieldSystolic)
		dia := bp.Value(models.FieldDiastolic)
		switch {
		case sys <= 120 && dia <= 80:
			s += 5
		case sys > 140 || dia > 90:
			s -= 10
		}
	}

	if g, ok := extraction[models.KindGlucose]; ok {
		v := g.Value(models.FieldValue)
		switch {
		case v <= 100:
			s += 3
		case v > 125:
			s -= 8
		}
	}

	return clamp(s, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
