// ABOUTME: Tests for the health score calculator.
// ABOUTME: Validates additive rules, clamping, and determinism.
package score

import (
	"testing"

	"github.com/harperreed/medtrack/internal/models"
)

func bpReading(sys, dia float64) models.Reading {
	return models.NewReading(models.KindBloodPressure, map[string]float64{
		models.FieldSystolic:  sys,
		models.FieldDiastolic: dia,
	})
}

func glucoseReading(v float64) models.Reading {
	return models.NewReading(models.KindGlucose, map[string]float64{
		models.FieldValue: v,
	})
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		extraction models.Extraction
		want       int
	}{
		{"empty extraction keeps base", models.Extraction{}, 85},
		{"normal bp adds 5", models.Extraction{
			models.KindBloodPressure: bpReading(118, 76),
		}, 90},
		{"borderline bp no change", models.Extraction{
			models.KindBloodPressure: bpReading(130, 85),
		}, 85},
		{"high bp subtracts 10", models.Extraction{
			models.KindBloodPressure: bpReading(150, 95),
		}, 75},
		{"normal glucose adds 3", models.Extraction{
			models.KindGlucose: glucoseReading(92),
		}, 88},
		{"elevated glucose no change", models.Extraction{
			models.KindGlucose: glucoseReading(110),
		}, 85},
		{"high glucose subtracts 8", models.Extraction{
			models.KindGlucose: glucoseReading(130),
		}, 77},
		{"high bp and glucose compound", models.Extraction{
			models.KindBloodPressure: bpReading(150, 95),
			models.KindGlucose:       glucoseReading(130),
		}, 67},
		{"best case", models.Extraction{
			models.KindBloodPressure: bpReading(110, 70),
			models.KindGlucose:       glucoseReading(90),
		}, 93},
		{"unscored kinds contribute nothing", models.Extraction{
			models.KindHeartRate: models.NewReading(models.KindHeartRate,
				map[string]float64{models.FieldValue: 72}),
		}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.extraction)
			if got != tt.want {
				t.Errorf("Calculate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	e := models.Extraction{
		models.KindBloodPressure: bpReading(118, 76),
	}
	first := Calculate(e)
	for i := 0; i < 5; i++ {
		if got := Calculate(e); got != first {
			t.Fatalf("Calculate() not deterministic: %d != %d", got, first)
		}
	}
}

func TestCalculateClamped(t *testing.T) {
	got := Calculate(models.Extraction{
		models.KindBloodPressure: bpReading(180, 110),
		models.KindGlucose:       glucoseReading(300),
	})
	if got < 0 || got > 100 {
		t.Errorf("Calculate() = %d, outside [0,100]", got)
	}
}
