package analysis

import (
	"testing"

	"github.com/serbia-gov/ai-mock/internal/detector"
)

// TestExamplesTriggerExpectedAnomalies runs every demo document through the
// engine and checks it produces exactly the advertised outcome.
func TestExamplesTriggerExpectedAnomalies(t *testing.T) {
	d := detector.NewDefault()
	examples := Examples().Examples

	expectations := map[string][]detector.AnomalyType{
		"blind_patient_instructions": {detector.AnomalyTypeImpossibleInstruction},
		// The hypoglycemia report also states that care was not provided,
		// which trips the second inconsistency rule as well.
		"critical_hypoglycemia": {
			detector.AnomalyTypeLogicalInconsistency,
			detector.AnomalyTypeLogicalInconsistency,
		},
		"social_conflict": {detector.AnomalyTypeDataConflict},
		"normal_document": {},
	}

	if len(examples) != len(expectations) {
		t.Fatalf("Expected %d examples, got %d", len(expectations), len(examples))
	}

	for _, example := range examples {
		t.Run(example.ID, func(t *testing.T) {
			want, ok := expectations[example.ID]
			if !ok {
				t.Fatalf("Unexpected example id %q", example.ID)
			}

			anomalies := d.Detect(example.DocumentText, nil)

			if len(anomalies) != len(want) {
				types := make([]detector.AnomalyType, 0, len(anomalies))
				for _, a := range anomalies {
					types = append(types, a.Type)
				}
				t.Fatalf("Expected %d findings, got %d: %v", len(want), len(anomalies), types)
			}

			for i, wantType := range want {
				if anomalies[i].Type != wantType {
					t.Errorf("Finding %d: expected %s, got %s", i, wantType, anomalies[i].Type)
				}
			}
		})
	}
}

// TestExamplesExpectedAnomalyLabels tests the advertised labels on the demo
// documents.
func TestExamplesExpectedAnomalyLabels(t *testing.T) {
	examples := Examples().Examples

	labels := map[string]string{
		"blind_patient_instructions": "IMPOSSIBLE_INSTRUCTION",
		"critical_hypoglycemia":      "LOGICAL_INCONSISTENCY",
		"social_conflict":            "DATA_CONFLICT",
	}

	for _, example := range examples {
		want, ok := labels[example.ID]
		if !ok {
			continue
		}
		if example.ExpectedAnomaly == nil {
			t.Errorf("Example %s: missing expected anomaly label", example.ID)
			continue
		}
		if *example.ExpectedAnomaly != want {
			t.Errorf("Example %s: expected label %s, got %s", example.ID, want, *example.ExpectedAnomaly)
		}
	}
}
