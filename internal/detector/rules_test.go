package detector

import "testing"

// TestDefaultRulesShape tests the structural invariants of the rule table.
func TestDefaultRulesShape(t *testing.T) {
	rules := DefaultRules()

	if len(rules) != 5 {
		t.Fatalf("Expected 5 rules, got %d", len(rules))
	}

	validKinds := map[ConflictKind]bool{
		ConflictInstruction: true,
		ConflictConclusion:  true,
		ConflictStatement:   true,
		ConflictValue:       true,
	}

	validTypes := map[AnomalyType]bool{
		AnomalyTypeImpossibleInstruction: true,
		AnomalyTypeLogicalInconsistency:  true,
		AnomalyTypeDataConflict:          true,
		AnomalyTypeProtocolViolation:     true,
	}

	validSeverities := map[SeverityLevel]bool{
		SeverityInfo:     true,
		SeverityWarning:  true,
		SeverityCritical: true,
	}

	for i, rule := range rules {
		if len(rule.Base) == 0 {
			t.Errorf("Rule %d: no base patterns", i)
		}
		if len(rule.Conflict.Patterns) == 0 {
			t.Errorf("Rule %d: no conflict patterns", i)
		}
		if !validKinds[rule.Conflict.Kind] {
			t.Errorf("Rule %d: invalid conflict kind %q", i, rule.Conflict.Kind)
		}
		if !validTypes[rule.Finding.Type] {
			t.Errorf("Rule %d: invalid anomaly type %q", i, rule.Finding.Type)
		}
		if !validSeverities[rule.Finding.Severity] {
			t.Errorf("Rule %d: invalid severity %q", i, rule.Finding.Severity)
		}
		if rule.Finding.Title == "" || rule.Finding.Description == "" {
			t.Errorf("Rule %d: finding missing title or description", i)
		}
		if len(rule.Finding.Evidence) == 0 {
			t.Errorf("Rule %d: finding has no evidence", i)
		}
		if rule.Finding.Recommendation == "" {
			t.Errorf("Rule %d: finding has no recommendation", i)
		}
	}
}

// TestDefaultRulesOrder tests that the table order matches the anomaly type
// sequence responses are expected to preserve.
func TestDefaultRulesOrder(t *testing.T) {
	rules := DefaultRules()

	expected := []AnomalyType{
		AnomalyTypeImpossibleInstruction,
		AnomalyTypeLogicalInconsistency,
		AnomalyTypeLogicalInconsistency,
		AnomalyTypeDataConflict,
		AnomalyTypeProtocolViolation,
	}

	for i, want := range expected {
		if rules[i].Finding.Type != want {
			t.Errorf("Rule %d: expected type %s, got %s", i, want, rules[i].Finding.Type)
		}
	}
}

// TestDefaultRulesConflictKinds tests the tagged conflict group per rule.
func TestDefaultRulesConflictKinds(t *testing.T) {
	rules := DefaultRules()

	expected := []ConflictKind{
		ConflictInstruction,
		ConflictConclusion,
		ConflictConclusion,
		ConflictStatement,
		ConflictValue,
	}

	for i, want := range expected {
		if rules[i].Conflict.Kind != want {
			t.Errorf("Rule %d: expected conflict kind %s, got %s", i, want, rules[i].Conflict.Kind)
		}
	}
}
