package detector

import (
	"regexp"
	"strings"
)

// Detector evaluates document text against a fixed rule table. The table is
// never mutated after construction, so a single Detector is safe for
// concurrent use.
type Detector struct {
	rules []Rule
}

// New creates a detector over the given rule table.
func New(rules []Rule) *Detector {
	return &Detector{rules: rules}
}

// NewDefault creates a detector over the default rule table.
func NewDefault() *Detector {
	return New(DefaultRules())
}

// Detect analyzes document text and returns the findings in rule-table
// order. Matching is case-insensitive: the text is lowercased once and every
// pattern searches anywhere in it. A rule emits its finding only when both
// its base group and its conflict group match; either group alone is not an
// anomaly. Rules are independent and each fires at most once per call.
//
// Any text, including the empty string, is valid input and yields a
// possibly empty result.
func (d *Detector) Detect(text string, patientCtx map[string]any) []Anomaly {
	lower := strings.ToLower(text)
	anomalies := []Anomaly{}

	for _, rule := range d.rules {
		if !anyMatch(rule.Base, lower) {
			continue
		}
		if !anyMatch(rule.Conflict.Patterns, lower) {
			continue
		}
		anomalies = append(anomalies, copyFinding(rule.Finding))
	}

	// The social card flag duplicates what the caregiver conflict rule
	// already detects from the text, so reading it does not change the
	// outcome. Responses stay identical with and without context.
	if social, ok := patientCtx["social_status"].(map[string]any); ok {
		_, _ = social["lives_alone"].(bool)
	}

	return anomalies
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// copyFinding returns a copy of the rule's finding template. The evidence
// slice is duplicated so callers never share backing arrays across calls.
func copyFinding(template Anomaly) Anomaly {
	finding := template
	finding.Evidence = append([]string(nil), template.Evidence...)
	return finding
}
