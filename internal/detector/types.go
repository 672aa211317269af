package detector

import "regexp"

// SeverityLevel represents the severity of an anomaly
type SeverityLevel string

const (
	SeverityInfo     SeverityLevel = "info"
	SeverityWarning  SeverityLevel = "warning"
	SeverityCritical SeverityLevel = "critical"
)

// AnomalyType represents the type of anomaly detected
type AnomalyType string

const (
	AnomalyTypeImpossibleInstruction AnomalyType = "impossible_instruction"
	AnomalyTypeLogicalInconsistency  AnomalyType = "logical_inconsistency"
	AnomalyTypeDataConflict          AnomalyType = "data_conflict"
	AnomalyTypeProtocolViolation     AnomalyType = "protocol_violation"
)

// Anomaly represents a detected anomaly
type Anomaly struct {
	Type              AnomalyType   `json:"type"`
	Severity          SeverityLevel `json:"severity"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Evidence          []string      `json:"evidence"`
	Recommendation    string        `json:"recommendation"`
	ProtocolReference *string       `json:"protocol_reference,omitempty"`
}

// ConflictKind names the kind of contradiction a rule's secondary pattern
// group establishes.
type ConflictKind string

const (
	// ConflictInstruction: the document instructs something the base
	// condition makes impossible.
	ConflictInstruction ConflictKind = "instruction"
	// ConflictConclusion: the document's conclusion contradicts the facts
	// the base condition established.
	ConflictConclusion ConflictKind = "conclusion"
	// ConflictStatement: two factual statements in the document disagree.
	ConflictStatement ConflictKind = "conflict"
	// ConflictValue: a measured value violates the base condition's
	// protocol threshold.
	ConflictValue ConflictKind = "value"
)

// ConflictGroup is the secondary pattern group of a rule. Every rule carries
// exactly one, tagged with its kind.
type ConflictGroup struct {
	Kind     ConflictKind
	Patterns []*regexp.Regexp
}

// Rule pairs a base pattern group with a conflict group and the finding
// emitted when both match. Patterns are matched against the lowercased
// document text; within each group a single match is enough.
type Rule struct {
	Base     []*regexp.Regexp
	Conflict ConflictGroup
	Finding  Anomaly
}
