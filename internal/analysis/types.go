package analysis

import "github.com/serbia-gov/ai-mock/internal/detector"

// AnalysisRequest represents a request to analyze a document
type AnalysisRequest struct {
	DocumentText   string         `json:"document_text"`
	DocumentType   string         `json:"document_type,omitempty"`
	PatientContext map[string]any `json:"patient_context,omitempty"`
}

// AnalysisResponse represents the result of a document analysis
type AnalysisResponse struct {
	RequestID        string             `json:"request_id"`
	Timestamp        string             `json:"timestamp"`
	AnomaliesFound   int                `json:"anomalies_found"`
	Anomalies        []detector.Anomaly `json:"anomalies"`
	ProcessingTimeMs int                `json:"processing_time_ms"`
	ModelUsed        string             `json:"model_used"`
	Confidence       float64            `json:"confidence"`
}

// HealthResponse is the fixed liveness payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Example represents a demo document with its expected outcome
type Example struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DocumentText    string  `json:"document_text"`
	ExpectedAnomaly *string `json:"expected_anomaly"`
}

// ExamplesResponse represents the response containing demo documents
type ExamplesResponse struct {
	Examples []Example `json:"examples"`
}
