package analysis

import (
	"context"
	"time"

	"github.com/serbia-gov/ai-mock/internal/detector"
	"github.com/serbia-gov/ai-mock/internal/shared/metrics"
	"github.com/serbia-gov/ai-mock/internal/shared/types"
)

const (
	// minProcessingTime is the artificial latency floor. The engine answers
	// in microseconds; the floor keeps response timing realistic for the
	// model this service stands in for.
	minProcessingTime = 100 * time.Millisecond

	// timestampLayout is UTC ISO-8601 with microsecond precision and a
	// trailing Z, the format platform clients already parse.
	timestampLayout = "2006-01-02T15:04:05.000000Z"
)

// Service runs document analyses and shapes the responses.
type Service struct {
	detector *detector.Detector
	model    string
}

// NewService creates an analysis service over the given detector.
func NewService(d *detector.Detector, model string) *Service {
	return &Service{detector: d, model: model}
}

// Analyze runs the detection engine over the request's document text and
// assembles the response: fresh request id, UTC timestamp, confidence score
// and the simulated latency floor. Each call is independent; the only
// suspension point is the per-request floor delay, which honors context
// cancellation.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) AnalysisResponse {
	start := time.Now()

	anomalies := s.detector.Detect(req.DocumentText, req.PatientContext)

	elapsed := time.Since(start)
	processingMs := int(elapsed.Milliseconds())

	metrics.RecordAnalysis(req.DocumentType, elapsed)
	for _, a := range anomalies {
		metrics.RecordAnomaly(string(a.Type), string(a.Severity))
	}

	if elapsed < minProcessingTime {
		sleep(ctx, minProcessingTime-elapsed)
		processingMs = int(minProcessingTime.Milliseconds()) + processingMs
	}

	confidence := 0.85
	if len(anomalies) > 0 {
		confidence = 0.95
	}

	return AnalysisResponse{
		RequestID:        types.NewID().String(),
		Timestamp:        time.Now().UTC().Format(timestampLayout),
		AnomaliesFound:   len(anomalies),
		Anomalies:        anomalies,
		ProcessingTimeMs: processingMs,
		ModelUsed:        s.model,
		Confidence:       confidence,
	}
}

// sleep waits for d or until the context is canceled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
