package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/serbia-gov/ai-mock/internal/shared/errors"
)

const (
	serviceName    = "ai-mock"
	serviceVersion = "1.0.0"
)

// Handler provides HTTP handlers for the analysis module
type Handler struct {
	service *Service
}

// NewHandler creates a new analysis handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes registers the analysis routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/analyze", h.Analyze)
	r.Get("/examples", h.GetExamples)

	return r
}

// Analyze handles document analysis requests
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentText   *string        `json:"document_text"`
		DocumentType   string         `json:"document_type"`
		PatientContext map[string]any `json:"patient_context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	// An empty document is valid input and yields zero findings; only a
	// missing field is a client error.
	if req.DocumentText == nil {
		writeError(w, errors.Validation("document_text is required", map[string]string{
			"document_text": "required",
		}))
		return
	}

	result := h.service.Analyze(r.Context(), AnalysisRequest{
		DocumentText:   *req.DocumentText,
		DocumentType:   req.DocumentType,
		PatientContext: req.PatientContext,
	})

	writeJSON(w, http.StatusOK, result)
}

// GetExamples returns the demo documents
func (h *Handler) GetExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Examples())
}

// Health returns the fixed liveness payload
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if appErr, ok := err.(*errors.AppError); ok {
		w.WriteHeader(appErr.HTTPStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   appErr.Message,
			"code":    appErr.Code,
			"details": appErr.Details,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
