package whtreport

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Maximum accepted request body, generous for an assessment payload.
const maxRequestBody = 1 << 20

// Handler serves the render endpoint: an OPTIONS pre-flight and a POST
// that turns an assessment payload into a base64-encoded PDF attachment.
// Stateless; one instance serves concurrent requests.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler wires a Service to the HTTP surface. A nil logger falls back
// to slog.Default.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// generateResponse is the success envelope.
type generateResponse struct {
	Success           bool            `json:"success"`
	PDFAttachmentData *attachmentData `json:"pdfAttachmentData"`
}

type attachmentData struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// errorResponse is the failure envelope for both client and server errors.
type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP dispatches by method. Every response, the pre-flight probe
// included, carries permissive cross-origin headers.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		h.generate(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var report AssessmentReport
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&report); err != nil {
		h.logger.Error("report generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "PDF Generation Failed: " + err.Error()})
		return
	}

	rendered, err := h.service.Generate(r.Context(), report)
	switch {
	case errors.Is(err, ErrMissingAssessmentID), errors.Is(err, ErrMissingVerdict):
		h.logger.Warn("report generation rejected",
			"assessment_id", report.AssessmentID, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logger.Error("report generation failed",
			"assessment_id", report.AssessmentID, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "PDF Generation Failed: " + err.Error()})
		return
	}

	h.logger.Info("report generated",
		"assessment_id", report.AssessmentID,
		"filename", rendered.Filename,
		"pages", rendered.Pages,
		"bytes", len(rendered.PDF))

	writeJSON(w, http.StatusOK, generateResponse{
		Success: true,
		PDFAttachmentData: &attachmentData{
			Filename: rendered.Filename,
			Content:  base64.StdEncoding.EncodeToString(rendered.PDF),
		},
	})
}

func setCORSHeaders(w http.ResponseWriter) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encode errors past this point cannot be reported to the client;
	// the status line is already written.
	_ = json.NewEncoder(w).Encode(v)
}
