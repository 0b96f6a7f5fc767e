// Package submissionhandler exposes the public intake endpoint of the leave
// application form.
package submissionhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leaveform/internal/domain/submission"
	"leaveform/internal/platform/metrics"
	"leaveform/internal/transport/http/api"
	"leaveform/internal/transport/http/middleware"
)

// Submitter is the slice of the submission service the handler needs.
type Submitter interface {
	Submit(ctx context.Context, p submission.Payload) (submission.Receipt, error)
}

type Handler struct {
	Service   Submitter
	Collector *metrics.Collector
}

func NewHandler(service Submitter, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/submissions", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload submission.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	receipt, err := h.Service.Submit(r.Context(), payload)
	if err != nil {
		var verr *submission.ValidationError
		switch {
		case errors.As(err, &verr):
			api.FailWithDetails(w, http.StatusBadRequest, "validation_failed", "submission is invalid", verr.Issues, reqID)
		case errors.Is(err, submission.ErrBusy):
			if h.Collector != nil {
				h.Collector.RecordBusyRejection()
			}
			api.Fail(w, http.StatusServiceUnavailable, "busy", "Server is busy. Please try again.", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "submission_failed", "failed to record the application", reqID)
		}
		return
	}

	if h.Collector != nil {
		h.Collector.RecordSubmission()
	}
	api.Success(w, map[string]any{
		"status":         "success",
		"message":        "Form submitted successfully",
		"row":            receipt.Row,
		"inclusiveDates": receipt.RangeText,
		"duration":       receipt.Duration,
	}, reqID)
}
