package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"wedding/internal/core"
	"wedding/internal/services"
)

func (s *Server) handleCreateGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		BadRequestError("Malformed request").Write(w)
		return
	}

	in := services.GuestInput{
		Name:    sanitizeInput(r.Form.Get("name")),
		KHR:     r.Form.Get("khr"),
		USD:     r.Form.Get("usd"),
		Address: sanitizeInput(r.Form.Get("address")),
	}

	id, err := s.guests.Create(r.Context(), in)
	if errors.Is(err, core.ErrEmptyName) {
		UnprocessableEntityError("សូមបញ្ចូលឈ្មោះភ្ញៀវ! Please enter guest name!").Write(w)
		return
	}
	if errors.Is(err, core.ErrInvalidInput) {
		UnprocessableEntityError("សូមបញ្ចូលចំនួនទឹកប្រាក់ឲ្យបានត្រឹមត្រូវ! Please enter valid numbers only!").Write(w)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save guest",
			"error", err,
			"component", "guest_handler",
			"operation", "create")
		InternalServerError("Error saving guest").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Guest created successfully",
		"id", id,
		"component", "guest_handler",
		"operation", "create")

	NewHTMXResponse().
		TriggerGuestCreated(id).
		TriggerFormReset().
		TriggerSuccessNotification("បានរក្សាទុក / Saved").
		Write(w)
}

func (s *Server) handleUpdateGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		BadRequestError("Malformed request").Write(w)
		return
	}

	id, err := parseGuestID(r.Form.Get("id"))
	if err != nil {
		BadRequestError("Invalid guest id").Write(w)
		return
	}

	in := services.GuestInput{
		Name:    sanitizeInput(r.Form.Get("name")),
		KHR:     r.Form.Get("khr"),
		USD:     r.Form.Get("usd"),
		Address: sanitizeInput(r.Form.Get("address")),
	}

	err = s.guests.Update(r.Context(), id, in)
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		UnprocessableEntityError("សូមបញ្ចូលទិន្នន័យឲ្យបានត្រឹមត្រូវ! Please enter valid data!").Write(w)
		return
	case errors.Is(err, core.ErrNotFound):
		NotFoundError("Guest does not exist").Write(w)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Failed to update guest", "error", err, "id", id)
		InternalServerError("Error updating guest").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerGuestUpdated(id).
		TriggerSuccessNotification("បានកែប្រែ / Updated").
		Write(w)
}

func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		MethodNotAllowedError("POST, DELETE").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		BadRequestError("Malformed request").Write(w)
		return
	}

	id, err := parseGuestID(r.Form.Get("id"))
	if err != nil {
		BadRequestError("Invalid guest id").Write(w)
		return
	}

	// Deleting an absent id is a successful no-op.
	if err := s.guests.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete guest", "error", err, "id", id)
		InternalServerError("Error deleting guest").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerGuestDeleted(id).
		TriggerSuccessNotification("បានលុប / Deleted").
		Write(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	// Build the workbook fully before sending headers, so an export failure
	// can still surface as a proper error response.
	var buf bytes.Buffer
	if err := s.report.WriteWorkbook(r.Context(), &buf); err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err, "operation", "export")
		InternalServerError("ការនាំចេញបានបរាជ័យ / Export failed").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Guest list export downloaded", "file", s.exportName, "bytes", buf.Len())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+s.exportName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
