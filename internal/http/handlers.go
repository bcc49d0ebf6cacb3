package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"wedding/internal/core"
)

// viewData feeds the index page and its partials.
type (
	guestRow struct {
		ID      int64
		Name    string
		KHR     string
		USD     string
		Address string
	}

	summaryView struct {
		Guests   int64
		TotalKHR string
		TotalUSD string
	}

	indexData struct {
		Title    string
		FontSize int
		Guests   []guestRow
		Summary  summaryView
	}
)

func toGuestRows(guests []core.Guest) []guestRow {
	rows := make([]guestRow, len(guests))
	for i, g := range guests {
		rows[i] = guestRow{
			ID:      g.ID,
			Name:    g.Name,
			KHR:     formatRiel(g.KHR),
			USD:     formatDollars(g.USD),
			Address: g.Address,
		}
	}
	return rows
}

func toSummaryView(s core.Summary) summaryView {
	return summaryView{
		Guests:   s.Guests,
		TotalKHR: formatRiel(s.TotalKHR),
		TotalUSD: formatDollars(s.TotalUSD),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	guests, err := s.reader.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list guests", "error", err)
		InternalServerError("Could not load the guest list").Write(w)
		return
	}
	sum, err := s.reader.Summary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load summary", "error", err)
		InternalServerError("Could not load the summary").Write(w)
		return
	}

	data := indexData{
		Title:    s.title,
		FontSize: s.fontSize,
		Guests:   toGuestRows(guests),
		Summary:  toSummaryView(sum),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render index", "error", err)
	}
}

// handleGuestTable renders the table partial for HTMX refreshes.
func (s *Server) handleGuestTable(w http.ResponseWriter, r *http.Request) {
	guests, err := s.reader.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list guests", "error", err)
		InternalServerError("Could not load the guest list").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "guest-table", indexData{Guests: toGuestRows(guests), FontSize: s.fontSize}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render guest table", "error", err)
	}
}

// handleSummary renders the aggregate banner partial.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.reader.Summary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load summary", "error", err)
		InternalServerError("Could not load the summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "summary", indexData{Summary: toSummaryView(sum)}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render summary", "error", err)
	}
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleReady verifies the store answers before declaring readiness.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]string)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if _, err := s.reader.Summary(r.Context()); err != nil {
		checks["store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
