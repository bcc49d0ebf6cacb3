package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding/internal/config"
	"wedding/internal/core"
	applog "wedding/internal/log"
	"wedding/internal/services"
)

// fakeGuestbook implements GuestWriter, GuestReader and ReportWriter with
// canned results and call recording.
type fakeGuestbook struct {
	guests  []core.Guest
	summary core.Summary

	createErr error
	updateErr error
	deleteErr error
	readErr   error
	reportErr error

	created []services.GuestInput
	deleted []int64
}

func (f *fakeGuestbook) Create(_ context.Context, in services.GuestInput) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, in)
	return int64(len(f.created)), nil
}

func (f *fakeGuestbook) Update(_ context.Context, id int64, in services.GuestInput) error {
	return f.updateErr
}

func (f *fakeGuestbook) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGuestbook) ListAll(context.Context) ([]core.Guest, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.guests, nil
}

func (f *fakeGuestbook) Summary(context.Context) (core.Summary, error) {
	if f.readErr != nil {
		return core.Summary{}, f.readErr
	}
	return f.summary, nil
}

func (f *fakeGuestbook) WriteWorkbook(_ context.Context, w io.Writer) error {
	if f.reportErr != nil {
		return f.reportErr
	}
	_, err := w.Write([]byte("PK\x03\x04 fake workbook"))
	return err
}

func newTestServer(fake *fakeGuestbook) *Server {
	logger := applog.New(applog.Config{
		Handler: slog.NewTextHandler(io.Discard, nil),
	})
	cfg := &config.Config{
		Port:       "8080",
		DBPath:     "wedding_data.db",
		ExportPath: "Wedding_List_Export.xlsx",
		AppTitle:   "Wedding Manager",
		FontSize:   12,
	}
	return NewServer(":8080", cfg, logger, fake, fake, fake)
}

func doRequest(s *Server, method, target string, form string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != "" {
		body = strings.NewReader(form)
	}
	req := httptest.NewRequest(method, target, body)
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&fakeGuestbook{})

	rec := doRequest(s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected healthz body: %s", rec.Body.String())
	}
}

func TestReadyzReportsStoreFailure(t *testing.T) {
	s := newTestServer(&fakeGuestbook{readErr: errors.New("disk gone")})

	rec := doRequest(s, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not_ready") {
		t.Fatalf("unexpected readyz body: %s", rec.Body.String())
	}
}

func TestIndexRendersGuestsAndSummary(t *testing.T) {
	s := newTestServer(&fakeGuestbook{
		guests: []core.Guest{
			{ID: 2, Name: "ចាន់ ដារ៉ា", KHR: 2500, USD: 5.5},
			{ID: 1, Name: "Sok Sary", KHR: 1000, USD: 10},
		},
		summary: core.Summary{Guests: 2, TotalKHR: 3500, TotalUSD: 15.5},
	})

	rec := doRequest(s, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("index status = %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"ចាន់ ដារ៉ា", "Sok Sary", "2,500", "$15.50", "Wedding Manager"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index missing %q", want)
		}
	}

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("missing security header, got %q", got)
	}
}

func TestIndexUnknownPathIs404(t *testing.T) {
	s := newTestServer(&fakeGuestbook{})

	rec := doRequest(s, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
