package http

import (
	"context"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"wedding/internal/config"
	"wedding/internal/core"
	applog "wedding/internal/log"
	"wedding/internal/services"
	appweb "wedding/web"
)

// The presentation layer depends only on these contracts, never on the
// storage engine directly.
type (
	// GuestWriter accepts raw field text and performs normalization,
	// coercion and persistence.
	GuestWriter interface {
		Create(ctx context.Context, in services.GuestInput) (int64, error)
		Update(ctx context.Context, id int64, in services.GuestInput) error
		Delete(ctx context.Context, id int64) error
	}

	// GuestReader supplies the table rows and the aggregate summary.
	GuestReader interface {
		ListAll(ctx context.Context) ([]core.Guest, error)
		Summary(ctx context.Context) (core.Summary, error)
	}

	// ReportWriter streams the xlsx report.
	ReportWriter interface {
		WriteWorkbook(ctx context.Context, w io.Writer) error
	}
)

type Server struct {
	http.Server
	templates *template.Template

	guests GuestWriter
	reader GuestReader
	report ReportWriter

	title      string
	fontSize   int
	exportName string
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, cfg *config.Config, logger *applog.Logger, gw GuestWriter, gr GuestReader, rw ReportWriter) *Server {
	mux := http.NewServeMux()

	s := &Server{
		guests:     gw,
		reader:     gr,
		report:     rw,
		title:      cfg.AppTitle,
		fontSize:   cfg.FontSize,
		exportName: cfg.ExportPath,
	}
	s.Server = http.Server{
		Addr:    addr,
		Handler: applog.Middleware(logger)(applog.Access(logger, mux)),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/guests", s.withSecurityHeaders(s.handleCreateGuest))
	mux.HandleFunc("/guests/update", s.withSecurityHeaders(s.handleUpdateGuest))
	mux.HandleFunc("/guests/delete", s.withSecurityHeaders(s.handleDeleteGuest))
	mux.HandleFunc("/export", s.withSecurityHeaders(s.handleExport))
	// UI partials
	mux.HandleFunc("/ui/guests", s.withSecurityHeaders(s.handleGuestTable))
	mux.HandleFunc("/ui/summary", s.withSecurityHeaders(s.handleSummary))

	return s
}

// withSecurityHeaders adds security headers to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next(w, r)
	}
}
