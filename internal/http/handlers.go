package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"symptom-assistant/internal/core"
	"symptom-assistant/internal/db"
	"symptom-assistant/pkg"
)

//go:embed templates/*.html
var templateFS embed.FS

// History reads back recorded exchanges.  *db.Recorder implements it.
type History interface {
	List(ctx context.Context, limit int) ([]pkg.LogRecord, error)
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Chat          *core.ChatService
	History       History
	Templates     *template.Template
	DefaultLocale string
}

// NewServer constructs a Server with the embedded chat templates.
func NewServer(chat *core.ChatService, history History, defaultLocale string) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		Chat:          chat,
		History:       history,
		Templates:     tmpl,
		DefaultLocale: defaultLocale,
	}, nil
}

// ServeHTTP dispatches incoming requests based on the URL path.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/" && r.Method == http.MethodGet:
		s.handleChatPage(w, r)
	// Submit symptoms: POST /api/exchanges
	case path == "/api/exchanges" && r.Method == http.MethodPost:
		s.handlePostExchange(w, r)
	// Audit log: GET /api/exchanges?limit=N
	case path == "/api/exchanges" && r.Method == http.MethodGet:
		s.handleListExchanges(w, r)
	// Locale bundle: GET /api/locales/{id}
	case strings.HasPrefix(path, "/api/locales/") && r.Method == http.MethodGet:
		s.handleLocale(w, r, strings.TrimPrefix(path, "/api/locales/"))
	default:
		http.NotFound(w, r)
	}
}

// locale resolves a requested locale key, falling back to the default when
// none was given.
func (s *Server) locale(id string) (core.Locale, error) {
	if id == "" {
		id = s.DefaultLocale
	}
	return core.LookupLocale(id)
}

// handleChatPage renders the chat window with its welcome line.
func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	loc, err := s.locale(r.URL.Query().Get("lang"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := struct {
		Locale  core.Locale
		Locales []core.Locale
	}{loc, core.Locales()}
	if err := s.Templates.ExecuteTemplate(w, "chat.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handlePostExchange runs one round-trip and returns the scrollback lines to
// append to the chat log as an HTML fragment.  This endpoint is triggered via
// HTMX from the chat page.
func (s *Server) handlePostExchange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := pkg.DiagnoseRequest{
		Locale:   r.FormValue("lang"),
		Symptoms: r.FormValue("symptoms"),
	}
	loc, err := s.locale(req.Locale)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var lines []string
	res, err := s.Chat.Diagnose(r.Context(), loc, req.Symptoms)
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		lines = []string{loc.EmptyInput}
	case err == nil:
		lines = exchangeLines(loc, res)
	case errors.Is(err, db.ErrStore):
		// The answer is valid; the user is told it was not recorded.
		lines = append(exchangeLines(loc, res), loc.StoreFailure)
	default:
		slog.Error("diagnose failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, "lines", lines); err != nil {
		slog.Error("failed to render exchange", "error", err)
	}
}

func exchangeLines(loc core.Locale, res core.Result) []string {
	return []string{
		loc.DoctorPrefix + ": " + res.Exchange.UserText,
		loc.AssistantPrefix + ": " + res.Display,
	}
}

// handleListExchanges returns the most recent log rows as JSON, oldest
// first.
func (s *Server) handleListExchanges(w http.ResponseWriter, r *http.Request) {
	limit := db.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	records, err := s.History.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list exchanges", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []pkg.LogRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// handleLocale returns a locale bundle as JSON so other front ends can build
// the same window.
func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request, id string) {
	loc, err := core.LookupLocale(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loc)
}
