package http

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/surveyshell"
	"github.com/aretw0/surveyshell/pkg/domain"
	"github.com/aretw0/surveyshell/pkg/input"
	"github.com/aretw0/surveyshell/pkg/markdown"
	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/aretw0/surveyshell/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StaticMount is the URL prefix under which static files and survey sources are served.
const StaticMount = "/static/"

//go:embed templates/*.html
var templateFS embed.FS

// Recorder receives the server's operational measurements.
type Recorder interface {
	ObserveRequest(route string, code int)
	ObserveRender()
	ObserveSourceLoad(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, int) {}
func (nopRecorder) ObserveRender()             {}
func (nopRecorder) ObserveSourceLoad(string)   {}

// Server hosts the survey pages behind the navigation guard.
type Server struct {
	Sources ports.SourceLoader
	Gate    *navigation.Gate

	static         fs.FS
	logger         *slog.Logger
	recorder       Recorder
	metricsHandler http.Handler
	maxInputSize   int
	pages          *template.Template
}

// Option configures a Server.
type Option func(*Server)

// WithStatic serves fsys under /static/.
func WithStatic(fsys fs.FS) Option {
	return func(s *Server) {
		s.static = fsys
	}
}

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the measurement sink.
func WithRecorder(r Recorder) Option {
	return func(s *Server) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithMetricsHandler exposes h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// WithMaxInputSize limits the markdown accepted by /api/render.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a server. A nil gate guards with an Uninitialized state.
func NewServer(sources ports.SourceLoader, gate *navigation.Gate, opts ...Option) *Server {
	if gate == nil {
		gate = navigation.NewGate(nil)
	}
	s := &Server{
		Sources:      sources,
		Gate:         gate,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder:     nopRecorder{},
		maxInputSize: input.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	funcs := template.FuncMap{
		markdown.FilterName: func(text string) template.HTML {
			s.recorder.ObserveRender()
			return markdown.HTML(text)
		},
	}
	s.pages = template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	return s
}

// NewHandler creates a new HTTP handler for the shell.
func NewHandler(sources ports.SourceLoader, gate *navigation.Gate, opts ...Option) http.Handler {
	return NewServer(sources, gate, opts...).Routes()
}

// Routes builds the router. Operational endpoints, the render API and static
// files bypass the guard; every page route, any unmatched path and any method
// mismatch goes through it.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}
	if s.static != nil {
		r.Handle(StaticMount+"*", http.StripPrefix(StaticMount, http.FileServer(http.FS(s.static))))
	}
	r.Post("/api/render", s.Render)

	r.Group(func(r chi.Router) {
		r.Use(s.guard)
		r.Get("/", s.Home)
		r.Get(navigation.SurveyPrefix, s.Survey)
	})
	r.NotFound(s.guard(http.HandlerFunc(s.notFound)).ServeHTTP)
	r.MethodNotAllowed(s.guard(http.HandlerFunc(s.methodNotAllowed)).ServeHTTP)

	return r
}

// httpContinuation adapts a request to the guard's continuation callbacks.
type httpContinuation struct {
	w    http.ResponseWriter
	r    *http.Request
	next http.Handler
}

func (c httpContinuation) Proceed() {
	c.next.ServeHTTP(c.w, c.r)
}

func (c httpContinuation) Redirect(path string) {
	http.Redirect(c.w, c.r, path, http.StatusFound)
}

func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Gate.Before(navigation.Target{Path: r.URL.Path}, httpContinuation{w: w, r: r, next: next})
	})
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		s.recorder.ObserveRequest(route, status)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type page struct {
	Title  string
	Body   string
	Survey *domain.Survey
	Source string
}

const homeBody = "= Hello\nYou have **completed** the introduction.\n\nTake the //intro survey// again any time."

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "home", page{Title: "Survey Shell", Body: homeBody})
}

// Survey handles GET /survey?source=/static/<name>. Without a source it shows the default survey.
func (s *Server) Survey(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = navigation.DefaultSource
	}

	name, err := sourceName(source)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.logger.Warn("Survey: Invalid source", "source", source, "error", err)
		return
	}

	data, err := s.Sources.Load(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSourceNotFound):
			s.recorder.ObserveSourceLoad("not_found")
			http.Error(w, "Survey not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidSourceName):
			s.recorder.ObserveSourceLoad("invalid")
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			s.recorder.ObserveSourceLoad("error")
			http.Error(w, "Failed to load survey", http.StatusInternalServerError)
			s.logger.Error("Survey: Load failed", "source", name, "error", err)
		}
		return
	}

	survey, err := domain.ParseSurvey(data)
	if err != nil {
		s.recorder.ObserveSourceLoad("invalid")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		s.logger.Warn("Survey: Invalid document", "source", name, "error", err)
		return
	}
	s.recorder.ObserveSourceLoad("ok")

	s.renderPage(w, "survey", page{Title: survey.Title, Survey: survey, Source: source})
}

// sourceName maps a source URL such as "/static/intro.json" to a loader name.
func sourceName(source string) (string, error) {
	rest, ok := strings.CutPrefix(source, StaticMount)
	if !ok {
		return "", errors.New("source must be under " + StaticMount)
	}
	return domain.CleanSourceName(rest)
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Template render failed", "template", name, "error", err)
	}
}

// RenderRequest is the body of POST /api/render.
type RenderRequest struct {
	Markdown string `json:"markdown"`
}

// RenderResponse is the reply of POST /api/render.
type RenderResponse struct {
	HTML string `json:"html"`
}

// Render handles the POST /api/render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	var body RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Render: Invalid request body", "error", err)
		return
	}

	clean, err := input.Sanitize(body.Markdown, s.maxInputSize)
	if err != nil {
		http.Error(w, "Invalid input: "+err.Error(), http.StatusBadRequest)
		s.logger.Warn("Render: Input rejected", "error", err, "size", len(body.Markdown))
		return
	}

	s.recorder.ObserveRender()
	writeJSON(w, s.logger, RenderResponse{HTML: markdown.Render(clean)})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]any{
		"app":         "surveyshell-http",
		"version":     strings.TrimSpace(surveyshell.Version),
		"initialized": s.Gate.State().Initialized(),
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
