package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"randlab/app"
	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/internal"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the web UI: a form to configure a run, one button per check plus a
// full-battery button, the formatted text output, and chart pages for the
// latest report.
type App struct {
	router    *chi.Mux
	service   *app.AnalysisService
	templates *template.Template
	log       *internal.Logger

	mu     sync.RWMutex
	latest *randstat.Report
	notice string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new UI application
func NewApp(service *app.AnalysisService) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		templates: templates,
		log:       internal.DefaultLogger.Named("ui"),
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/run", a.handleRun)
	a.router.Get("/summary", a.handleSummary)

	a.router.Get("/charts/frequencies", a.handleFrequencyChart)
	a.router.Get("/charts/intervals", a.handleIntervalChart)
	a.router.Get("/charts/qq", a.handleQQChart)
	a.router.Get("/charts/acf", a.handleACFChart)
}

// Router exposes the chi mux, mainly for tests
func (a *App) Router() *chi.Mux {
	return a.router
}

// Start runs the HTTP server
func (a *App) Start(port string) error {
	a.log.Info("web UI listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// indexView carries everything the index template renders
type indexView struct {
	Generators []string
	Checks     []string
	Config     randstat.TestConfig
	Generator  string
	Report     *randstat.Report
	Notice     string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	report, notice := a.latest, a.notice
	a.mu.RUnlock()

	view := indexView{
		Generators: generatorNames(),
		Checks:     a.service.Checks(),
		Config:     randstat.TestConfig{DomainSize: 100, SampleSize: 10000, Seed: 1},
		Generator:  randstat.RangeUniform.String(),
		Report:     report,
		Notice:     notice,
	}
	if report != nil {
		view.Config = report.Config
		view.Generator = report.GeneratorID
	}
	a.renderTemplate(w, "index.html", view)
}

func (a *App) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	kind, err := randstat.ParseGeneratorKind(r.FormValue("generator"))
	if err != nil {
		a.setNotice(err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Non-integer input never reaches the analysis core; it is surfaced
	// as a notice exactly like an invalid configuration.
	cfg, err := parseRunForm(r)
	if err != nil {
		a.setNotice(err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	report, err := a.service.Run(r.Context(), kind, cfg, r.FormValue("check"))
	if err != nil {
		switch {
		case core.IsRunInProgressError(err):
			a.setNotice("A run is already in progress; wait for it to finish.")
		default:
			a.setNotice(err.Error())
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.mu.Lock()
	a.latest = report
	a.notice = ""
	a.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleSummary renders the latest report as an HTML page built from a
// markdown digest.
func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	report := a.latestReport()
	if report == nil {
		http.Error(w, "no report yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(renderSummaryHTML(report))
}

func (a *App) latestReport() *randstat.Report {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latest
}

func (a *App) setNotice(msg string) {
	a.mu.Lock()
	a.notice = msg
	a.mu.Unlock()
}

func (a *App) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("failed to render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func generatorNames() []string {
	kinds := randstat.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

// parseRunForm reads the three numeric form fields, rejecting anything that
// is not integer-parseable.
func parseRunForm(r *http.Request) (randstat.TestConfig, error) {
	n, err := formInt(r, "n")
	if err != nil {
		return randstat.TestConfig{}, err
	}
	size, err := formInt(r, "sample_size")
	if err != nil {
		return randstat.TestConfig{}, err
	}
	seed, err := formInt64(r, "seed")
	if err != nil {
		return randstat.TestConfig{}, err
	}
	return randstat.TestConfig{DomainSize: n, SampleSize: size, Seed: seed}, nil
}

func formInt(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, r.FormValue(key))
	}
	return v, nil
}

func formInt64(r *http.Request, key string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(key)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, r.FormValue(key))
	}
	return v, nil
}
