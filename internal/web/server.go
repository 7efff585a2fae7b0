package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rickgao/coinboard/internal/metrics"
	"github.com/rickgao/coinboard/internal/state"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Refresher starts a fetch cycle on demand.
type Refresher interface {
	Trigger() uint64
}

// Server renders the dashboard and accepts control events.
type Server struct {
	store     *state.Store
	refresher Refresher
	tracker   *metrics.Tracker
	version   string
	logger    *slog.Logger

	engine *gin.Engine
}

// NewServer wires routes onto a fresh gin engine. tracker may be nil.
func NewServer(store *state.Store, refresher Refresher, tracker *metrics.Tracker, version string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.New("").ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:     store,
		refresher: refresher,
		tracker:   tracker,
		version:   version,
		logger:    logger,
		engine:    gin.New(),
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	s.engine.StaticFS("/static", http.FS(static))
	s.routes()

	return s, nil
}

// Handler returns the HTTP handler for the dashboard.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	// ════════════════════════════════════════════════════════════
	// Dashboard
	// ════════════════════════════════════════════════════════════

	s.engine.GET("/", s.handleIndex)

	// ════════════════════════════════════════════════════════════
	// Control events
	// ════════════════════════════════════════════════════════════

	s.engine.POST("/currency", s.handleCurrency)
	s.engine.POST("/sort", s.handleSort)
	s.engine.POST("/search", s.handleSearch)
	s.engine.POST("/page", s.handlePage)
	s.engine.POST("/code", s.handleCode)
	s.engine.POST("/refresh", s.handleRefresh)

	// ════════════════════════════════════════════════════════════
	// JSON
	// ════════════════════════════════════════════════════════════

	s.engine.GET("/api/state", s.handleState)
	s.engine.GET("/health", s.handleHealth)
	if s.tracker != nil {
		s.engine.GET("/metrics", gin.WrapH(s.tracker.Handler()))
	}
}
