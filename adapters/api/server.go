package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"randlab/app"
	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/internal"
	"randlab/ports"
)

// Server exposes the analysis service as a JSON API
type Server struct {
	service *app.AnalysisService
	reports ports.ReportRepository
	router  *gin.Engine
	log     *internal.Logger
	port    string
}

// AnalyzeRequest is the JSON body for POST /api/analyze
type AnalyzeRequest struct {
	Generator  string `json:"generator"`
	DomainSize int    `json:"n"`
	SampleSize int    `json:"sample_size"`
	Seed       int64  `json:"seed"`
	Check      string `json:"check,omitempty"`
}

// NewServer creates a new API server
func NewServer(service *app.AnalysisService, reports ports.ReportRepository, port string) *Server {
	s := &Server{
		service: service,
		reports: reports,
		router:  gin.Default(),
		log:     internal.DefaultLogger.Named("api"),
		port:    port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/reports", s.handleListReports)
		api.GET("/reports/:id", s.handleGetReport)
		api.GET("/checks", s.handleListChecks)
		api.GET("/generators", s.handleListGenerators)
	}
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it fails
func (s *Server) Start() error {
	s.log.Info("API server listening on :%s", s.port)
	return s.router.Run(":" + s.port)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	kind, err := randstat.ParseGeneratorKind(req.Generator)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := randstat.TestConfig{
		DomainSize: req.DomainSize,
		SampleSize: req.SampleSize,
		Seed:       req.Seed,
	}

	report, err := s.service.Run(c.Request.Context(), kind, cfg, req.Check)
	if err != nil {
		switch {
		case core.IsInvalidConfigError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case core.IsRunInProgressError(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case core.IsNotFoundError(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			s.log.Error("analysis run failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListReports(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusOK, gin.H{"reports": []*randstat.Report{}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reports, err := s.reports.List(ctx, 50)
	if err != nil {
		s.log.Error("failed to list reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (s *Server) handleGetReport(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report storage not configured"})
		return
	}

	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.reports.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		s.log.Error("failed to load report %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListChecks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checks": s.service.Checks()})
}

func (s *Server) handleListGenerators(c *gin.Context) {
	kinds := randstat.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	c.JSON(http.StatusOK, gin.H{"generators": names})
}
