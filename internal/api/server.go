// Package api exposes the document generation service over HTTP.
package api

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/radhagarine/docgenius/pkg/generator"
	"github.com/radhagarine/docgenius/pkg/openapi"
	"github.com/radhagarine/docgenius/pkg/registry"
)

// Server holds the handlers' dependencies.
type Server struct {
	service  *generator.Service
	registry *registry.Registry
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer wires handlers around a generation service and the registry
// backing it.
func NewServer(service *generator.Service, reg *registry.Registry, options ...Option) *Server {
	s := &Server{
		service:  service,
		registry: reg,
		logger:   log.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.handleHealth)
	router.GET("/openapi.json", s.handleOpenAPI)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/document-types", s.handleListTypes)
		apiGroup.GET("/document-types/:type/parameters", s.handleTypeParameters)
		apiGroup.POST("/documents", s.handleGenerate)
		apiGroup.POST("/exports/pdf", s.handleExportPDF)
		apiGroup.POST("/exports/docx", s.handleExportDOCX)
	}
	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (s *Server) handleOpenAPI(c *gin.Context) {
	c.JSON(200, openapi.BuildDocument(s.registry))
}
