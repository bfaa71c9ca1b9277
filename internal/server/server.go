package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/api"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/config"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/service/session"
)

// Server is the local HTTP server wrapping the analysis pipeline.
type Server struct {
	router   *gin.Engine
	sessions *session.Store
	api      *api.Handler
}

// NewServer creates the server and wires the API routes.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewStore()

	s := &Server{
		router:   gin.Default(),
		sessions: sessions,
		api:      api.NewHandler(cfg, sessions),
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Sessions exposes the session store for tests.
func (s *Server) Sessions() *session.Store {
	return s.sessions
}
