package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/config"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/service/session"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/summary"
)

// Handler wires the HTTP boundary to the ingestion and aggregation core.
type Handler struct {
	cfg       *config.AppConfig
	sessions  *session.Store
	downloads *downloadStore
	started   time.Time
}

// NewHandler creates the API handler.
func NewHandler(cfg *config.AppConfig, sessions *session.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		sessions:  sessions,
		downloads: newDownloadStore(),
		started:   time.Now(),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/config", h.GetConfig)

	router.POST("/upload", h.Upload)
	router.GET("/sessions/:id", h.GetSession)
	router.DELETE("/sessions/:id", h.DeleteSession)

	router.GET("/weekly", h.Weekly)
	router.GET("/daily", h.Daily)

	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.Download)
}

// GetStatus reports process health.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"sessions":       h.sessions.Count(),
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}

// GetConfig exposes the reporting parameters the chart renderer needs.
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"shift_order":   model.ShiftOrder,
		"shift_hours":   summary.ShiftHours,
		"saegen_target": h.cfg.Business.SawingTarget,
		"month_sheets":  h.cfg.Business.MonthSheets,
	})
}
