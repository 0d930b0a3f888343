package handler

import (
	"errors"
	"net/http"
	"strconv"

	"echolingo/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP API to the core services
type Handler struct {
	translations *service.TranslationService
	history      *service.HistoryService
	progress     *service.ProgressService
	summaries    *service.SummaryService
	dictionary   *service.DictionaryService
	export       *service.ExportService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	translations *service.TranslationService,
	history *service.HistoryService,
	progress *service.ProgressService,
	summaries *service.SummaryService,
	dictionary *service.DictionaryService,
	export *service.ExportService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		translations: translations,
		history:      history,
		progress:     progress,
		summaries:    summaries,
		dictionary:   dictionary,
		export:       export,
		logger:       logger,
	}
}

// Router builds a gin engine with all routes registered
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// The browser frontend is served separately and talks cross-origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowMethods(http.MethodDelete)
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", h.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/translations", h.handleTranslate)
		api.GET("/translations", h.handleListTranslations)
		api.POST("/translations/:id/play", h.handlePlay)
		api.POST("/translations/:id/favorite", h.handleToggleFavorite)
		api.DELETE("/translations/:id", h.handleDelete)

		api.GET("/progress", h.handleProgress)
		api.GET("/achievements", h.handleAchievements)
		api.GET("/summaries/:date", h.handleSummary)

		api.GET("/scenes", h.handleScenes)
		api.GET("/scenes/:name", h.handleScene)
		api.GET("/dictionary/:word", h.handleDictionary)

		api.GET("/export", h.handleExport)
		api.POST("/import", h.handleImport)
		api.GET("/stats", h.handleStats)
	}

	return r
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusFor maps service errors onto HTTP statuses: missing records are 404,
// upstream translation failures are 502, everything else is a store failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTranslationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func idParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
