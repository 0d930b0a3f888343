package handler

import (
	"net/http"
	"time"

	"echolingo/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleProgress(c *gin.Context) {
	p, err := h.progress.Get()
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) handleAchievements(c *gin.Context) {
	achievements, err := h.progress.Achievements()
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *Handler) handleSummary(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(domain.DateKeyLayout, date); err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	summary, err := h.summaries.GetOrCreate(date)
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
