package handler

import (
	"net/http"
	"strconv"

	"echolingo/internal/domain"

	"github.com/gin-gonic/gin"
)

type translateRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
}

func (h *Handler) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	t, err := h.translations.Translate(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// handleListTranslations serves the history views: free-text search via ?q,
// category filter via ?category (with the ALL sentinel), otherwise the
// recency-ordered list truncated to ?limit.
func (h *Handler) handleListTranslations(c *gin.Context) {
	var (
		translations []domain.Translation
		err          error
	)

	switch {
	case c.Query("q") != "":
		translations, err = h.history.Search(c.Query("q"))
	case c.Query("category") != "":
		translations, err = h.history.FilterByCategory(c.Query("category"))
	default:
		limit, _ := strconv.Atoi(c.Query("limit"))
		translations, err = h.history.ListRecent(limit)
	}
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}

	if translations == nil {
		translations = []domain.Translation{}
	}
	c.JSON(http.StatusOK, translations)
}

func (h *Handler) handlePlay(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.translations.Play(id); err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleToggleFavorite(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	t, err := h.history.ToggleFavorite(id)
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) handleDelete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.history.Delete(id); err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}
