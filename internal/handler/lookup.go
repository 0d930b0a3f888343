package handler

import (
	"net/http"

	"echolingo/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleScenes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SceneTips)
}

func (h *Handler) handleScene(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SceneTipByName(c.Param("name")))
}

func (h *Handler) handleDictionary(c *gin.Context) {
	c.JSON(http.StatusOK, h.dictionary.Lookup(c.Param("word")))
}
