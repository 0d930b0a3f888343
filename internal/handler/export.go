package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleExport(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "json":
		data, err = h.export.ExportJSON()
		contentType = "application/json; charset=utf-8"
	case "csv":
		data, err = h.export.ExportCSV()
		contentType = "text/csv; charset=utf-8"
	default:
		h.respondError(c, http.StatusBadRequest, fmt.Errorf("unsupported format %q", format))
		return
	}
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.export.Filename(format)+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) handleImport(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	result := h.export.Import(data)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleStats(c *gin.Context) {
	stats, err := h.export.Stats()
	if err != nil {
		h.respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
