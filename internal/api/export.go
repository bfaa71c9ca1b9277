package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/export"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	zipContentType  = "application/zip"
	downloadTTL     = 10 * time.Minute
)

// ExportRequest selects what to render into a downloadable workbook.
type ExportRequest struct {
	Session string `json:"session" binding:"required"`
	Mode    string `json:"mode" binding:"required"` // "woche" or "tag"
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Bundle  bool   `json:"bundle"`                  // wrap the workbook in a ZIP
}

// Export renders the requested aggregation to an .xlsx workbook
// (optionally zipped) and returns a short-lived download token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültige Export-Anfrage"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feld \"date\" muss JJJJ-MM-TT sein"})
		return
	}

	tidy, coeffs, err := h.sessions.CopyData(req.Session)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return
	}
	sess, err := h.sessions.Get(req.Session)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return
	}

	var data []byte
	var name string

	switch req.Mode {
	case "woche":
		result := sess.Cache.Weekly(tidy, date)
		if result == nil {
			c.JSON(http.StatusOK, gin.H{"empty": true})
			return
		}
		f, err := export.WeeklyWorkbook(result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export fehlgeschlagen"})
			return
		}
		if data, err = export.WorkbookBytes(f); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export fehlgeschlagen"})
			return
		}
		name = fmt.Sprintf("rollenbewegung_KW%d.xlsx", result.Week)
	case "tag":
		result := sess.Cache.Daily(tidy, coeffs, date)
		if result == nil {
			c.JSON(http.StatusOK, gin.H{"empty": true})
			return
		}
		f, err := export.DailyWorkbook(result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export fehlgeschlagen"})
			return
		}
		if data, err = export.WorkbookBytes(f); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export fehlgeschlagen"})
			return
		}
		name = fmt.Sprintf("rollenbewegung_%s.xlsx", model.DateKey(date))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feld \"mode\" muss \"woche\" oder \"tag\" sein"})
		return
	}

	contentType := xlsxContentType
	if req.Bundle {
		zipped, err := export.BundleZip([]export.ZipEntry{{Name: name, Data: data}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export fehlgeschlagen"})
			return
		}
		data = zipped
		name = name[:len(name)-len(".xlsx")] + ".zip"
		contentType = zipContentType
	}

	token := h.downloads.put(name, contentType, data, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": name,
		"size":     len(data),
	})
}

// Download serves a previously exported artifact by token.
// GET /api/export/download/:token
func (h *Handler) Download(c *gin.Context) {
	item, ok := h.downloads.get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Download abgelaufen oder unbekannt"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.name))
	c.Data(http.StatusOK, item.contentType, item.data)
}
