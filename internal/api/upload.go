package api

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/aggregate"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/ingest"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/logger"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/service/session"
)

// Upload ingests an uploaded workbook and registers an analysis session.
// A workbook without usable rows still yields a session; the caller sees
// zero counts plus the collected warnings instead of an error.
// POST /api/upload (multipart, field "file")
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keine Datei im Feld \"file\" gefunden"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datei konnte nicht geöffnet werden"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Datei konnte nicht gelesen werden"})
		return
	}

	result := ingest.LoadWorkbook(bytes.NewReader(data), ingest.Options{
		MonthSheets:    h.cfg.Business.MonthSheets,
		SideTableSheet: h.cfg.Business.SideTableSheet,
	})

	sess := &session.Session{
		ID:           uuid.New().String(),
		FileName:     fileHeader.Filename,
		FileHash:     fmt.Sprintf("%x", sha1.Sum(data))[:10],
		CreatedAt:    time.Now(),
		Records:      result.Records,
		Tidy:         result.Tidy,
		Coefficients: result.Coefficients,
		Warnings:     result.Warnings,
		Cache:        aggregate.NewResultCache(),
	}
	h.sessions.Put(sess)

	logger.Info("workbook uploaded", "session", sess.ID, "file", sess.FileName,
		"records", len(sess.Records), "tidy_rows", len(sess.Tidy))

	c.JSON(http.StatusOK, gin.H{
		"session":   sess.ID,
		"file_hash": sess.FileHash,
		"records":   len(sess.Records),
		"tidy_rows": len(sess.Tidy),
		"empty":     result.Empty(),
		"warnings":  sess.Warnings,
	})
}

// GetSession reports session metadata.
// GET /api/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":            sess.ID,
		"file_name":          sess.FileName,
		"file_hash":          sess.FileHash,
		"created_at":         sess.CreatedAt,
		"records":            len(sess.Records),
		"tidy_rows":          len(sess.Tidy),
		"coefficient_column": sess.Coefficients.Column,
		"warnings":           sess.Warnings,
	})
}

// DeleteSession drops a session.
// DELETE /api/sessions/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}
