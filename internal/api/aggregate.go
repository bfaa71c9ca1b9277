package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

func (h *Handler) requestData(c *gin.Context) ([]model.TidyRow, model.CoefficientTable, time.Time, bool) {
	id := c.Query("session")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter \"session\" fehlt"})
		return nil, model.CoefficientTable{}, time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter \"date\" muss JJJJ-MM-TT sein"})
		return nil, model.CoefficientTable{}, time.Time{}, false
	}

	tidy, coeffs, err := h.sessions.CopyData(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return nil, model.CoefficientTable{}, time.Time{}, false
	}

	return tidy, coeffs, date, true
}

// Weekly returns the six weekly tables for the week containing the date.
// An empty window is a valid result, not an error.
// GET /api/weekly?session=<id>&date=YYYY-MM-DD
func (h *Handler) Weekly(c *gin.Context) {
	tidy, _, date, ok := h.requestData(c)
	if !ok {
		return
	}
	sess, err := h.sessions.Get(c.Query("session"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return
	}

	result := sess.Cache.Weekly(tidy, date)
	if result == nil {
		_, week := model.Day(date).ISOWeek()
		c.JSON(http.StatusOK, gin.H{"empty": true, "kw": week})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Daily returns the merged detail and the paired hours/unit pivots for
// one calendar day.
// GET /api/daily?session=<id>&date=YYYY-MM-DD
func (h *Handler) Daily(c *gin.Context) {
	tidy, coeffs, date, ok := h.requestData(c)
	if !ok {
		return
	}
	sess, err := h.sessions.Get(c.Query("session"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sitzung nicht gefunden"})
		return
	}

	result := sess.Cache.Daily(tidy, coeffs, date)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"empty": true, "date": model.DateKey(date)})
		return
	}
	c.JSON(http.StatusOK, result)
}
