package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gomoku/internal/history"
	"gomoku/internal/store"
)

// maxImportBytes caps an uploaded record.
const maxImportBytes = 1 << 20

// RecordStore is the persistence the records and stats endpoints need.
type RecordStore interface {
	SaveRecord(history.Record) error
	GetRecord(id string) (history.Record, error)
	ListRecords() ([]history.Record, error)
	DeleteRecord(id string) error
	ClearRecords() error
	LoadStats() (history.Stats, error)
	ResetStats() error
}

type RecordsHandler struct {
	store RecordStore
}

func NewRecordsHandler(s RecordStore) *RecordsHandler {
	return &RecordsHandler{store: s}
}

func (h *RecordsHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// @Summary List game records
// @Description Returns finished games, newest first
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /records [get]
func (h *RecordsHandler) ListHandler(c *gin.Context) {
	recs, err := h.store.ListRecords()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs, "count": len(recs)})
}

// @Summary Get a game record
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Router /records/{id} [get]
func (h *RecordsHandler) GetHandler(c *gin.Context) {
	rec, err := h.store.GetRecord(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec, "text": history.FormatText(rec)})
}

// @Summary Replay a game record
// @Description Rebuilds the board after the given number of moves (clamped)
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Param step query int false "Number of moves to apply (default all)"
// @Success 200 {object} map[string]interface{}
// @Router /records/{id}/replay [get]
func (h *RecordsHandler) ReplayHandler(c *gin.Context) {
	rec, err := h.store.GetRecord(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	rp := history.NewReplay(rec)
	rp.Jump(len(rec.Moves))
	if s := c.Query("step"); s != "" {
		step, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a number"})
			return
		}
		rp.Jump(step)
	}

	b, err := rp.Board()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	cur, total := rp.Progress()
	c.JSON(http.StatusOK, gin.H{"board": b, "step": cur, "total": total})
}

// @Summary Export a game record
// @Description Downloads the record as a JSON file
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {file} file
// @Router /records/{id}/export [get]
func (h *RecordsHandler) ExportHandler(c *gin.Context) {
	rec, err := h.store.GetRecord(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	data, err := rec.Export()
	if err != nil {
		h.fail(c, err)
		return
	}
	name := fmt.Sprintf("gomoku_%s.json", rec.Date.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json", data)
}

// @Summary Import a game record
// @Description Accepts an exported record; it is stored under a new ID
// @Tags Records
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Router /records/import [post]
func (h *RecordsHandler) ImportHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("record exceeds %d bytes", tooBig.Limit)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}
	rec, err := history.Import(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.SaveRecord(rec); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

// @Summary Delete a game record
// @Tags Records
// @Param id path string true "Record ID"
// @Success 204
// @Router /records/{id} [delete]
func (h *RecordsHandler) DeleteHandler(c *gin.Context) {
	if err := h.store.DeleteRecord(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete all game records
// @Tags Records
// @Success 204
// @Router /records [delete]
func (h *RecordsHandler) ClearHandler(c *gin.Context) {
	if err := h.store.ClearRecords(); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get statistics
// @Description Cumulative results plus derived figures such as win rate
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /stats [get]
func (h *RecordsHandler) StatsHandler(c *gin.Context) {
	st, err := h.store.LoadStats()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": st, "detailed": st.Detailed()})
}

// @Summary Reset statistics
// @Tags Stats
// @Success 204
// @Router /stats [delete]
func (h *RecordsHandler) ResetStatsHandler(c *gin.Context) {
	if err := h.store.ResetStats(); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
