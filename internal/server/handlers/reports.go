package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

type reportBody struct {
	Format   models.ReportFormat `json:"format"`
	Scope    string              `json:"scope"`
	FarmID   string              `json:"farm_id"`
	AnimalID string              `json:"animal_id"`
	From     *time.Time          `json:"date_from"`
	To       *time.Time          `json:"date_to"`
}

// DownloadReport renders a report and streams it as an attachment.
func (h *Handler) DownloadReport(c *gin.Context) {
	var body reportBody
	if !h.bindJSON(c, &body) {
		return
	}

	report, err := h.reports.Download(c.Request.Context(), models.ReportRequest{
		Type:     c.Param("type"),
		Format:   body.Format,
		Scope:    body.Scope,
		FarmID:   body.FarmID,
		AnimalID: body.AnimalID,
		From:     body.From,
		To:       body.To,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

// MLStatus proxies the backend model status.
func (h *Handler) MLStatus(c *gin.Context) {
	status, err := h.status.MLStatus(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SyncHealth proxies the backend sync health probe.
func (h *Handler) SyncHealth(c *gin.Context) {
	health, err := h.status.SyncHealth(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}
