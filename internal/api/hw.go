package api

import (
	"net/http"

	"github.com/hiveden/sysfetch/internal/render"

	"github.com/gin-gonic/gin"
)

// GetSnapshot handles the GET /snapshot endpoint.
func (h *APIHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshots.Snapshot(c.Request.Context()))
}

// GetSnapshotRows handles the GET /snapshot/rows endpoint.
func (h *APIHandler) GetSnapshotRows(c *gin.Context) {
	snap := h.snapshots.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, render.Rows(snap))
}

// GetHardwareInfo handles the GET /hw/inventory endpoint.
func (h *APIHandler) GetHardwareInfo(c *gin.Context) {
	hwInfo, err := h.inventory()
	if err != nil {
		h.logger.Error(err, "hardware inventory failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hwInfo)
}

// RegisterRoutes mounts the handlers on r.
func (h *APIHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/snapshot", h.GetSnapshot)
	r.GET("/snapshot/rows", h.GetSnapshotRows)

	hwGroup := r.Group("/hw")
	{
		hwGroup.GET("/inventory", h.GetHardwareInfo)
	}
}
