package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /auditoria — newest entries first, capped at 200.
func (h *Handler) AuditTrail(c *gin.Context) {
	entries, err := h.audit.Recent(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando auditoría")
		return
	}
	c.HTML(http.StatusOK, "auditoria.html", gin.H{"Entries": entries})
}

// GET /backup — snapshot the database; JSON either way, audited either
// way by the backup service.
func (h *Handler) Backup(c *gin.Context) {
	name, err := h.backup.Run(c.Request.Context(), h.actor(c), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "file": name})
}
