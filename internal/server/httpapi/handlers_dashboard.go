package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the caller's portfolio overview cards and recent
// transactions.
func (h *Handlers) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Get(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
