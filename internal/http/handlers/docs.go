package handlers

import (
	"net/http"

	"bennyevents/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/summary-pdf (operator only, gated in the router)
func (h *Handlers) GetBookingSummaryPDF(c *gin.Context) {
	svc := h.Docs
	svc.RequestID = middleware.GetRequestID(c)

	data, filename, err := svc.GenerateBookingSummary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
