package handlers

import (
	"io"
	"net/http"
	"time"

	"bennyevents/internal/domain"
	"bennyevents/internal/http/middleware"
	"bennyevents/internal/ledger"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/stream
//
// The upward reactive interface: an SSE stream whose every event is the
// session's complete derived state — the full scoped snapshot reduced to the
// current page plus the stats for the active filter. Consumers replace local
// state wholesale on each event; nothing here is a diff. The stream ends on
// client disconnect or on a terminal store error; reconnecting is the
// client's call.
func (h *Handlers) StreamBookings(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	filter, filtered, err := parsePeriod(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !filtered {
		filter = ledger.PeriodFilter{Month: ledger.AllMonths, Year: time.Now().Year()}
	}

	view := ledger.NewView(filter)
	view.SetPage(parsePage(c))

	sub := h.Ledger.Open(scopeFor(p))
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-sub.Snapshots():
			if !ok {
				if sub.Err() != nil {
					c.SSEvent("error", gin.H{"error": "subscription terminated"})
				}
				return false
			}
			view.Apply(snap)
			c.SSEvent("snapshot", gin.H{
				"bookings": view.Page(),
				"stats":    view.Stats(),
				"filter":   view.Filter(),
				"pagination": domain.Pagination{
					Page:     view.PageNumber(),
					PageSize: ledger.PageSize,
					Total:    view.FilteredCount(),
				},
			})
			return true
		case <-clientGone:
			return false
		}
	})
}
