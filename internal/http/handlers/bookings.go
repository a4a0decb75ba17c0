package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"bennyevents/internal/domain"
	"bennyevents/internal/domain/models"
	"bennyevents/internal/http/middleware"
	"bennyevents/internal/ledger"
	"bennyevents/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Bookings  services.BookingService
	Roles     services.RoleService
	Docs      services.DocsService
	Ledger    *ledger.Manager
	JWTSecret []byte
}

// scopeFor picks the subscription/query scope a principal's role allows.
func scopeFor(p domain.Principal) ledger.Scope {
	if p.IsOperator() {
		return ledger.ScopeAll()
	}
	return ledger.ScopeOwner(p.Email)
}

// parsePeriod reads month/year query params. month is zero-based or "all";
// no year means no period filter at all.
func parsePeriod(c *gin.Context) (ledger.PeriodFilter, bool, error) {
	yearStr := strings.TrimSpace(c.Query("year"))
	if yearStr == "" {
		return ledger.PeriodFilter{}, false, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ledger.PeriodFilter{}, false, domain.ValidationError{Field: "year", Msg: "must be a number", Err: err}
	}

	month := ledger.AllMonths
	monthStr := strings.TrimSpace(c.Query("month"))
	if monthStr != "" && monthStr != "all" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 0 || m > 11 {
			return ledger.PeriodFilter{}, false, domain.ValidationError{Field: "month", Msg: "must be 0-11 or 'all'"}
		}
		month = m
	}
	return ledger.PeriodFilter{Month: month, Year: year}, true, nil
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "1")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GET /api/bookings
func (h *Handlers) ListBookings(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	filter, filtered, err := parsePeriod(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page := parsePage(c)

	records, err := h.Bookings.Repo.List(scopeFor(p).OwnerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if filtered {
		records = ledger.FilterByPeriod(records, filter)
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": ledger.Paginate(records, page),
		"pagination": domain.Pagination{
			Page:     page,
			PageSize: ledger.PageSize,
			Total:    len(records),
		},
	})
}

// GET /api/bookings/stats
func (h *Handlers) GetStats(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	filter, filtered, err := parsePeriod(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !filtered {
		// default to the current year, every month
		filter = ledger.PeriodFilter{Month: ledger.AllMonths, Year: time.Now().Year()}
	}

	records, err := h.Bookings.Repo.List(scopeFor(p).OwnerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	subset := ledger.FilterByPeriod(records, filter)
	c.JSON(http.StatusOK, gin.H{
		"stats":  domain.ComputeStats(subset),
		"filter": filter,
	})
}

// GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	b, err := h.Bookings.Repo.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !p.IsOperator() && b.OwnerID != p.Email {
		RespondDomainError(c, domain.ForbiddenError{Action: "read", Msg: "not the record owner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)

	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	id, err := svc.Create(p, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PATCH /api/bookings/:id
func (h *Handlers) PatchBooking(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)

	var fields map[string]any
	if !BindJSONOrError(c, &fields) {
		return
	}

	if err := svc.Patch(p, c.Param("id"), fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking updated"})
}

// DELETE /api/bookings/:id
func (h *Handlers) DeleteBooking(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)

	if err := svc.Delete(p, c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
