package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(kindGroup *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}

	kindGroup.GET("/dashboard", h.getDashboard)
	kindGroup.GET("/upcoming", h.listUpcoming)
}

// bindCriteria reads the shared filter query. It writes a 400 and returns false when invalid.
func bindCriteria(c *gin.Context) (domain.FilterCriteria, bool) {
	var params dto.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.FilterCriteria{}, false
	}
	criteria, err := params.ToCriteria()
	if err != nil {
		respondError(c, err, "Invalid filter")
		return domain.FilterCriteria{}, false
	}
	return criteria, true
}

// getDashboard godoc
// @Summary Get the dashboard of a kind
// @Description Returns the settled list, the upcoming list and the summary computed under one filter.
// @Tags dashboard
// @Produce  json
// @Param   kind path string true "Record kind" Enums(expense, income, investment)
// @Param   q query string false "Search text"
// @Param   accountID query string false "Account filter"
// @Param   categoryID query string false "Category filter"
// @Param   currency query string false "Currency filter"
// @Param   range query string false "Date preset"
// @Param   start query string false "Custom range start (YYYY-MM-DD)"
// @Param   end query string false "Custom range end (YYYY-MM-DD)"
// @Param   minAmount query string false "Minimum major amount"
// @Param   maxAmount query string false "Maximum major amount"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /{kind}/dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), kind, criteria)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Dashboard built",
		slog.Int("settled", len(dashboard.Settled)),
		slog.Int("upcoming", len(dashboard.Upcoming)))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// listUpcoming godoc
// @Summary List upcoming occurrences
// @Description Lists stored future records and projected occurrences, deduplicated and sorted by date.
// @Tags dashboard
// @Produce  json
// @Param   kind path string true "Record kind" Enums(expense, income, investment)
// @Param   q query string false "Search text"
// @Param   range query string false "Date preset"
// @Success 200 {object} dto.ListOccurrencesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Security BearerAuth
// @Router /{kind}/upcoming [get]
func (h *dashboardHandler) listUpcoming(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}

	occs, err := h.dashboardService.Upcoming(c.Request.Context(), kind, criteria)
	if err != nil {
		respondError(c, err, "Failed to list upcoming occurrences")
		return
	}
	c.JSON(http.StatusOK, dto.ListOccurrencesResponse{Occurrences: dto.ToListOccurrenceResponse(occs)})
}
