package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

func registerReconciliationRoutes(kindGroup *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}

	upcoming := kindGroup.Group("/upcoming/:occurrenceID")
	{
		upcoming.POST("/promote", h.promote)
		upcoming.POST("/dismiss", h.dismiss)
	}
}

type reconcileFunc func(ctx context.Context, kind domain.TransactionKind, occurrenceID string, userID string) (domain.ReconciliationResult, error)

// promote godoc
// @Summary Record an upcoming occurrence
// @Description Creates a record for a projected occurrence and clears the template's next date.
// @Description A stale occurrence (already reconciled elsewhere) succeeds with stale=true.
// @Tags upcoming
// @Produce  json
// @Param   kind path string true "Record kind"
// @Param   occurrenceID path string true "Occurrence ID (virtual:<parentID>)"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Not a projected occurrence"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /{kind}/upcoming/{occurrenceID}/promote [post]
func (h *reconciliationHandler) promote(c *gin.Context) {
	h.reconcile(c, "promote", h.reconciliationService.PromoteByID)
}

// dismiss godoc
// @Summary Dismiss an upcoming occurrence
// @Description Removes an occurrence from the upcoming list without recording it.
// @Tags upcoming
// @Produce  json
// @Param   kind path string true "Record kind"
// @Param   occurrenceID path string true "Occurrence ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /{kind}/upcoming/{occurrenceID}/dismiss [post]
func (h *reconciliationHandler) dismiss(c *gin.Context) {
	h.reconcile(c, "dismiss", h.reconciliationService.DismissByID)
}

func (h *reconciliationHandler) reconcile(c *gin.Context, action string, fn reconcileFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	occurrenceID := c.Param("occurrenceID")

	result, err := fn(c.Request.Context(), kind, occurrenceID, userID)
	if err != nil {
		if result.Created != nil {
			// The record exists; only the follow-up write failed.
			status, public := statusFor(err)
			logger.Error("Occurrence partially reconciled", slog.String("action", action), slog.String("error", err.Error()))
			created := dto.ToTransactionResponse(result.Created)
			c.JSON(status, gin.H{"error": public, "created": created})
			return
		}
		respondError(c, err, "Failed to "+action+" occurrence")
		return
	}

	logger.Info("Occurrence reconciled",
		slog.String("action", action),
		slog.String("occurrence_id", occurrenceID),
		slog.Bool("stale", result.Stale))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(result))
}
