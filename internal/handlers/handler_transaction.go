package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to stored records.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers record CRUD and auto-add routes under a /:kind group.
func registerTransactionRoutes(kindGroup *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := kindGroup.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PATCH("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
	kindGroup.POST("/auto-add", h.autoAdd)
}

// createTransaction godoc
// @Summary Create a record
// @Description Creates an expense, income or investment record. The amount is major-unit text such as "12,50".
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   kind path string true "Record kind" Enums(expense, income, investment)
// @Param   transaction body dto.CreateTransactionRequest true "Record details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Rejected by the store"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /{kind}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), kind, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// listTransactions godoc
// @Summary List settled records
// @Description Lists settled records of a kind, newest first, filtered and paginated with a keyset token.
// @Tags transactions
// @Produce  json
// @Param   kind path string true "Record kind" Enums(expense, income, investment)
// @Param   q query string false "Search text"
// @Param   accountID query string false "Account filter"
// @Param   categoryID query string false "Category filter"
// @Param   currency query string false "Currency filter"
// @Param   range query string false "Date preset" Enums(ALL, THIS_MONTH, LAST_MONTH, LAST_30, LAST_90, THIS_YEAR, CUSTOM)
// @Param   start query string false "Custom range start (YYYY-MM-DD)"
// @Param   end query string false "Custom range end (YYYY-MM-DD)"
// @Param   minAmount query string false "Minimum major amount"
// @Param   maxAmount query string false "Maximum major amount"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /{kind}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListSettled(c.Request.Context(), kind, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	logger.Debug("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a record
// @Tags transactions
// @Produce  json
// @Param   kind path string true "Record kind"
// @Param   transactionID path string true "Record ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Security BearerAuth
// @Router /{kind}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	if txn.Kind != kind {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a record
// @Description Applies a partial update. Set clearNextDate to remove the scheduled next occurrence.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   kind path string true "Record kind"
// @Param   transactionID path string true "Record ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Security BearerAuth
// @Router /{kind}/transactions/{transactionID} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := kindParam(c); !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("transactionID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", updated.ID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// deleteTransaction godoc
// @Summary Delete a record
// @Tags transactions
// @Param   kind path string true "Record kind"
// @Param   transactionID path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Record not found"
// @Security BearerAuth
// @Router /{kind}/transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if _, ok := kindParam(c); !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("transactionID"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// autoAdd godoc
// @Summary Create records from free text
// @Description Parses free text into suggestions and creates one validated record per accepted suggestion.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   kind path string true "Record kind"
// @Param   request body dto.AutoAddRequest true "Text and defaults"
// @Success 200 {object} dto.AutoAddResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Auto add not configured"
// @Security BearerAuth
// @Router /{kind}/auto-add [post]
func (h *transactionHandler) autoAdd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.AutoAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AutoAdd", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.AutoAdd(c.Request.Context(), kind, req, userID)
	if err != nil {
		respondError(c, err, "Failed to auto add transactions")
		return
	}

	logger.Info("Auto add finished",
		slog.Int("created", len(resp.Created)),
		slog.Int("rejected", len(resp.Rejected)))
	c.JSON(http.StatusOK, resp)
}
