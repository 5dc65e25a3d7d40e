package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type lookupHandler struct {
	lookupService portssvc.LookupSvc
}

func registerLookupRoutes(rg *gin.RouterGroup, lookupService portssvc.LookupSvc) {
	h := &lookupHandler{lookupService: lookupService}

	rg.GET("/accounts", h.listAccounts)
	rg.GET("/categories", h.listCategories)
}

// listAccounts godoc
// @Summary List accounts
// @Tags lookups
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *lookupHandler) listAccounts(c *gin.Context) {
	accounts, err := h.lookupService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: accounts})
}

// listCategories godoc
// @Summary List categories
// @Tags lookups
// @Produce  json
// @Param   kind query string false "Restrict to one kind" Enums(expense, income, investment)
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} map[string]string "Unknown kind"
// @Security BearerAuth
// @Router /categories [get]
func (h *lookupHandler) listCategories(c *gin.Context) {
	var kind *domain.TransactionKind
	if raw := c.Query("kind"); raw != "" {
		k, err := domain.ParseTransactionKind(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		kind = &k
	}

	categories, err := h.lookupService.ListCategories(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories})
}
