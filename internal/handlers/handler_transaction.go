package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/SscSPs/expense_manager_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
// Responses name accounts instead of carrying their ids.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	accountService     portssvc.AccountReaderSvc
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, as portssvc.AccountReaderSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts, accountService: as}
}

// RegisterTransactionRoutes registers the transaction routes on an authenticated group.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, accountService portssvc.AccountReaderSvc) {
	h := newTransactionHandler(transactionService, accountService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.POST("/filter", h.filterTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
		txns.PUT("/:id/status", h.updateTransactionStatus)
	}
}

func (h *transactionHandler) accountNames(ctx context.Context, ownerID string) (map[string]string, error) {
	accounts, err := h.accountService.ListAccounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.AccountNames(accounts), nil
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Stores a transaction and returns it with its frozen transaction_balance.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input, amount or unknown account"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	names, err := h.accountNames(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve account names")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, names))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest-first page of transactions. Pass next_token from the previous page to continue.
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size" default(10)
// @Param   next_token query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	names, err := h.accountNames(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve account names")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns, names),
		NextToken:    nextToken,
	})
}

// filterTransactions godoc
// @Summary Search transactions
// @Description Filters by text, dates, types, categories, account names and amount range. Results are newest-first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   filter body dto.FilterTransactionsRequest true "Filter"
// @Success 200 {object} dto.FilterTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/filter [post]
func (h *transactionHandler) filterTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.FilterTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FilterTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	page, err := h.transactionService.FilterTransactions(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to filter transactions")
		return
	}
	names, err := h.accountNames(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve account names")
		return
	}

	c.JSON(http.StatusOK, dto.FilterTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page.Transactions, names),
		Page:         page.Page,
		Limit:        page.Limit,
		Total:        page.Total,
	})
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	names, err := h.accountNames(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve account names")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, names))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. Snapshots stored on later transactions are left unchanged.
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	transactionID := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), ownerID, transactionID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}
	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

// updateTransactionStatus godoc
// @Summary Change a transaction's status
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/status [put]
func (h *transactionHandler) updateTransactionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransactionStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransactionStatus(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction status")
		return
	}
	names, err := h.accountNames(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve account names")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, names))
}
