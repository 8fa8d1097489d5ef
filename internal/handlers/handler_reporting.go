package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/SscSPs/expense_manager_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves balances and spending reports.
type reportingHandler struct {
	balanceService   portssvc.BalanceSvc
	reportingService portssvc.ReportingService
	currency         string
}

func newReportingHandler(bs portssvc.BalanceSvc, rs portssvc.ReportingService, currency string) *reportingHandler {
	return &reportingHandler{balanceService: bs, reportingService: rs, currency: currency}
}

// RegisterReportingRoutes registers balance and spending routes on an authenticated group.
func RegisterReportingRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, reportingService portssvc.ReportingService, currency string) {
	h := newReportingHandler(balanceService, reportingService, currency)

	rg.GET("/balances", h.getBalances)
	spending := rg.Group("/spending")
	{
		spending.GET("/category", h.getSpendingByCategory)
		spending.GET("/monthly", h.getMonthlySpending)
	}
}

// getBalances godoc
// @Summary Aggregate balances
// @Description Maps every account name to its balance over the full history.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	balances, err := h.balanceService.GetBalances(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances, h.currency))
}

// getSpendingByCategory godoc
// @Summary Spending by category
// @Description Sums debit amounts per category. Both dates are optional and inclusive.
// @Tags reports
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.CategorySpendingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /spending/category [get]
func (h *reportingHandler) getSpendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.SpendingByCategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for SpendingByCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, ok := queryDate(c, "start_date", params.StartDate)
	if !ok {
		return
	}
	to, ok := queryDate(c, "end_date", params.EndDate)
	if !ok {
		return
	}

	rows, err := h.reportingService.SpendingByCategory(c.Request.Context(), ownerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to get spending by category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategorySpendingResponses(rows))
}

// getMonthlySpending godoc
// @Summary Monthly spending
// @Description Sums debit amounts per YYYY-MM.
// @Tags reports
// @Produce json
// @Success 200 {array} dto.MonthlySpendingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /spending/monthly [get]
func (h *reportingHandler) getMonthlySpending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	rows, err := h.reportingService.MonthlySpending(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to get monthly spending")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySpendingResponses(rows))
}

// queryDate parses an optional YYYY-MM-DD query value, writing 400 on failure.
func queryDate(c *gin.Context, name, raw string) (*domain.Date, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ": " + err.Error()})
		return nil, false
	}
	return &d, true
}
