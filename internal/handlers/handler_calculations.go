package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculationsHandler serves the user-wide history and aggregate endpoints.
type calculationsHandler struct {
	historyService portssvc.HistorySvc
	cacheSet       *caches.Set
	now            func() time.Time
}

func newCalculationsHandler(hs portssvc.HistorySvc, cacheSet *caches.Set) *calculationsHandler {
	return &calculationsHandler{historyService: hs, cacheSet: cacheSet, now: time.Now}
}

func registerCalculationsRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvc, cacheSet *caches.Set) {
	h := newCalculationsHandler(hs, cacheSet)

	calculations := rg.Group("/calculations")
	{
		calculations.GET("/balanceHistory", h.balanceHistory)
		calculations.GET("/networthHistory", h.networthHistory)
		calculations.GET("/expensesAndIncomes", h.expensesAndIncomes)
		calculations.POST("/expensesAndIncomes", h.customExpensesAndIncomes)
		calculations.GET("/cacheStats", h.cacheStats)
	}
}

// balanceHistory godoc
// @Summary Sample the user's per-currency balances
// @Description Replays every transaction and samples the balance of each currency at evenly spaced instants.
// @Tags calculations
// @Produce  json
// @Param   startDate query string true "Start, epoch milliseconds"
// @Param   endDate   query string true "End, epoch milliseconds"
// @Param   division  query int    true "Number of samples, at least 2"
// @Success 200 {object} dto.BalanceHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute balance history"
// @Security BearerAuth
// @Router /calculations/balanceHistory [get]
func (h *calculationsHandler) balanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	query, ok := bindHistoryQuery(c, logger)
	if !ok {
		return
	}

	samples, err := h.historyService.BalanceHistory(c.Request.Context(), ownerID, query)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balance history")
		return
	}

	logger.Info("Balance history computed", slog.Int("samples", len(samples)))
	c.JSON(http.StatusOK, dto.ToBalanceHistoryResponse(samples))
}

// networthHistory godoc
// @Summary Sample the user's net worth
// @Description Values the user's balances in base currency at evenly spaced instants.
// @Tags calculations
// @Produce  json
// @Param   startDate query string true "Start, epoch milliseconds"
// @Param   endDate   query string true "End, epoch milliseconds"
// @Param   division  query int    true "Number of samples, at least 2"
// @Success 200 {object} dto.ValueHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute net worth history"
// @Security BearerAuth
// @Router /calculations/networthHistory [get]
func (h *calculationsHandler) networthHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	query, ok := bindHistoryQuery(c, logger)
	if !ok {
		return
	}

	samples, err := h.historyService.NetworthHistory(c.Request.Context(), ownerID, query)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute net worth history")
		return
	}

	logger.Info("Net worth history computed", slog.Int("samples", len(samples)))
	c.JSON(http.StatusOK, dto.ToNetworthHistoryResponse(samples))
}

// expensesAndIncomes godoc
// @Summary Incomes and expenses over the default windows
// @Description Totals incomes and expenses over all time, the last 30 days and the last 7 days, plus the current week and month when their start is supplied.
// @Tags calculations
// @Produce  json
// @Param   includeExcluded   query bool   false "Count transactions excluded from incomes and expenses"
// @Param   currentWeekStart  query string false "Start of the current week, epoch milliseconds"
// @Param   currentMonthStart query string false "Start of the current month, epoch milliseconds"
// @Success 200 {object} dto.ExpensesAndIncomesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute incomes and expenses"
// @Security BearerAuth
// @Router /calculations/expensesAndIncomes [get]
func (h *calculationsHandler) expensesAndIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ExpensesAndIncomesQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	weekStart, err := dto.ParseOptionalEpoch(params.CurrentWeekStart)
	if err != nil {
		badRequest(c, logger, "Invalid currentWeekStart", err)
		return
	}
	monthStart, err := dto.ParseOptionalEpoch(params.CurrentMonthStart)
	if err != nil {
		badRequest(c, logger, "Invalid currentMonthStart", err)
		return
	}

	now := h.now().UTC()
	last30d := now.AddDate(0, 0, -30)
	last7d := now.AddDate(0, 0, -7)
	ranges := []domain.TimeRangeQuery{
		{Name: dto.WindowTotal},
		{Name: dto.Window30d, AtOrAfter: &last30d},
		{Name: dto.Window7d, AtOrAfter: &last7d},
	}
	if weekStart != nil {
		ranges = append(ranges, domain.TimeRangeQuery{Name: dto.WindowCurrentWeek, AtOrAfter: weekStart})
	}
	if monthStart != nil {
		ranges = append(ranges, domain.TimeRangeQuery{Name: dto.WindowCurrentMonth, AtOrAfter: monthStart})
	}

	results, err := h.historyService.IncomesAndExpenses(c.Request.Context(), ownerID, ranges,
		domain.IncomeExpenseOptions{IncludeExcluded: params.IncludeExcluded})
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute incomes and expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpensesAndIncomesResponse(results))
}

// customExpensesAndIncomes godoc
// @Summary Incomes and expenses over custom windows
// @Description Totals incomes and expenses over each named window. Window names must be unique.
// @Tags calculations
// @Accept  json
// @Produce  json
// @Param   request body dto.ExpensesAndIncomesRequest true "Named windows"
// @Success 200 {object} map[string]dto.IncomeExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute incomes and expenses"
// @Security BearerAuth
// @Router /calculations/expensesAndIncomes [post]
func (h *calculationsHandler) customExpensesAndIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.ExpensesAndIncomesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	ranges, err := req.ToTimeRangeQueries()
	if err != nil {
		badRequest(c, logger, "Invalid range bound", err)
		return
	}

	results, err := h.historyService.IncomesAndExpenses(c.Request.Context(), ownerID, ranges,
		domain.IncomeExpenseOptions{IncludeExcluded: req.IncludeExcluded})
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute incomes and expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeExpenseResponses(results))
}

// cacheStats godoc
// @Summary Rate cache statistics
// @Description Hit and miss counters of the currency, rate datum and base rate caches.
// @Tags calculations
// @Produce  json
// @Success 200 {object} dto.CacheStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /calculations/cacheStats [get]
func (h *calculationsHandler) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CacheStatsResponse(h.cacheSet.Stats()))
}

func bindHistoryQuery(c *gin.Context, logger *slog.Logger) (domain.HistoryQuery, bool) {
	var params dto.HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return domain.HistoryQuery{}, false
	}
	query, err := params.ToHistoryQuery()
	if err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return domain.HistoryQuery{}, false
	}
	return query, true
}
