package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and their rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.CurrencyRateSvc
	now             func() time.Time
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.CurrencyRateSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		rateService:     rs,
		now:             time.Now,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade, rs portssvc.CurrencyRateSvc) {
	h := newCurrencyHandler(cs, rs)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.GET("/rate", h.currencyRate)
		currencies.PUT("/:currencyId/fallback", h.updateCurrencyFallback)
		currencies.GET("/:currencyId/rateToBase", h.rateToBase)
		currencies.GET("/:currencyId/rateHistory", h.rateHistory)
	}
}

// listCurrencies godoc
// @Summary List the user's currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Creates the user's base currency, or a currency with a static fallback rate to an existing one.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A base currency already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	logger.Info("Received request to create currency", slog.String("ticker", req.Ticker), slog.Bool("is_base", req.IsBase))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_id", created.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// updateCurrencyFallback godoc
// @Summary Replace a currency's fallback rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currencyId path string true "Currency ID"
// @Param   fallback body dto.UpdateCurrencyFallbackRequest true "New fallback rate"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input or cyclic fallback"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{currencyId}/fallback [put]
func (h *currencyHandler) updateCurrencyFallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	currencyID := c.Param("currencyId")
	logger = logger.With(slog.String("currency_id", currencyID))

	var req dto.UpdateCurrencyFallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	updated, err := h.currencyService.UpdateCurrencyFallback(c.Request.Context(), ownerID, currencyID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update currency")
		return
	}

	logger.Info("Currency fallback updated")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// rateToBase godoc
// @Summary Rate of a currency to the base currency
// @Tags currencies
// @Produce  json
// @Param   currencyId path  string true  "Currency ID"
// @Param   date       query string false "Instant, epoch milliseconds. Defaults to now"
// @Success 200 {object} dto.RateToBaseResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found or rate unavailable"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Security BearerAuth
// @Router /currencies/{currencyId}/rateToBase [get]
func (h *currencyHandler) rateToBase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	currencyID := c.Param("currencyId")

	var params dto.DateQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	at, ok := instantOrNow(c, logger, params.Date, h.now)
	if !ok {
		return
	}

	rate, err := h.rateService.RateToBase(c.Request.Context(), ownerID, currencyID, at)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve rate")
		return
	}

	c.JSON(http.StatusOK, dto.RateToBaseResponse{CurrencyID: currencyID, Date: dto.EpochString(at), Rate: rate.String()})
}

// currencyRate godoc
// @Summary Rate between two currencies
// @Description How many units of "to" one unit of "from" is worth at the instant.
// @Tags currencies
// @Produce  json
// @Param   from query string true  "Currency ID"
// @Param   to   query string true  "Currency ID"
// @Param   date query string false "Instant, epoch milliseconds. Defaults to now"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found or rate unavailable"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Security BearerAuth
// @Router /currencies/rate [get]
func (h *currencyHandler) currencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.CurrencyRateQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	at, ok := instantOrNow(c, logger, params.Date, h.now)
	if !ok {
		return
	}

	rate, err := h.rateService.CurrencyToCurrencyRate(c.Request.Context(), ownerID, params.From, params.To, at)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve rate")
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyRateResponse{From: params.From, To: params.To, Date: dto.EpochString(at), Rate: rate.String()})
}

// rateHistory godoc
// @Summary Sampled rate of a currency to the base currency
// @Tags currencies
// @Produce  json
// @Param   currencyId path  string true "Currency ID"
// @Param   startDate  query string true "Start, epoch milliseconds"
// @Param   endDate    query string true "End, epoch milliseconds"
// @Param   division   query int    true "Number of samples, at least 2"
// @Success 200 {object} dto.ValueHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found or rate unavailable"
// @Failure 500 {object} map[string]string "Failed to compute rate history"
// @Security BearerAuth
// @Router /currencies/{currencyId}/rateHistory [get]
func (h *currencyHandler) rateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	query, ok := bindHistoryQuery(c, logger)
	if !ok {
		return
	}

	samples, err := h.rateService.RateHistory(c.Request.Context(), ownerID, c.Param("currencyId"), query)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute rate history")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(samples))
}
