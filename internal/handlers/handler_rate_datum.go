package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateDatumHandler handles HTTP requests related to rate datums.
type rateDatumHandler struct {
	rateDatumService portssvc.RateDatumSvcFacade
}

func newRateDatumHandler(rs portssvc.RateDatumSvcFacade) *rateDatumHandler {
	return &rateDatumHandler{rateDatumService: rs}
}

func registerRateDatumRoutes(rg *gin.RouterGroup, rs portssvc.RateDatumSvcFacade) {
	h := newRateDatumHandler(rs)

	rg.POST("/rateDatums", h.createRateDatum)
	rg.GET("/currencies/:currencyId/rateDatums", h.listRateDatums)
	rg.GET("/currencies/:currencyId/rateDatums/nearest", h.nearestRateDatums)
}

// createRateDatum godoc
// @Summary Record a rate observation
// @Description Records that at the given instant one unit of refCurrencyId is worth amount units of refAmountCurrencyId.
// @Tags rateDatums
// @Accept  json
// @Produce  json
// @Param   datum body dto.CreateRateDatumRequest true "Rate datum"
// @Success 201 {object} dto.RateDatumResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to create rate datum"
// @Security BearerAuth
// @Router /rateDatums [post]
func (h *rateDatumHandler) createRateDatum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateRateDatumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	datum, err := h.rateDatumService.CreateRateDatum(c.Request.Context(), ownerID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create rate datum")
		return
	}

	logger.Info("Rate datum created", slog.String("rate_datum_id", datum.RateDatumID))
	c.JSON(http.StatusCreated, dto.ToRateDatumResponse(datum))
}

// listRateDatums godoc
// @Summary List the rate datums of a currency
// @Description Lists datums newest first, using token-based pagination.
// @Tags rateDatums
// @Produce  json
// @Param   currencyId path  string true  "Currency ID"
// @Param   limit      query int    false "Page size (default 20)" minimum(1) maximum(100)
// @Param   nextToken  query string false "Token of the next page"
// @Success 200 {object} dto.ListRateDatumsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to list rate datums"
// @Security BearerAuth
// @Router /currencies/{currencyId}/rateDatums [get]
func (h *rateDatumHandler) listRateDatums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ListRateDatumsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	datums, next, err := h.rateDatumService.ListRateDatums(c.Request.Context(), ownerID, c.Param("currencyId"), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list rate datums")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateDatumsResponse(datums, next))
}

// nearestRateDatums godoc
// @Summary The rate datums of a currency closest to an instant
// @Description Returns up to two datums, nearest first. On equal distance the older datum comes first.
// @Tags rateDatums
// @Produce  json
// @Param   currencyId path  string true "Currency ID"
// @Param   date       query string true "Instant, epoch milliseconds"
// @Success 200 {object} dto.ListRateDatumsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to find rate datums"
// @Security BearerAuth
// @Router /currencies/{currencyId}/rateDatums/nearest [get]
func (h *rateDatumHandler) nearestRateDatums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.NearestRateDatumsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	at, err := dto.ParseEpoch(params.Date)
	if err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	datums, err := h.rateDatumService.NearestRateDatums(c.Request.Context(), ownerID, c.Param("currencyId"), at)
	if err != nil {
		respondWithError(c, logger, err, "Failed to find rate datums")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateDatumsResponse(datums, nil))
}
