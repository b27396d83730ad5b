package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// containerHandler serves per-container balances, worth and timelines, and
// the user's net worth.
type containerHandler struct {
	valuationService portssvc.ValuationSvc
	historyService   portssvc.HistorySvc
	now              func() time.Time
}

func newContainerHandler(vs portssvc.ValuationSvc, hs portssvc.HistorySvc) *containerHandler {
	return &containerHandler{valuationService: vs, historyService: hs, now: time.Now}
}

func registerContainerRoutes(rg *gin.RouterGroup, vs portssvc.ValuationSvc, hs portssvc.HistorySvc) {
	h := newContainerHandler(vs, hs)

	containers := rg.Group("/containers")
	{
		containers.GET("/balances", h.containerBalances)
		containers.GET("/worth", h.containersWorth)
		containers.GET("/timeline", h.containerTimeline)
	}
	rg.GET("/networth", h.userNetworth)
}

// containerBalances godoc
// @Summary Current balances of containers
// @Description Folds every transaction fragment into per-currency balances for each listed container.
// @Tags containers
// @Produce  json
// @Param   containerIds query string true "Comma separated container ids"
// @Success 200 {object} dto.ContainerBalancesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Container not found"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /containers/balances [get]
func (h *containerHandler) containerBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ContainerIDsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	ids := dto.SplitIDs(params.ContainerIDs)

	balances, err := h.valuationService.ContainerBalances(c.Request.Context(), ownerID, ids)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balances")
		return
	}

	logger.Info("Container balances computed", slog.Int("count", len(balances)))
	c.JSON(http.StatusOK, dto.ToContainerBalancesResponse(balances))
}

// containersWorth godoc
// @Summary Worth of containers in base currency
// @Description Values each listed container's current balances with the rates at the given instant.
// @Tags containers
// @Produce  json
// @Param   containerIds query string true  "Comma separated container ids"
// @Param   date         query string false "Rate instant, epoch milliseconds. Defaults to now"
// @Success 200 {object} dto.ContainerWorthResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Container or rate not found"
// @Failure 500 {object} map[string]string "Failed to compute worth"
// @Security BearerAuth
// @Router /containers/worth [get]
func (h *containerHandler) containersWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ContainerIDsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	at, ok := instantOrNow(c, logger, params.Date, h.now)
	if !ok {
		return
	}

	values, err := h.valuationService.ContainersWorth(c.Request.Context(), ownerID, dto.SplitIDs(params.ContainerIDs), &at)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute worth")
		return
	}

	res := dto.ContainerWorthResponse{Values: make(map[string]string, len(values)), Date: dto.EpochString(at)}
	for id, v := range values {
		res.Values[id] = v.String()
	}
	c.JSON(http.StatusOK, res)
}

// containerTimeline godoc
// @Summary Balance and worth timeline of containers
// @Description Samples each listed container's balance and worth. The start defaults to the earliest transaction touching the containers, the end to now and the division to the configured default.
// @Tags containers
// @Produce  json
// @Param   containerIds query string true  "Comma separated container ids"
// @Param   startDate    query string false "Start, epoch milliseconds"
// @Param   endDate      query string false "End, epoch milliseconds"
// @Param   division     query int    false "Number of samples"
// @Success 200 {object} dto.ContainerTimelineResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Container not found"
// @Failure 500 {object} map[string]string "Failed to compute timeline"
// @Security BearerAuth
// @Router /containers/timeline [get]
func (h *containerHandler) containerTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ContainerTimelineQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	start, err := dto.ParseOptionalEpoch(params.StartDate)
	if err != nil {
		badRequest(c, logger, "Invalid startDate", err)
		return
	}
	end, err := dto.ParseOptionalEpoch(params.EndDate)
	if err != nil {
		badRequest(c, logger, "Invalid endDate", err)
		return
	}

	timeline, err := h.historyService.ContainerTimeline(c.Request.Context(), ownerID, dto.SplitIDs(params.ContainerIDs),
		domain.TimelineQuery{StartDate: start, EndDate: end, Division: params.Division})
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute timeline")
		return
	}

	c.JSON(http.StatusOK, dto.ToContainerTimelineResponse(timeline))
}

// userNetworth godoc
// @Summary Net worth of the user
// @Description Sums the base-currency worth of every container of the user.
// @Tags containers
// @Produce  json
// @Param   date query string false "Rate instant, epoch milliseconds. Defaults to now"
// @Success 200 {object} dto.NetworthResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User or rate not found"
// @Failure 500 {object} map[string]string "Failed to compute net worth"
// @Security BearerAuth
// @Router /networth [get]
func (h *containerHandler) userNetworth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.NetworthQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	at, ok := instantOrNow(c, logger, params.Date, h.now)
	if !ok {
		return
	}

	worth, err := h.valuationService.UserNetWorth(c.Request.Context(), ownerID, &at)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, dto.NetworthResponse{NetWorth: worth.String(), Date: dto.EpochString(at)})
}
