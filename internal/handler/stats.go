package handler

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"lark/internal/model"
	"lark/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles owner-facing aggregation and export endpoints
type StatsHandler struct {
	stats        service.StatsServiceInterface
	queryTimeout time.Duration
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats service.StatsServiceInterface, queryTimeout time.Duration) *StatsHandler {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &StatsHandler{
		stats:        stats,
		queryTimeout: queryTimeout,
	}
}

// LinkStats handles GET /api/v1/links/:id/stats
// @Summary Aggregated stats for one link
// @Tags stats
// @Produce json
// @Param id path string true "Link ID"
// @Param start query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Success 200 {object} Response{data=model.LinkStats}
// @Router /api/v1/links/{id}/stats [get]
func (h *StatsHandler) LinkStats(c *gin.Context) {
	start, end, err := parseWindow(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid time window: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	stats, err := h.stats.LinkStats(ctx, ownerID(c), c.Param("id"), start, end)
	if err != nil {
		abortWithError(c, statsErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

// GlobalStats handles GET /api/v1/stats
// @Summary Aggregated stats across all of the caller's links
// @Tags stats
// @Produce json
// @Param start query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Success 200 {object} Response{data=model.LinkStats}
// @Router /api/v1/stats [get]
func (h *StatsHandler) GlobalStats(c *gin.Context) {
	start, end, err := parseWindow(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid time window: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	stats, err := h.stats.GlobalStats(ctx, ownerID(c), start, end)
	if err != nil {
		abortWithError(c, statsErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

// Export handles GET /api/v1/links/:id/events/export
// @Summary Raw event export for one link
// @Description Returns the most recent raw events, bounded by the configured row cap
// @Tags stats
// @Produce json
// @Param id path string true "Link ID"
// @Param format query string false "csv or json" default(json)
// @Param limit query int false "Maximum rows"
// @Success 200
// @Router /api/v1/links/{id}/events/export [get]
func (h *StatsHandler) Export(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	events, err := h.stats.ExportEvents(ctx, ownerID(c), c.Param("id"), limit)
	if err != nil {
		abortWithError(c, statsErrorStatus(err), err.Error())
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		writeEventsCSV(c, events)
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    events,
	})
}

func writeEventsCSV(c *gin.Context, events []model.ClickEvent) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="events.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"id", "link_id", "timestamp", "ip_hash", "country", "region", "city", "language", "device", "os", "browser", "referrer"})
	for _, ev := range events {
		w.Write([]string{
			ev.ID,
			ev.LinkID,
			ev.Timestamp.UTC().Format(time.RFC3339),
			ev.IPHash,
			ev.Country,
			ev.Region,
			ev.City,
			ev.Language,
			ev.Device,
			ev.OS,
			ev.Browser,
			ev.Referrer,
		})
	}
}
