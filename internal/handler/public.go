package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lark/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicStatsHandler serves the unauthenticated stats view behind the
// public gate. Only "exists but private" is distinguishable from the
// outside (403); every other denial is a plain 404.
type PublicStatsHandler struct {
	gate         service.PublicGateInterface
	queryTimeout time.Duration
}

// NewPublicStatsHandler creates a new PublicStatsHandler
func NewPublicStatsHandler(gate service.PublicGateInterface, queryTimeout time.Duration) *PublicStatsHandler {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &PublicStatsHandler{
		gate:         gate,
		queryTimeout: queryTimeout,
	}
}

// Stats handles GET /api/v1/public/links/:id/stats
// @Summary Public stats for a single link
// @Tags public
// @Produce json
// @Param id path string true "Link ID"
// @Param start query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Success 200 {object} Response{data=model.LinkStats}
// @Failure 403
// @Failure 404
// @Router /api/v1/public/links/{id}/stats [get]
func (h *PublicStatsHandler) Stats(c *gin.Context) {
	start, end, err := parseWindow(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid time window: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	stats, err := h.gate.PublicStats(ctx, c.Param("id"), start, end)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatsPrivate):
			abortWithError(c, http.StatusForbidden, "Stats for this link are private")
		case errors.Is(err, service.ErrLinkNotFound):
			abortWithError(c, http.StatusNotFound, "Link not found")
		default:
			abortWithError(c, statsErrorStatus(err), err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}
