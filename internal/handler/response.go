package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"lark/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// ownerID returns the authenticated owner set by the auth middleware
func ownerID(c *gin.Context) string {
	return c.GetString("ownerID")
}

// parseWindow reads optional start/end query parameters. Values are
// RFC3339 instants or calendar dates; a date-only end is widened to
// the end of that day so the window bound stays inclusive.
func parseWindow(c *gin.Context) (start, end *time.Time, err error) {
	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		t, perr := parseWindowBound(raw, false)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if raw := strings.TrimSpace(c.Query("end")); raw != "" {
		t, perr := parseWindowBound(raw, true)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, service.ErrInvalidWindow
	}
	return start, end, nil
}

func parseWindowBound(raw string, isEnd bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		// Inclusive date bound: the whole day belongs to the window
		return t.UTC().Add(24*time.Hour - time.Nanosecond), nil
	}
	return t.UTC(), nil
}

// statsErrorStatus maps aggregation-path errors to HTTP statuses
func statsErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAggregationTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
