package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lark/internal/service"
)

func windowContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest("GET", "/stats?"+query, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParseWindow(t *testing.T) {
	t.Run("no bounds", func(t *testing.T) {
		start, end, err := parseWindow(windowContext(t, ""))
		assert.NoError(t, err)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("rfc3339 bounds", func(t *testing.T) {
		start, end, err := parseWindow(windowContext(t, "start=2026-01-01T10:00:00Z&end=2026-01-02T10:00:00Z"))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), *end)
	})

	t.Run("date-only end is inclusive", func(t *testing.T) {
		start, end, err := parseWindow(windowContext(t, "start=2026-01-01&end=2026-01-02"))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *start)
		// An event late on Jan 2 still falls inside the window
		late := time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC)
		assert.False(t, end.Before(late))
		assert.Equal(t, "2026-01-02", end.Format("2006-01-02"))
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, _, err := parseWindow(windowContext(t, "start=2026-02-01&end=2026-01-01"))
		assert.Equal(t, service.ErrInvalidWindow, err)
	})

	t.Run("garbage bound", func(t *testing.T) {
		_, _, err := parseWindow(windowContext(t, "start=yesterday"))
		assert.Error(t, err)
	})
}

func TestStatsErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statsErrorStatus(service.ErrLinkNotFound))
	assert.Equal(t, http.StatusBadRequest, statsErrorStatus(service.ErrInvalidWindow))
	assert.Equal(t, http.StatusGatewayTimeout, statsErrorStatus(service.ErrAggregationTimeout))
	assert.Equal(t, http.StatusInternalServerError, statsErrorStatus(assert.AnError))
}
