package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	t.Parallel()
	m := New("test")
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/books/:bookId", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})
	e.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1", http.NoBody))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(),
		`test_http_requests_total{method="GET",route="/books/:bookId",status="404"} 1`))
}
