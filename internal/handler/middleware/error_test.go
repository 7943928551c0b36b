//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"ramillete/internal/handler/httperr"
	"ramillete/internal/handler/middleware"
	"ramillete/internal/pkg/errs"
	"ramillete/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs swaps the default slog handler for the test's lifetime.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("server errors are logged with their stack", func(t *testing.T) {
		logs := captureLogs(t)

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			err := errs.Wrap(errs.New("connection refused"), "insert failed")
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create recipient")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to create recipient")

		assert.Contains(t, logs.String(), "request failed")
		assert.Contains(t, logs.String(), "insert failed")
	})

	t.Run("client errors are not logged as failures", func(t *testing.T) {
		logs := captureLogs(t)

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/bad", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad input"), "Invalid recipient name")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bad", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid recipient name")

		assert.NotContains(t, logs.String(), "request failed")
	})

	t.Run("registered public error is rendered when nothing was written", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/deferred", func(c *gin.Context) {
			_ = c.Error(gin.Error{
				Err:  errs.New("lookup failed"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusNotFound, Error: "Not Found", Message: "Recipient not found"},
			})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/deferred", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Recipient not found")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "Internal server error", body.Message)
}
