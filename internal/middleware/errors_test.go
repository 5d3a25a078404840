package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichq/clinic-api/pkg/apperrors"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/boom", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerAppError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.Error(apperrors.NotFound("Appointment #abc not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 404, body.StatusCode)
	assert.Equal(t, "Appointment #abc not found", body.Message)
	assert.Equal(t, "NotFound", body.Error)
}

func TestErrorHandlerValidation(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.Error(apperrors.Validation("Invalid date format. Use YYYY-MM-DD."))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 400, body.StatusCode)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", body.Message)
	assert.Equal(t, "ValidationError", body.Error)
}

func TestErrorHandlerUnknownError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.Error(errors.New("connection reset by peer"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 500, body.StatusCode)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, "Error", body.Error)
}

func TestErrorHandlerWrappedStoreError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.Error(apperrors.Store("Failed to fetch patients", errors.New("no reachable servers")))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch patients", body.Message)
	assert.Equal(t, "StoreError", body.Error)
	assert.NotContains(t, w.Body.String(), "no reachable servers", "internal cause must not leak to the client")
}

func TestErrorHandlerNoError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
