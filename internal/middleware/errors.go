package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clinichq/clinic-api/pkg/apperrors"
)

// ErrorBody is the uniform failure envelope. It is the only error
// shape that reaches a client; handlers attach errors to the context
// and never format responses themselves.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// ErrorHandler renders the last context error into the failure
// envelope. Unknown error types fall back to a 500 with no internal
// detail on the wire.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		statusCode := http.StatusInternalServerError
		message := "Internal server error"
		kind := "Error"

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			statusCode = appErr.StatusCode()
			message = appErr.Message
			kind = string(appErr.Kind)
		}

		event := log.Warn()
		if statusCode >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(err).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", statusCode).
			Msg("request failed")

		c.JSON(statusCode, ErrorBody{
			StatusCode: statusCode,
			Message:    message,
			Error:      kind,
		})
	}
}
