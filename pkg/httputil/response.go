package httputil

import (
	"github.com/gin-gonic/gin"
)

// DefaultMessage is used when a handler supplies no message of its own.
const DefaultMessage = "Request successful"

// Response wraps every successful API response. Data carries no
// omitempty so an absent payload serializes as `"data": null`, never
// as a missing field.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// Respond sends the uniform success envelope.
func Respond(c *gin.Context, status int, message string, data interface{}) {
	if message == "" {
		message = DefaultMessage
	}
	c.JSON(status, Response{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}
