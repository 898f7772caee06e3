// Package response writes the JSON error envelope shared by handlers and middleware.
package response

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload. Errors is only present on
// validation failures and maps request field names to messages.
type ErrorBody struct {
	ErrorMessage string            `json:"errorMessage"`
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Errors       map[string]string `json:"errors,omitempty"`
}

var now = time.Now

// StatusName renders an HTTP status code as an upper snake-case name, e.g. 404 -> NOT_FOUND.
func StatusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "UNKNOWN"
	}
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.ReplaceAll(text, "'", "")
	return strings.ToUpper(strings.Join(strings.Fields(text), "_"))
}

func NewError(code int, message string) ErrorBody {
	return ErrorBody{
		ErrorMessage: message,
		Status:       StatusName(code),
		Timestamp:    now().UTC().Format(time.RFC3339),
	}
}

// Error aborts the request with the error envelope.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewError(code, message))
}

// Validation aborts with 400 and the offending fields.
func Validation(c *gin.Context, fields map[string]string) {
	body := NewError(http.StatusBadRequest, "Validation failed")
	body.Errors = fields
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Full authentication is required to access this resource")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Access denied")
}

// Message writes a plain {"message": ...} success body, the shape the
// registration endpoint answers with.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
