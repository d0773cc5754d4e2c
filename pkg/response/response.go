package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers reply with the {success: ...} convention the CarHub frontend
// expects, e.g. {"success":true,"car":{...}}.

// OK writes a 200 with success:true merged with the given fields.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error writes an error status with success:false and a message. Optional
// details carry field-level validation output.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := gin.H{"success": false, "message": message}
	if details != nil {
		body["errors"] = details
	}
	c.JSON(status, body)
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	Error(c, status, message, details)
	c.Abort()
}
