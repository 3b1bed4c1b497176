// Package response centralizes how handlers write results and errors.
//
// Success payloads go out as-is; failures go out as {"message": "..."}.
// HTTP status mapping lives here and in pkg/errors, never in the
// services. Internal errors are logged in full with the request id but
// reach the client only as a generic message.
package response

import (
	"net/http"

	apperrors "dashboard/pkg/errors"
	"dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey gin context key holding the request id.
const RequestIDKey = "request_id"

// GetRequestID reads the request id set by the middleware.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// Message writes a bare {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error writes err with its natural status code. Internal and unknown
// errors use fallback instead; the collection endpoints pass 404 there
// and the id-addressed ones 500, preserving the surface's historical
// split.
func Error(c *gin.Context, err error, fallback int) {
	appErr := apperrors.AsAppError(err)

	status := appErr.HTTPStatusCode()
	if appErr.Code == apperrors.CodeInternal {
		status = fallback
	}
	write(c, appErr, status)
}

// ErrorStatus writes err with a fixed status regardless of its code. The
// transactions endpoint uses it: every failure there is a 404.
func ErrorStatus(c *gin.Context, err error, status int) {
	write(c, apperrors.AsAppError(err), status)
}

func write(c *gin.Context, appErr *apperrors.AppError, status int) {
	requestID := GetRequestID(c)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("status", status),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	// Never leak the underlying error text
	message := appErr.Message
	if appErr.Code == apperrors.CodeInternal && message == "" {
		message = http.StatusText(status)
	}
	c.JSON(status, gin.H{"message": message})
}
