package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/apperrors"
	"go.uber.org/zap"
)

// ErrorResponse is the body written for every failed request. Detail is a
// string, or a list of apperrors.FieldError for validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ErrorHandler turns the last error a handler attached with c.Error into a
// response. The underlying cause is logged and never sent to the client.
func ErrorHandler(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		meta := []any{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
		}

		appErr, ok := apperrors.As(err)
		if !ok {
			log.Errorw("Unexpected server error", append(meta, "error", err)...)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal Server Error"})
			return
		}

		status := appErr.HTTPStatus()
		if appErr.Kind == apperrors.KindValidation {
			log.Infow(appErr.Message, append(meta, "status", status, "fields", appErr.Fields)...)
			if len(appErr.Fields) > 0 {
				c.JSON(status, ErrorResponse{Detail: appErr.Fields})
				return
			}
			c.JSON(status, ErrorResponse{Detail: appErr.Message})
			return
		}

		log.Errorw(appErr.Message, append(meta,
			"status", status,
			"error_type", string(appErr.Kind),
			"error", appErr.Err,
		)...)
		c.JSON(status, ErrorResponse{Detail: appErr.Message})
	}
}
