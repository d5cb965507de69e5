package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const (
	GinContextKeySessionID = "sessionID"
	SessionCookieName      = "chat_session"
	sessionCookieMaxAge    = 60 * 60 * 24
)

// ErrorMiddleware turns the last error attached by a handler into a JSON
// response.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		fields := []zap.Field{
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.Error(err))...)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

// SessionMiddleware gives every visitor a stable chat session id, kept in a
// cookie.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, id, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set(GinContextKeySessionID, id)
		c.Next()
	}
}

func GetSessionIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeySessionID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
