package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x17green/debtledger/pkg/logger"
)

const userIDContextKey = "user_id"

// Identity reads the caller's user ID from the X-User-ID header. Upstream
// authentication terminates before this service; here the header is trusted
// but required.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get("X-User-ID")
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "X-User-ID header is required",
				})
			}

			c.Set(userIDContextKey, userID)

			ctx := logger.WithActorID(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserID returns the authenticated user set by Identity.
func UserID(c echo.Context) string {
	userID, _ := c.Get(userIDContextKey).(string)
	return userID
}
