package middleware

import (
	"strings"

	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OptionalAuthMiddleware extracts the caller's identity from a Bearer token
// when one is present. Catalog search is public, so a missing or invalid
// token never fails the request; caller-scoped lookups simply resolve to
// nothing downstream.
func OptionalAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return next(c)
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			return next(c)
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		return next(c)
	}
}

// UserIDFromContext returns the authenticated caller's user id, or nil for
// anonymous requests.
func UserIDFromContext(c echo.Context) *uint {
	if id, ok := c.Get("user_id").(uint); ok {
		return &id
	}
	return nil
}
