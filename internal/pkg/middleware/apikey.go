package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/config"
	"github.com/piyathilaka/routemate/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys stores the mapping of collaborator service names to their
// API keys. The fleet CRUD and booking-creation collaborators call the core
// over these keys.
var ServiceAPIKeys = map[string]string{
	"fleet-service":   config.GetEnv("FLEET_SERVICE_API_KEY", ""),
	"booking-service": config.GetEnv("BOOKING_SERVICE_API_KEY", ""),
	"tracking-service": config.GetEnv("TRACKING_SERVICE_API_KEY", ""),
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			// Check if the API key belongs to any of the allowed services
			validKey := false
			for _, service := range allowedServices {
				if ServiceAPIKeys[service] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
