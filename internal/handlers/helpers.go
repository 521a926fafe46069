package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
)

// getUserIDFromContext extracts the authenticated student's ID from the JWT
// claims placed in the context by the auth middleware.
func getUserIDFromContext(c echo.Context) uuid.UUID {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return uuid.Nil
	}
	return claims.UserID
}

func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"error": echo.Map{
			"message": message,
			"status":  status,
		},
	})
}

func validationFailed(c echo.Context, details []echo.Map) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error": echo.Map{
			"message": "Validation failed",
			"details": details,
			"status":  http.StatusBadRequest,
		},
	})
}

// validationDetails flattens validator errors into field-level details.
func validationDetails(err error) []echo.Map {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := make([]echo.Map, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, echo.Map{
				"field":   fe.Field(),
				"message": fe.Error(),
			})
		}
		return details
	}
	return []echo.Map{{"message": err.Error()}}
}

func uuidDetail(field string) []echo.Map {
	return []echo.Map{{
		"field":   field,
		"message": field + " must be a valid UUID",
	}}
}
