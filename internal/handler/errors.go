package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x17green/debtledger/internal/domain"
)

// writeError maps domain errors onto HTTP responses. Anything unrecognized is
// a 500 with a generic body; the caller logs the detail.
func writeError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
	}

	var aerr *domain.AuthorizationError
	if errors.As(err, &aerr) {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": aerr.Message,
		})
	}

	var serr *domain.InvalidStateError
	if errors.As(err, &serr) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": serr.Message,
		})
	}

	switch {
	case errors.Is(err, domain.ErrDebtNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "debt not found",
		})
	case errors.Is(err, domain.ErrImportNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "import not found",
		})
	case errors.Is(err, domain.ErrBalanceConflict):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "the debt was modified concurrently, please retry",
		})
	case errors.Is(err, domain.ErrDuplicateReference):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "a payment with this reference already exists",
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "storage temporarily unavailable",
		})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
