package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// timeFormat is used for all timestamps in API responses.
const timeFormat = time.RFC3339

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError("id")
	}

	return id, nil
}

func decimalFromString(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the workflow error taxonomy onto HTTP status codes.
//
//	404 - the referenced record does not exist
//	400 - malformed input
//	409 - transition refused (wrong status, not eligible, expired, integrity)
//	422 - input accepted but insufficient to generate the record
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrNotEligible),
		errors.Is(err, errs.ErrExpiredProposal),
		errors.Is(err, errs.ErrIntegrity):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientData):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
