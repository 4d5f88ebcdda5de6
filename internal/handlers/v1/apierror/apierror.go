// Package apierror maps engine error kinds onto HTTP statuses. The mapped
// response carries the kind's safe message only; internal causes stay in
// the server logs.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

func statusForKind(kind transfer.Kind) int {
	switch kind {
	case transfer.KindAuthRequired:
		return http.StatusUnauthorized
	case transfer.KindAccessDenied:
		return http.StatusForbidden
	case transfer.KindInvalidRequest, transfer.KindInvalidAmount:
		return http.StatusBadRequest
	case transfer.KindNotFound:
		return http.StatusNotFound
	case transfer.KindAccountInactive, transfer.KindInsufficientFunds, transfer.KindDailyLimitExceeded:
		return http.StatusUnprocessableEntity
	case transfer.KindConflict:
		return http.StatusConflict
	case transfer.KindTransient:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// FromEngine converts an engine failure into a huma error response.
func FromEngine(err error) error {
	var engineErr *transfer.Error
	if errors.As(err, &engineErr) {
		return huma.NewError(statusForKind(engineErr.Kind), engineErr.Message)
	}
	return huma.NewError(http.StatusInternalServerError, "request could not be processed")
}
