// Package errhttp maps domain errors to HTTP status codes.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/httpx"
	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is/As so wrapped errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	var verr *orderdomain.ValidationError
	if errors.As(err, &verr) {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
		return
	}

	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}
