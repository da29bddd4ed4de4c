// Package httperr maps service error classes onto HTTP status errors so
// every resource handler surfaces them the same way.
package httperr

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/errdefs"
)

// Transform converts a service error into the huma error the REST boundary
// returns: 400 for validation, 404 for not found, 401 for ownership, and a
// generic 500 with the given message for everything else.
func Transform(err error, serverMessage string) error {
	switch {
	case errdefs.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errdefs.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errdefs.IsAuthorization(err):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, serverMessage, err)
	}
}
