package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rhuss/pokedex/pkg/api"
)

// HTTPStatusFromError maps an APIError type to the corresponding HTTP status
// code.
func HTTPStatusFromError(err *api.APIError) int {
	switch err.Type {
	case api.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case api.ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AsAPIError returns the *api.APIError in err's chain, if any.
func AsAPIError(err error) (*api.APIError, bool) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ToAPIError converts a lookup error into the APIError sent to clients.
// Errors outside the api taxonomy become a generic server error so that
// provider details are not leaked.
func ToAPIError(err error) *api.APIError {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr
	}
	return api.NewServerError("internal server error")
}

// WriteErrorResponse writes a JSON error response using the ErrorResponse
// wrapper format from pkg/api. It sets the Content-Type header and writes
// the HTTP status code.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.APIError, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}

// WriteAPIError writes an APIError response, deriving the HTTP status code
// from the error type. Not-found errors are written as a bare 404 with no
// body.
func WriteAPIError(w http.ResponseWriter, apiErr *api.APIError) {
	status := HTTPStatusFromError(apiErr)
	if status == http.StatusNotFound {
		w.WriteHeader(status)
		return
	}
	WriteErrorResponse(w, apiErr, status)
}
