package api

import (
	"fmt"
	"strings"
)

// MaxNameLength is the longest creature name accepted by ValidateName.
const MaxNameLength = 100

// ValidateName checks a creature name taken from the request path. It
// returns an *APIError describing the failure, or nil if the name is
// acceptable. Unknown names are not rejected here; the species provider
// decides whether they exist.
func ValidateName(name string) *APIError {
	if strings.TrimSpace(name) == "" {
		return NewInvalidRequestError("name", "name is required")
	}
	if len(name) > MaxNameLength {
		return NewInvalidRequestError("name",
			fmt.Sprintf("name exceeds maximum length of %d", MaxNameLength))
	}
	return nil
}
