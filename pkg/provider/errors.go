package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotFound is returned (wrapped) when the species provider reports that
// the requested resource does not exist.
var ErrNotFound = errors.New("species not found")

// ProviderError describes any provider failure other than not-found:
// transport errors, unexpected status codes, and undecodable payloads.
type ProviderError struct {
	Provider   string
	StatusCode int // 0 when no HTTP response was received
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Provider)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, so context cancellation and
// network errors remain detectable with errors.Is.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MapHTTPError converts an HTTP response with a non-2xx status code into
// a *ProviderError carrying a message extracted from the body when one is
// present. Adapters that treat 404 as absence check for it first.
func MapHTTPError(providerName string, resp *http.Response) *ProviderError {
	message := ExtractErrorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		if message == "" {
			message = "provider resource not found"
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		if message == "" {
			message = "provider rate limit exceeded"
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		if message == "" {
			message = "provider server error"
		}
	default:
		if message == "" {
			message = "unexpected provider response"
		}
	}

	return &ProviderError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// MapNetworkError converts a network-level error (connection refused,
// timeout, DNS resolution failure, cancellation) into a *ProviderError.
func MapNetworkError(providerName string, err error) error {
	return &ProviderError{
		Provider: providerName,
		Message:  "connection error",
		Err:      err,
	}
}

// errorBody covers the error payload shapes returned by the supported
// providers: {"error":{"message":...}} and {"detail":...}.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail string `json:"detail"`
}

// ExtractErrorMessage reads up to 4KB of body and returns a provider error
// message if one can be found. Non-JSON bodies are returned trimmed.
func ExtractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		if eb.Error.Message != "" {
			return eb.Error.Message
		}
		return eb.Detail
	}

	return strings.TrimSpace(string(data))
}
