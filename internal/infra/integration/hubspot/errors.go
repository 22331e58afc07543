package hubspot

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from HubSpot. The JSON fields mirror the
// CRM error body; StatusCode is the HTTP status.
type APIError struct {
	StatusCode    int    `json:"-"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hubspot: status %d", e.StatusCode)
	}
	if e.Category == "" {
		return fmt.Sprintf("hubspot: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hubspot: status %d (%s): %s", e.StatusCode, e.Category, e.Message)
}

// AsAPIError unwraps err looking for an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

var (
	ErrNotConfigured   = errors.New("hubspot: api token not configured")
	ErrMalformedSearch = errors.New("hubspot: malformed search response")
)
