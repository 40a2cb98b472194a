package pratikode

import (
	"errors"
	"fmt"
)

// TransportError is returned when the request never produced an HTTP response
// (DNS failure, refused connection, timeout, cancelled context).
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pratikode: %s: transport error: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned for any status other than 200. The body is kept
// for diagnostics and is not decoded.
type HTTPStatusError struct {
	Endpoint   string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("pratikode: %s: HTTP error: %d", e.Endpoint, e.StatusCode)
}

// DecodeError is returned when a 200 response does not carry a JSON object.
type DecodeError struct {
	Endpoint string
	Body     []byte
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pratikode: %s: JSON decode error: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError reports caller input rejected before any request was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "pratikode: " + e.Reason
	}
	return fmt.Sprintf("pratikode: field '%s' %s", e.Field, e.Reason)
}

// MissingSecretError is returned when a hash is requested before the secret
// key was created for the session.
type MissingSecretError struct{}

func (e *MissingSecretError) Error() string {
	return "pratikode: secret key is required for hash generation"
}

// ErrMissingSecret is the MissingSecretError value returned by the signer.
var ErrMissingSecret error = &MissingSecretError{}

// APIError is a failure the provider signalled in the response body with
// Success=false.
type APIError struct {
	Code     string
	Message  string
	Response Response
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAPIError reports whether err carries a provider-side failure and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
