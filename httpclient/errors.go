package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrStatus           = errors.New("httpclient: unexpected status")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)

// StatusError reports a completed exchange whose status code the caller
// chose to treat as an error (see GetJSON).
type StatusError struct {
	StatusCode int
	Body       string
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpclient: service returned status %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return errors.Is(target, ErrStatus)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

func NewStatusError(statusCode int, body, requestID string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Body:       body,
		RequestID:  requestID,
	}
}

func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}
