package clients

import "fmt"

// TransportError is the uniform failure value for a completion round-trip:
// timeouts, non-2xx statuses, and malformed response envelopes all land here.
// StatusCode is 0 when the request never got an HTTP response.
type TransportError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("completion request timed out: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("completion request failed with status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("completion request failed: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth retrying by an outer policy.
// Timeouts and 5xx are; 4xx (bad request, auth) are not.
func (e *TransportError) Retryable() bool {
	return e.Timeout || e.StatusCode >= 500 || e.StatusCode == 0
}
