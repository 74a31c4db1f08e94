package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a request
// without touching the network.
var ErrCircuitOpen = errors.New("circuit breaker open")

// NetworkError reports a transport failure: connection refused, DNS failure,
// timeout, or a body that could not be read.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a deadline or transport timeout.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPStatusError reports a response outside the 2xx range.
type HTTPStatusError struct {
	URL    string
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.Status)
}

// JSONParseError reports a 2xx response whose body is not valid JSON for the
// requested destination.
type JSONParseError struct {
	URL string
	Err error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *JSONParseError) Unwrap() error { return e.Err }

// Error kinds reported by Kind and used as metric labels.
const (
	KindNetwork     = "network"
	KindTimeout     = "timeout"
	KindHTTPStatus  = "http_status"
	KindJSONParse   = "json_parse"
	KindCircuitOpen = "circuit_open"
	KindCanceled    = "canceled"
	KindOther       = "other"
)

// Kind classifies err into one of the Kind* constants. A nil error yields "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var (
		netErr    *NetworkError
		statusErr *HTTPStatusError
		parseErr  *JSONParseError
	)
	switch {
	case errors.Is(err, ErrCircuitOpen):
		return KindCircuitOpen
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.As(err, &parseErr):
		return KindJSONParse
	case errors.As(err, &netErr):
		if errors.Is(err, context.Canceled) {
			return KindCanceled
		}
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindOther
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return 0
}
