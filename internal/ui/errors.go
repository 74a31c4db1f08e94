package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/httpclient"
)

// errorMessage maps a fetch failure to the short text shown in the error
// region and notifications.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		apiErr    *api.APIError
		statusErr *httpclient.HTTPStatusError
		jsonErr   *httpclient.JSONParseError
		netErr    *httpclient.NetworkError
	)
	switch {
	case errors.Is(err, httpclient.ErrCircuitOpen):
		return "Meetings API unavailable, pausing requests"
	case errors.Is(err, context.Canceled):
		return "Request canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Meetings API reported a failure"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Meetings API returned status %d", statusErr.Status)
	case errors.As(err, &jsonErr):
		return "Meetings API sent a bad response"
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return "Request timed out"
		}
		return "Meetings API offline"
	default:
		return "Failed to load meetings"
	}
}
