// Package httpclient issues JSON requests against the meetings API with a
// bounded, fixed-delay retry loop.
//
// # Retry Policy
//
// A logical request makes at most retries+1 attempts. Between attempts the
// client waits a fixed delay (one second by default); there is no exponential
// growth. What gets retried:
//
//   - Transport failures (*NetworkError): always
//   - 5xx, 408 and 429 responses (*HTTPStatusError): always
//   - Other 4xx responses: only with WithRetryClientErrors(true)
//   - Malformed JSON bodies (*JSONParseError): never
//
// Each retry is logged at warn level with the remaining budget and the
// request ID shared by all attempts.
//
// # Timeouts and Cancellation
//
// Every attempt runs under its own deadline (WithTimeout, 10s by default) and
// the whole loop, including the delay between attempts, stops as soon as the
// caller's context is cancelled.
//
// # Headers
//
// Requests carry Content-Type and Accept set to application/json, a
// User-Agent, and X-Request-ID. Headers passed in RequestOptions are merged
// over these defaults and win on conflict.
//
// # Optional Layers
//
//   - WithBreaker: a gobreaker circuit breaker around the whole logical
//     request; when open, calls fail fast with ErrCircuitOpen
//   - WithRateLimit: an x/time/rate limiter applied before every attempt
//   - WithObserver: per-attempt instrumentation (see internal/metrics)
//
// # Usage Example
//
//	client, err := httpclient.New("http://127.0.0.1:5000")
//	if err != nil {
//		return err
//	}
//	var payload json.RawMessage
//	if err := client.Request(ctx, "/api/meetings", httpclient.RequestOptions{}, &payload); err != nil {
//		var statusErr *httpclient.HTTPStatusError
//		if errors.As(err, &statusErr) {
//			// statusErr.Status holds the final response code
//		}
//		return err
//	}
package httpclient
