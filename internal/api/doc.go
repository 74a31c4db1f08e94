// Package api provides the meetings service layered over httpclient.
//
// The backend answers either bare payloads or an envelope of the form
//
//	{"success": true, "meetings": [...]}
//	{"success": true, "meeting": {...}}
//	{"success": false, "error": "Invalid council"}
//
// Both shapes are accepted. An envelope with success=false becomes an
// *APIError; transport, status and decode failures keep the httpclient error
// types so callers can still inspect them with errors.As.
//
// Health is the fire-and-forget startup probe. It makes exactly one attempt
// regardless of the client's retry budget.
package api
