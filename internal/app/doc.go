// Package app wires configuration, logging, metrics, the meetings API client,
// the poller and the UI into the wbgnews program.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read ~/.config/wbgnews/config.toml
//	       ├─────> logging.OpenFile()     Diagnostic log (the TUI owns the terminal)
//	       ├─────> metrics.New()          Collectors on a private registry
//	       ├─────> newClient()            Retry, timeout, rate limit, breaker
//	       ├─────> api.NewService()       Meetings endpoints
//	       ├─────> startHealthCheck()     One attempt, result only logged
//	       └─────> errgroup
//	                ├─> Poller.Run()      Initial fetch, optional auto refresh
//	                ├─> serveMetrics()    When metrics_addr is set
//	                └─> ui.Run()          Blocks; exiting cancels the rest
//
// # Refresh
//
// Auto refresh is off unless refresh_interval_ms (or -poll) is set. When on,
// every consecutive failure doubles the wait, up to 30 minutes. The store
// keeps the last good meetings through failures, so the UI can keep showing
// them next to the error.
//
// # One-shot mode
//
// With Options.Once the program fetches once and writes the list through a
// render.Renderer (text or html) instead of starting the UI.
package app
