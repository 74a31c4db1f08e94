// Package config loads the wbgnews client configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wbgnews/config.toml
//  3. If the file doesn't exist, use Default()
//  4. If the file exists, fields it omits keep their defaults
//
// # TOML Format
//
//	api_base_url = "http://127.0.0.1:5000"
//	max_retries = 3
//	retry_delay_ms = 1000
//	request_timeout_ms = 10000
//	retry_client_errors = false
//	refresh_interval_ms = 0      # 0 disables auto refresh
//	rate_limit = 0               # requests per second, 0 disables
//	rate_burst = 1
//	circuit_breaker = false
//	metrics_addr = ""            # e.g. "127.0.0.1:9105"
//	log_file = "~/.local/state/wbgnews/wbgnews.log"
//	log_level = "info"
//
// max_retries, retry_delay_ms and request_timeout_ms distinguish "absent"
// from zero, so max_retries = 0 really means a single attempt.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML (wrapped as
// "parse config") and values Validate rejects. A missing file is not an
// error.
//
// ExpandPath is shared with the prefs package so both resolve "~" the same
// way.
package config
