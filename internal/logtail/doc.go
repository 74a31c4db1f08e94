// Package logtail reads the tail of the diagnostic log for the in-app log
// view.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) no matter how large the log grows:
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//
// A missing file is not an error; the log simply has nothing in it yet.
// Lines longer than 1MB abort the read with a scanner error.
//
// # Parsing
//
// The application logs through slog.TextHandler, which writes
//
//	time=... level=INFO msg="..." key=value key="quoted value"
//
// Parse splits such a line into an Entry so the UI can color it by level.
// Anything that is not in that shape is passed through as the message.
package logtail
