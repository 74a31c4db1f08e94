// Package format turns raw meeting records into display-ready values.
//
// # Overview
//
// Everything here is pure: no I/O, no shared state beyond the default slog
// logger used to report input that could not be interpreted. Formatting never
// fails. When a date or time cannot be parsed the problem is logged on the
// diagnostic channel and the original string is shown instead.
//
// # Dates
//
// FormatDate accepts ISO dates ("2024-03-15"), RFC 3339 timestamps and a few
// US shapes, and renders them in en-US form:
//
//	FormatDate("2024-03-15")                  // "March 15, 2024"
//	FormatDate("2024-03-15", LongDateOptions) // "Friday, March 15, 2024"
//	FormatDate("2024-03-15", DateOptions{Month: StyleNumeric})
//	                                          // "3/15/2024"
//
// Options merge field by field over DefaultDateOptions; a StyleInherit field
// keeps whatever was set before it.
//
// # Times
//
// FormatTime converts "HH:MM" to a 12-hour clock. Midnight is 12 AM and noon
// is 12 PM. Minutes are copied through exactly as received:
//
//	FormatTime("00:05") // "12:05 AM"
//	FormatTime("13:30") // "1:30 PM"
//
// # Views
//
// BuildView combines both formatters with the derived display flags (status
// badge, council accent, agenda and minutes actions) into a MeetingView that
// renderers consume without further interpretation.
package format
