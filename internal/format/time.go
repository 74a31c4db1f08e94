package format

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Error describes input the formatters could not interpret. It never reaches
// callers of FormatDate or FormatTime; those log it and return the input.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("format %q: %s", e.Input, e.Reason)
}

// FormatTime converts a 24-hour "HH:MM" value to 12-hour form ("1:30 PM").
// Minutes are passed through as given. Unparseable input is logged and
// returned unchanged.
func FormatTime(value string) string {
	out, err := convertTime(value)
	if err != nil {
		slog.Warn("format time failed", slog.String("input", value), slog.Any("error", err))
		return value
	}
	return out
}

func convertTime(value string) (string, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return "", &Error{Input: value, Reason: "missing colon"}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", &Error{Input: value, Reason: "hour is not a number"}
	}
	if hour < 0 || hour > 23 {
		return "", &Error{Input: value, Reason: "hour out of range"}
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], suffix), nil
}
