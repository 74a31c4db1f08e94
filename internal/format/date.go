package format

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Style selects how one date component is written. StyleInherit leaves the
// default for that component in place when options are merged.
type Style int

const (
	StyleInherit Style = iota
	StyleOmit
	StyleNumeric
	StyleTwoDigit
	StyleLong
	StyleShort
)

// DateOptions mirrors the en-US date options understood by FormatDate.
type DateOptions struct {
	Weekday Style
	Year    Style
	Month   Style
	Day     Style
}

// DefaultDateOptions renders "March 15, 2024".
var DefaultDateOptions = DateOptions{
	Weekday: StyleOmit,
	Year:    StyleNumeric,
	Month:   StyleLong,
	Day:     StyleNumeric,
}

// LongDateOptions adds the weekday: "Friday, March 15, 2024".
var LongDateOptions = DateOptions{Weekday: StyleLong}

// Merge returns d with every non-inherit field of override applied on top.
func (d DateOptions) Merge(override DateOptions) DateOptions {
	if override.Weekday != StyleInherit {
		d.Weekday = override.Weekday
	}
	if override.Year != StyleInherit {
		d.Year = override.Year
	}
	if override.Month != StyleInherit {
		d.Month = override.Month
	}
	if override.Day != StyleInherit {
		d.Day = override.Day
	}
	return d
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatDate renders value as an en-US date. Options are merged over
// DefaultDateOptions in order. When value cannot be parsed the failure is
// logged and value is returned unchanged.
func FormatDate(value string, opts ...DateOptions) string {
	t, err := ParseDate(value)
	if err != nil {
		slog.Warn("format date failed", slog.String("input", value), slog.Any("error", err))
		return value
	}
	merged := DefaultDateOptions
	for _, o := range opts {
		merged = merged.Merge(o)
	}
	out, err := renderDate(t, merged)
	if err != nil {
		slog.Warn("format date failed", slog.String("input", value), slog.Any("error", err))
		return value
	}
	return out
}

// ParseDate accepts the date shapes the meetings API has been seen to emit.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, &Error{Input: value, Reason: "empty date"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{Input: value, Reason: "unrecognized date"}
}

func renderDate(t time.Time, o DateOptions) (string, error) {
	weekday, err := weekdayPart(t, o.Weekday)
	if err != nil {
		return "", err
	}
	year, err := numberPart(t.Year(), o.Year, "year")
	if err != nil {
		return "", err
	}
	day, err := numberPart(t.Day(), o.Day, "day")
	if err != nil {
		return "", err
	}

	var date string
	switch o.Month {
	case StyleLong, StyleShort:
		month := t.Month().String()
		if o.Month == StyleShort {
			month = month[:3]
		}
		date = month
		if day != "" {
			date += " " + day
		}
		if year != "" {
			if day != "" {
				date += ","
			}
			date += " " + year
		}
	case StyleNumeric, StyleTwoDigit, StyleOmit:
		month, err := numberPart(int(t.Month()), o.Month, "month")
		if err != nil {
			return "", err
		}
		date = joinNonEmpty("/", month, day, year)
	default:
		return "", &Error{Input: t.Format("2006-01-02"), Reason: fmt.Sprintf("invalid month style %d", o.Month)}
	}

	return joinNonEmpty(", ", weekday, date), nil
}

func weekdayPart(t time.Time, s Style) (string, error) {
	switch s {
	case StyleOmit, StyleInherit:
		return "", nil
	case StyleLong:
		return t.Weekday().String(), nil
	case StyleShort:
		return t.Weekday().String()[:3], nil
	default:
		return "", &Error{Input: t.Format("2006-01-02"), Reason: fmt.Sprintf("invalid weekday style %d", s)}
	}
}

func numberPart(n int, s Style, name string) (string, error) {
	switch s {
	case StyleOmit, StyleInherit:
		return "", nil
	case StyleNumeric:
		return strconv.Itoa(n), nil
	case StyleTwoDigit:
		return fmt.Sprintf("%02d", n%100), nil
	default:
		return "", &Error{Input: strconv.Itoa(n), Reason: fmt.Sprintf("invalid %s style %d", name, s)}
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
