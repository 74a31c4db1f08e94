package ui

import (
	"strings"

	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/meeting"
)

// StatusFilter narrows the list by meeting status.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusUpcoming
	StatusCompleted
)

// Label returns the display label for the filter.
func (f StatusFilter) Label() string {
	switch f {
	case StatusUpcoming:
		return "Upcoming"
	case StatusCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles All → Upcoming → Completed → All.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case StatusAll:
		return StatusUpcoming
	case StatusUpcoming:
		return StatusCompleted
	default:
		return StatusAll
	}
}

func (f StatusFilter) match(b format.Badge) bool {
	switch f {
	case StatusUpcoming:
		return b == format.BadgeUpcoming
	case StatusCompleted:
		return b == format.BadgeCompleted
	default:
		return true
	}
}

// listFilter combines the council, status and search filters. An empty
// council matches every council.
type listFilter struct {
	Council meeting.Council
	Status  StatusFilter
	Query   string
}

func (f listFilter) active() bool {
	return f.Council != "" || f.Status != StatusAll || strings.TrimSpace(f.Query) != ""
}

// nextCouncil cycles through the known councils and back to "all".
func nextCouncil(current meeting.Council) meeting.Council {
	if current == "" {
		return meeting.Councils[0]
	}
	for i, c := range meeting.Councils {
		if c == current && i+1 < len(meeting.Councils) {
			return meeting.Councils[i+1]
		}
	}
	return ""
}

func councilFilterLabel(c meeting.Council) string {
	if c == "" {
		return "All councils"
	}
	return c.Label()
}

// filterViews returns the views matching f, preserving order. The query is
// matched case-insensitively against every searchable text field; all of
// its words must match.
func filterViews(views []format.MeetingView, f listFilter) []format.MeetingView {
	terms := strings.Fields(strings.ToLower(f.Query))
	out := make([]format.MeetingView, 0, len(views))
	for _, v := range views {
		if f.Council != "" && v.Council != f.Council {
			continue
		}
		if !f.Status.match(v.Badge) {
			continue
		}
		if !matchesTerms(v, terms) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesTerms(v format.MeetingView, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		v.Title,
		v.CouncilName,
		v.Type,
		v.Location,
		v.Description,
		v.Summary,
		v.DisplayDate,
	}, "\n"))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
