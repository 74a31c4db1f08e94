package format

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/JawandS/WbgNews/internal/meeting"
)

// Badge is the status badge shown next to a meeting title.
type Badge int

const (
	BadgeUpcoming Badge = iota
	BadgeCompleted
)

// Label returns the badge text.
func (b Badge) Label() string {
	if b == BadgeCompleted {
		return "Completed"
	}
	return "Upcoming"
}

// Accent is the council accent used for icons and buttons.
type Accent int

const (
	AccentNeutral Accent = iota
	AccentPrimary
	AccentSuccess
)

func (a Accent) String() string {
	switch a {
	case AccentPrimary:
		return "primary"
	case AccentSuccess:
		return "success"
	default:
		return "secondary"
	}
}

// Action is a link control for an agenda or minutes document.
type Action struct {
	Label   string
	URL     string
	Enabled bool
}

// MeetingView is the display-ready form of a meeting record.
type MeetingView struct {
	ID      meeting.ID
	Council meeting.Council
	Key     string

	Title       string
	CouncilName string
	Type        string
	Location    string
	Description string
	Summary     string

	DisplayDate     string
	DisplayLongDate string
	DisplayTime     string

	Badge  Badge
	Accent Accent

	Agenda      Action
	Minutes     Action
	DetailsPath string
}

// BadgeFor classifies status; only an exact "completed" is completed.
func BadgeFor(status meeting.Status) Badge {
	if status.Completed() {
		return BadgeCompleted
	}
	return BadgeUpcoming
}

// AccentFor maps a council to its accent. Councils outside meeting.Councils
// get the neutral accent.
func AccentFor(c meeting.Council) Accent {
	switch c {
	case meeting.CouncilWilliamsburg:
		return AccentPrimary
	case meeting.CouncilJamesCity:
		return AccentSuccess
	default:
		slog.Debug("unrecognized council", slog.String("council", string(c)))
		return AccentNeutral
	}
}

// ActionFor enables an action iff rawURL is present, keeping the URL verbatim.
func ActionFor(label, rawURL string) Action {
	if strings.TrimSpace(rawURL) == "" {
		return Action{Label: label}
	}
	return Action{Label: label, URL: rawURL, Enabled: true}
}

// BuildView formats r for display.
func BuildView(r meeting.Record) MeetingView {
	councilName := r.CouncilName
	if strings.TrimSpace(councilName) == "" {
		councilName = r.Council.Label()
	}
	return MeetingView{
		ID:              r.ID,
		Council:         r.Council,
		Key:             r.Key(),
		Title:           r.Title,
		CouncilName:     councilName,
		Type:            r.Type,
		Location:        r.Location,
		Description:     r.Description,
		Summary:         r.AISummary,
		DisplayDate:     FormatDate(r.Date),
		DisplayLongDate: FormatDate(r.Date, LongDateOptions),
		DisplayTime:     FormatTime(r.Time),
		Badge:           BadgeFor(r.Status),
		Accent:          AccentFor(r.Council),
		Agenda:          ActionFor("Agenda", r.AgendaURL),
		Minutes:         ActionFor("Minutes", r.MinutesURL),
		DetailsPath:     DetailsPath(r.Council, r.ID),
	}
}

// BuildViews formats records preserving order.
func BuildViews(records []meeting.Record) []MeetingView {
	views := make([]MeetingView, 0, len(records))
	for _, r := range records {
		views = append(views, BuildView(r))
	}
	return views
}

// Index keys views by council and id. Later duplicates win.
func Index(views []MeetingView) map[string]MeetingView {
	out := make(map[string]MeetingView, len(views))
	for _, v := range views {
		out[v.Key] = v
	}
	return out
}

// DetailsPath is the site path of a meeting's detail page.
func DetailsPath(c meeting.Council, id meeting.ID) string {
	return "/meeting/" + url.PathEscape(string(c)) + "/" + url.PathEscape(string(id))
}
