package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/JawandS/WbgNews/internal/format"
)

// Variant selects the card layout.
type Variant int

const (
	// Compact is the one-block list card. Missing documents are omitted.
	Compact Variant = iota
	// Detailed shows the weekday, the meeting type and disabled placeholders
	// for missing documents.
	Detailed
)

func (v Variant) String() string {
	switch v {
	case Compact:
		return "compact"
	case Detailed:
		return "detailed"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps "compact" and "detailed" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact":
		return Compact, nil
	case "detailed", "detail":
		return Detailed, nil
	default:
		return Compact, fmt.Errorf("unknown card variant %q", s)
	}
}

// Renderer writes meeting views to an explicit output. Rendering the same
// input twice produces the same bytes.
type Renderer interface {
	RenderList(w io.Writer, views []format.MeetingView, v Variant) error
	RenderCard(w io.Writer, view format.MeetingView, v Variant) error
	RenderLoading(w io.Writer, message string) error
	RenderError(w io.Writer, message string) error
}

var (
	_ Renderer = (*Terminal)(nil)
	_ Renderer = (*HTML)(nil)
)

const (
	// DefaultLoadingMessage is shown when RenderLoading gets an empty message.
	DefaultLoadingMessage = "Loading..."
	// DefaultErrorMessage is shown when RenderError gets an empty message.
	DefaultErrorMessage = "An error occurred"
	// EmptyListMessage is shown for a list with no meetings.
	EmptyListMessage = "No meetings found."
)

// missingLabel is the placeholder for a disabled document action.
func missingLabel(a format.Action) string {
	return "No " + a.Label + " Available"
}

// viewLabel is the detailed-variant caption for an enabled document action.
func viewLabel(a format.Action) string {
	return "View " + a.Label
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
