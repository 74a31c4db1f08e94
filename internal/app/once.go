package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/render"
)

// Output formats accepted by RunOnce.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// NewRenderer returns the renderer for an output format. Text output picks
// its color profile from w and the environment.
func NewRenderer(outputFormat string, w io.Writer) (render.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(outputFormat)) {
	case "", FormatText:
		profile := termenv.NewOutput(w).EnvColorProfile()
		return render.NewTerminal(render.DefaultPalette(), render.WithProfile(profile)), nil
	case FormatHTML:
		h, err := render.NewHTML()
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", outputFormat, FormatText, FormatHTML)
	}
}

// RunOnce fetches meetings a single time and writes them to w. On failure
// the error region is written before the error is returned.
func RunOnce(ctx context.Context, fetcher api.MeetingFetcher, w io.Writer, outputFormat string, variant render.Variant) error {
	r, err := NewRenderer(outputFormat, w)
	if err != nil {
		return err
	}

	records, err := fetcher.FetchMeetings(ctx)
	if err != nil {
		if renderErr := r.RenderError(w, err.Error()); renderErr != nil {
			return fmt.Errorf("render error region: %w", renderErr)
		}
		return err
	}

	if err := r.RenderList(w, format.BuildViews(records), variant); err != nil {
		return fmt.Errorf("render meetings: %w", err)
	}
	return nil
}
