package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/JawandS/WbgNews/internal/format"
)

const htmlTemplates = `
{{define "badge"}}{{if eq .Badge.Label "Completed"}}<span class="badge bg-success">Completed</span>{{else}}<span class="badge bg-primary">Upcoming</span>{{end}}{{end}}

{{define "compact"}}<div class="meeting-card mb-3 p-3 border rounded">
  <div class="row align-items-center">
    <div class="col-md-8">
      <h6 class="mb-1"><i class="fas {{councilIcon .Accent}} text-{{.Accent}} me-2"></i>{{.Title}} {{template "badge" .}}</h6>
      <p class="text-muted mb-1">{{.CouncilName}}</p>
      <p class="text-muted mb-0">{{.DisplayDate}} <span class="ms-3">{{.DisplayTime}}</span></p>
    </div>
    <div class="col-md-4 text-end">
{{- with .Agenda}}{{if .Enabled}}
      <a href="{{.URL}}" target="_blank" rel="noopener" class="btn btn-sm btn-outline-primary me-2">{{.Label}}</a>
{{- end}}{{end}}
{{- with .Minutes}}{{if .Enabled}}
      <a href="{{.URL}}" target="_blank" rel="noopener" class="btn btn-sm btn-outline-success me-2">{{.Label}}</a>
{{- end}}{{end}}
      <a href="{{.DetailsPath}}" class="btn btn-sm btn-primary">Details</a>
    </div>
  </div>
</div>
{{end}}

{{define "detailed"}}<div class="meeting-item mb-4 p-4 border rounded shadow-sm">
  <div class="row">
    <div class="col-md-8">
      <h5 class="mb-2">{{.Title}} {{template "badge" .}}</h5>
      <p class="text-muted mb-1">{{.CouncilName}}</p>
{{- if .Type}}
      <p class="text-muted mb-2">{{.Type}}</p>
{{- end}}
      <p class="text-muted mb-3">{{.DisplayLongDate}} <span class="ms-4">{{.DisplayTime}}</span></p>
{{- if .Location}}
      <p class="text-muted mb-2">{{.Location}}</p>
{{- end}}
{{- if .Description}}
      <p class="mb-2">{{.Description}}</p>
{{- end}}
{{- if .Summary}}
      <div class="ai-summary"><h6>Summary</h6><p>{{.Summary}}</p></div>
{{- end}}
    </div>
    <div class="col-md-4 text-end">
      <div class="d-flex flex-column gap-2">
        {{template "action" (action .Agenda .Accent)}}
        {{template "action" (action .Minutes .Accent)}}
        <a href="{{.DetailsPath}}" class="btn btn-{{.Accent}}">View Details</a>
      </div>
    </div>
  </div>
</div>
{{end}}

{{define "action"}}{{if .Action.Enabled}}<a href="{{.Action.URL}}" target="_blank" rel="noopener" class="btn btn-outline-{{.Accent}} me-2">{{.Caption}}</a>{{else}}<button class="btn btn-outline-secondary me-2" disabled>{{.Caption}}</button>{{end}}{{end}}

{{define "loading"}}<div class="text-center py-5">
  <div class="spinner-border text-primary" role="status"><span class="visually-hidden">Loading...</span></div>
  <p class="mt-3 text-muted">{{.}}</p>
</div>
{{end}}

{{define "error"}}<div class="text-center py-5">
  <h5 class="text-muted">Error</h5>
  <p class="text-muted">{{.}}</p>
  <button class="btn btn-primary" data-action="retry">Try Again</button>
</div>
{{end}}

{{define "empty"}}<p class="text-muted text-center py-5">{{.}}</p>
{{end}}
`

// HTML renders views as auto-escaped HTML fragments with Bootstrap class
// names.
type HTML struct {
	tmpl *template.Template
}

type actionData struct {
	Action  format.Action
	Accent  format.Accent
	Caption string
}

// NewHTML parses the card templates.
func NewHTML() (*HTML, error) {
	funcs := template.FuncMap{
		"councilIcon": councilIcon,
		"action":      newActionData,
	}
	tmpl, err := template.New("render").Funcs(funcs).Parse(htmlTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// RenderList writes one card per view, or the empty-state paragraph.
func (h *HTML) RenderList(w io.Writer, views []format.MeetingView, v Variant) error {
	if len(views) == 0 {
		return h.execute(w, "empty", EmptyListMessage)
	}
	var buf bytes.Buffer
	for _, view := range views {
		if err := h.tmpl.ExecuteTemplate(&buf, variantTemplate(v), view); err != nil {
			return fmt.Errorf("render meeting %s: %w", view.Key, err)
		}
	}
	return writeBytes(w, buf.Bytes())
}

// RenderCard writes a single card.
func (h *HTML) RenderCard(w io.Writer, view format.MeetingView, v Variant) error {
	return h.execute(w, variantTemplate(v), view)
}

// RenderLoading writes the spinner block.
func (h *HTML) RenderLoading(w io.Writer, message string) error {
	return h.execute(w, "loading", orDefault(message, DefaultLoadingMessage))
}

// RenderError writes the error block with its Try Again button.
func (h *HTML) RenderError(w io.Writer, message string) error {
	return h.execute(w, "error", orDefault(message, DefaultErrorMessage))
}

func (h *HTML) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return writeBytes(w, buf.Bytes())
}

func newActionData(a format.Action, accent format.Accent) actionData {
	caption := missingLabel(a)
	if a.Enabled {
		caption = viewLabel(a)
	}
	return actionData{Action: a, Accent: accent, Caption: caption}
}

func councilIcon(a format.Accent) string {
	switch a {
	case format.AccentPrimary:
		return "fa-building"
	case format.AccentSuccess:
		return "fa-landmark"
	default:
		return "fa-users"
	}
}

func variantTemplate(v Variant) string {
	if v == Detailed {
		return "detailed"
	}
	return "compact"
}

func writeBytes(w io.Writer, b []byte) error {
	if w == nil {
		return fmt.Errorf("render: nil writer")
	}
	_, err := w.Write(b)
	return err
}
