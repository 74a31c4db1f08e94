// Package render draws formatted meeting views.
//
// A Renderer always writes to the io.Writer it is handed; nothing here
// touches a global document or terminal. Two implementations exist:
//
//   - Terminal styles cards with lipgloss using a Palette. The TUI feeds it
//     the active theme's palette and the -once command uses DefaultPalette.
//   - HTML emits html/template fragments whose values are escaped for the
//     context they land in, so record fields can never inject markup.
//
// Cards come in two variants. Compact is the list card and skips documents
// that are not available. Detailed adds the weekday, meeting type, location,
// description and summary, and shows "No Agenda Available" or "No Minutes
// Available" in place of a missing document link.
package render
