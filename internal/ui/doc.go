// Package ui provides the Bubble Tea terminal interface for wbgnews.
//
// The model reads meeting snapshots from state.Store on a short tick and
// renders them as compact cards through render.Terminal. Three views are
// available:
//
//   - List: filterable meeting cards. "/" opens a debounced search box,
//     "c" and "s" cycle the council and status filters.
//   - Detail: the full card for one meeting, fetched on demand from
//     /api/meeting/{council}/{id} and merged over the list record.
//   - Logs: the tail of the diagnostic log file.
//
// Failures show an error region with an "r" retry affordance. Short-lived
// notifications dismiss themselves after five seconds. "T" cycles the theme
// and persists the choice through package prefs.
package ui
