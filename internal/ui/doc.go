// Package ui provides the terminal user interface for skyline.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program styled with Lipgloss. It lists the
// Astronomy Picture of the Day records of the configured window, opens a
// record in a scrollable detail view and can show the tail of the log file.
// The interface is read-only.
//
// # Package Structure
//
//   - model.go: Model, Update loop, key handling, commands and Run
//   - header.go: status bar and footer key help
//   - list.go: record rows plus the loading, error and empty states
//   - detail.go: detail view content
//   - logs.go: log overlay formatting
//   - help.go: help modal
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color themes
//
// # Loading
//
// Init starts the first load. Each load runs in a tea.Cmd that calls the
// Refresher and answers with a refreshDoneMsg carrying a store snapshot.
// While a load is pending the spinner ticks and further refresh requests
// are ignored.
//
// # Error and Empty States
//
// A failed load shows a banner with a headline chosen by the error kind,
// the message and a retry hint. Records from the previous successful load
// stay listed below the banner. A successful load with no records shows
// "No records in the last N days" instead.
//
// # Preferences
//
// The theme (T) and compact list (c) toggles are written to the prefs file
// as soon as they change.
package ui
