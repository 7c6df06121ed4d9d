// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the URL entry and export buttons to the clone controller and renders
// the request state: a notification panel while loading, an error banner, and
// the Original, Generated and Source tabs. All UI strings are localized via
// Localization.
package ui
