package ui

// Package ui contains the Fyne-based desktop user interface for the browser
// shell. It binds the address bar, status strip, raw HTML view, and link
// sidebar to the observable page state and routes user actions through the
// browse commands. All UI strings are localized via Localization.
