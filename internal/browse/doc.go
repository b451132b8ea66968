package browse

// Package browse holds the page state and the fetch orchestration around it:
// address validation and normalization, the single-flight GET, charset
// decoding, title/link extraction, and status reporting. State changes flow
// to subscribers through an observable store so any UI can bind to it without
// the core depending on a toolkit.
