package model

// Package model defines domain data structures used across the app: fetched
// responses, parsed page summaries, and load state enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
