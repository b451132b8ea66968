package model

// LoadState represents where a page fetch currently is in its lifecycle
type LoadState string

const (
	// LoadStateIdle means no fetch has started yet
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means a fetch is in flight
	LoadStateLoading LoadState = "Loading"

	// LoadStateComplete means the last fetch finished successfully
	LoadStateComplete LoadState = "Complete"

	// LoadStateFailed means the last fetch ended with an error
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsActive returns true if a fetch is currently in flight
func (ls LoadState) IsActive() bool {
	return ls == LoadStateLoading
}

// IsFinished returns true if the state is a terminal one (complete or failed)
func (ls LoadState) IsFinished() bool {
	return ls == LoadStateComplete || ls == LoadStateFailed
}
