package model

import "testing"

func TestLoadState_IsActive(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateIdle, false},
		{LoadStateLoading, true},
		{LoadStateComplete, false},
		{LoadStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("LoadState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoadState_IsFinished(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateIdle, false},
		{LoadStateLoading, false},
		{LoadStateComplete, true},
		{LoadStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("LoadState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoadState_String(t *testing.T) {
	state := LoadStateLoading
	expected := "Loading"
	result := state.String()

	if result != expected {
		t.Errorf("LoadState.String() = %s, expected %s", result, expected)
	}
}
