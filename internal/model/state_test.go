package model

import (
	"testing"

	"github.com/ytget/site-cloner/internal/clone"
)

func TestNewRequestState(t *testing.T) {
	state := NewRequestState()

	if state.Phase != PhaseIdle {
		t.Errorf("Expected phase Idle, got %s", state.Phase)
	}
	if state.HasArtifact() || state.HasError() {
		t.Error("New state should have neither artifact nor error")
	}
}

func TestRequestState_CanSubmit(t *testing.T) {
	tests := []struct {
		phase    Phase
		input    string
		expected bool
	}{
		{PhaseIdle, "", false},
		{PhaseIdle, "   \t", false},
		{PhaseIdle, "https://example.com", true},
		{PhaseLoading, "https://example.com", false},
		{PhaseSuccess, "https://example.com", true},
		{PhaseError, "not a url", true},
	}

	for _, test := range tests {
		state := RequestState{Phase: test.phase, InputURL: test.input}
		if result := state.CanSubmit(); result != test.expected {
			t.Errorf("CanSubmit() with phase=%s input=%q = %v, expected %v",
				test.phase, test.input, result, test.expected)
		}
	}
}

func TestRequestState_ClearOutcome(t *testing.T) {
	state := RequestState{
		Phase:        PhaseError,
		ErrorKind:    clone.KindNetwork,
		ErrorMessage: "boom",
		Artifact:     "<p>stale</p>",
	}

	state.ClearOutcome()

	if state.Artifact != "" || state.ErrorMessage != "" || state.ErrorKind != "" {
		t.Errorf("ClearOutcome() left data behind: %+v", state)
	}
}

func TestRequestState_HasArtifact(t *testing.T) {
	tests := []struct {
		state    RequestState
		expected bool
	}{
		{RequestState{Phase: PhaseSuccess, Artifact: "<p>x</p>"}, true},
		{RequestState{Phase: PhaseSuccess}, false},
		{RequestState{Phase: PhaseLoading, Artifact: "<p>x</p>"}, false},
	}

	for _, test := range tests {
		if result := test.state.HasArtifact(); result != test.expected {
			t.Errorf("HasArtifact() for %+v = %v, expected %v", test.state, result, test.expected)
		}
	}
}
