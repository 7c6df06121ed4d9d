package model

import (
	"strings"

	"github.com/ytget/site-cloner/internal/clone"
)

// RequestState is the controller's view of the current submission.
// Artifact and ErrorMessage are never both set.
type RequestState struct {
	Phase        Phase
	InputURL     string          // text currently in the URL entry
	SubmittedURL string          // validated URL of the current submission
	Sequence     uint64          // sequence number of the current submission, 0 before the first
	ErrorKind    clone.ErrorKind // set only in PhaseError
	ErrorStatus  int             // HTTP status of a KindHTTP error
	ErrorMessage string          // set only in PhaseError
	Artifact     string          // set only in PhaseSuccess
}

// NewRequestState returns the state a controller starts with
func NewRequestState() RequestState {
	return RequestState{Phase: PhaseIdle}
}

// HasArtifact reports whether export actions have something to work on
func (s RequestState) HasArtifact() bool {
	return s.Phase == PhaseSuccess && s.Artifact != ""
}

// HasError reports whether the error banner should be visible
func (s RequestState) HasError() bool {
	return s.Phase == PhaseError && s.ErrorMessage != ""
}

// CanSubmit reports whether the submit control is enabled: never while
// loading and never for blank input.
func (s RequestState) CanSubmit() bool {
	if s.Phase == PhaseLoading {
		return false
	}
	return strings.TrimSpace(s.InputURL) != ""
}

// ClearOutcome drops the artifact and error of a previous submission
func (s *RequestState) ClearOutcome() {
	s.Artifact = ""
	s.ErrorKind = ""
	s.ErrorStatus = 0
	s.ErrorMessage = ""
}
