package model

// Phase represents where the current submission is in its lifecycle
type Phase string

const (
	// PhaseIdle means nothing has been submitted yet
	PhaseIdle Phase = "Idle"

	// PhaseValidating means the input is being checked before any network call
	PhaseValidating Phase = "Validating"

	// PhaseLoading means a clone request is in flight
	PhaseLoading Phase = "Loading"

	// PhaseSuccess means the latest request returned an artifact
	PhaseSuccess Phase = "Success"

	// PhaseError means the latest submission failed
	PhaseError Phase = "Error"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true while a submission is being processed
func (p Phase) IsBusy() bool {
	return p == PhaseValidating || p == PhaseLoading
}
