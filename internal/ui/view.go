package ui

import (
	"github.com/ytget/site-cloner/internal/model"
)

// view is what the window shows for one request state
type view struct {
	SubmitEnabled bool
	Busy          bool
	ErrorText     string // empty hides the banner
	OriginalURL   string
	Source        string
	ExportEnabled bool
}

// viewFor maps a request state to widget state
func viewFor(state model.RequestState, loc *Localization) view {
	v := view{
		SubmitEnabled: state.CanSubmit(),
		Busy:          state.Phase.IsBusy(),
		OriginalURL:   state.SubmittedURL,
	}

	if state.HasError() {
		v.ErrorText = loc.ErrorText(state.ErrorKind, state.ErrorStatus)
	}

	if state.HasArtifact() {
		v.Source = state.Artifact
		v.ExportEnabled = true
	}

	return v
}
