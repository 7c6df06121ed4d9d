package ui

import (
	"strings"
	"testing"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/model"
)

func TestViewFor(t *testing.T) {
	loc := NewLocalization()

	tests := []struct {
		name          string
		state         model.RequestState
		submitEnabled bool
		busy          bool
		hasError      bool
		exportEnabled bool
	}{
		{
			name:  "idle with empty input",
			state: model.RequestState{Phase: model.PhaseIdle},
		},
		{
			name:          "idle with input",
			state:         model.RequestState{Phase: model.PhaseIdle, InputURL: "https://example.com"},
			submitEnabled: true,
		},
		{
			name:          "validating",
			state:         model.RequestState{Phase: model.PhaseValidating, InputURL: "https://example.com"},
			submitEnabled: true,
			busy:          true,
		},
		{
			name:  "loading",
			state: model.RequestState{Phase: model.PhaseLoading, InputURL: "https://example.com", SubmittedURL: "https://example.com"},
			busy:  true,
		},
		{
			name: "error",
			state: model.RequestState{
				Phase:        model.PhaseError,
				InputURL:     "nope",
				ErrorKind:    clone.KindInvalidURL,
				ErrorMessage: "invalid",
			},
			submitEnabled: true,
			hasError:      true,
		},
		{
			name: "success",
			state: model.RequestState{
				Phase:        model.PhaseSuccess,
				InputURL:     "https://example.com",
				SubmittedURL: "https://example.com",
				Artifact:     "<p>x</p>",
			},
			submitEnabled: true,
			exportEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viewFor(tt.state, loc)
			if v.SubmitEnabled != tt.submitEnabled {
				t.Errorf("SubmitEnabled = %v, want %v", v.SubmitEnabled, tt.submitEnabled)
			}
			if v.Busy != tt.busy {
				t.Errorf("Busy = %v, want %v", v.Busy, tt.busy)
			}
			if (v.ErrorText != "") != tt.hasError {
				t.Errorf("ErrorText = %q, want error: %v", v.ErrorText, tt.hasError)
			}
			if v.ExportEnabled != tt.exportEnabled {
				t.Errorf("ExportEnabled = %v, want %v", v.ExportEnabled, tt.exportEnabled)
			}
			if v.ExportEnabled && v.Source != tt.state.Artifact {
				t.Errorf("Source = %q, want %q", v.Source, tt.state.Artifact)
			}
			if v.OriginalURL != tt.state.SubmittedURL {
				t.Errorf("OriginalURL = %q, want %q", v.OriginalURL, tt.state.SubmittedURL)
			}
		})
	}
}

func TestViewFor_LocalizesHTTPStatus(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("ru")

	v := viewFor(model.RequestState{
		Phase:        model.PhaseError,
		ErrorKind:    clone.KindHTTP,
		ErrorStatus:  502,
		ErrorMessage: "The cloning service returned an error (502 Bad Gateway).",
	}, loc)

	if !strings.Contains(v.ErrorText, "502") {
		t.Errorf("Expected status in banner, got %q", v.ErrorText)
	}
	if !strings.HasPrefix(v.ErrorText, "Сервис") {
		t.Errorf("Expected Russian banner, got %q", v.ErrorText)
	}
}
