package ui

import (
	"errors"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	endpointEntry  *widget.Entry
	exportDirEntry *widget.Entry
	revealCheck    *widget.Check
	logLevelSelect *widget.Select
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		window:        window,
		localization:  localization,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(clone.DefaultEndpoint)
	sd.endpointEntry.Validator = validateEndpoint

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.revealCheck = widget.NewCheck(text(KeyRevealAfterExport), nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Language selection, shown by display name
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyServiceEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetServiceEndpoint())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterExport())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(errors.New(sd.localization.GetText(KeyInvalidEndpoint)+": "+err.Error()), sd.window)
		return
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form into the settings and runs onSaved. An invalid
// endpoint keeps the previous one and is returned; the other fields are
// saved regardless.
func (sd *SettingsDialog) apply() error {
	endpointErr := validateEndpoint(sd.endpointEntry.Text)
	if endpointErr == nil {
		sd.settings.SetServiceEndpoint(sd.endpointEntry.Text)
	}

	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	sd.settings.SetRevealAfterExport(sd.revealCheck.Checked)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	return endpointErr
}

// validateEndpoint accepts blank (the default endpoint) or an http(s) base URL
func validateEndpoint(text string) error {
	_, err := clone.NewClient(text)
	return err
}
