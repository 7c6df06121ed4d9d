package ui

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/config"
	"github.com/ytget/site-cloner/internal/controller"
	"github.com/ytget/site-cloner/internal/export"
	"github.com/ytget/site-cloner/internal/logging"
	"github.com/ytget/site-cloner/internal/model"
	"github.com/ytget/site-cloner/internal/platform"
	"github.com/ytget/site-cloner/internal/preview"
)

// Services are the collaborators the window drives
type Services struct {
	Controller *controller.Controller
	Actions    *export.Actions
	Health     clone.HealthChecker
	Logger     *logrus.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   *controller.Controller
	actions      *export.Actions
	health       clone.HealthChecker
	logger       *logrus.Logger
	log          *logrus.Entry
	settings     *config.Settings
	localization *Localization

	urlEntry    *widget.Entry
	cloneBtn    *widget.Button
	copyBtn     *widget.Button
	downloadBtn *widget.Button
	browserBtn  *widget.Button

	// OS hooks, replaced in tests
	revealFile func(path string) error
	openFile   func(path, mimeType string) error

	errorLabel     *widget.Label
	errorContainer *fyne.Container

	tabs          *container.AppTabs
	originalLink  *widget.Hyperlink
	originalHint  *widget.Label
	generatedText *widget.RichText
	sourceGrid    *widget.TextGrid

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	noticeMu              sync.Mutex
	noticeToken           int

	// Last rendered values, so unchanged widgets are left alone
	lastPhase    model.Phase
	lastSequence uint64
	lastOriginal string
	lastArtifact string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	logger := services.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   services.Controller,
		actions:      services.Actions,
		health:       services.Health,
		logger:       logger,
		log:          logging.Component(logger, "ui"),
		settings:     settings,
		localization: localization,
		revealFile:   platform.OpenFileInManager,
		openFile:     platform.OpenFileWithDefaultApp,
		lastPhase:    model.PhaseIdle,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.controller.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.render()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.controller.SetInput
	// Enter in the URL field submits
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onCloneClick()
	}

	ui.cloneBtn = widget.NewButton(ui.localization.GetText(KeyClone), ui.onCloneClick)
	ui.cloneBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.cloneBtn, ui.urlEntry)

	// Notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Error banner, visible only in the Error phase
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorContainer = container.NewBorder(nil, nil, widget.NewLabel(IconError), nil, ui.errorLabel)
	ui.errorContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.errorContainer)

	// Original tab: the submitted URL, opened only when the user taps it
	ui.originalLink = widget.NewHyperlink("", nil)
	ui.originalLink.Hide()
	ui.originalHint = widget.NewLabel(ui.localization.GetText(KeyNothingYet))

	// Generated tab: rendered from the stored markup, never from a URL
	ui.generatedText = widget.NewRichTextFromMarkdown(ui.localization.GetText(KeyNothingYet))
	ui.generatedText.Wrapping = fyne.TextWrapWord

	ui.sourceGrid = widget.NewTextGrid()

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyOriginal), container.NewVBox(ui.originalLink, ui.originalHint)),
		container.NewTabItem(ui.localization.GetText(KeyGenerated), container.NewVScroll(ui.generatedText)),
		container.NewTabItem(ui.localization.GetText(KeySource), container.NewScroll(ui.sourceGrid)),
	)
	ui.tabs.SelectIndex(TabGenerated)

	ui.copyBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCopy), theme.ContentCopyIcon(), ui.onCopyClick)
	ui.downloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDownload), theme.DocumentSaveIcon(), ui.onDownloadClick)
	ui.browserBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenInBrowser), theme.ComputerIcon(), ui.onOpenInBrowser)
	bottomPanel := container.NewHBox(ui.copyBtn, ui.downloadBtn, ui.browserBtn)

	ui.window.SetContent(container.NewBorder(topCombined, bottomPanel, nil, nil, ui.tabs))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuickExport), ui.onQuickExport)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.cloneBtn.SetText(ui.localization.GetText(KeyClone))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.browserBtn.SetText(ui.localization.GetText(KeyOpenInBrowser))

	ui.tabs.Items[TabOriginal].Text = ui.localization.GetText(KeyOriginal)
	ui.tabs.Items[TabGenerated].Text = ui.localization.GetText(KeyGenerated)
	ui.tabs.Items[TabSource].Text = ui.localization.GetText(KeySource)
	ui.tabs.Refresh()

	// Force the previews to be rebuilt in the new language
	ui.lastSequence = ^uint64(0)
	ui.render()
}

// onCloneClick submits the URL entry
func (ui *RootUI) onCloneClick() {
	if !ui.controller.CanSubmit() {
		return
	}
	ui.controller.Submit()
	ui.render()
}

// onStateUpdate is the controller callback. It may run on any goroutine, so
// the window re-renders the latest state on the UI thread.
func (ui *RootUI) onStateUpdate(model.RequestState) {
	fyne.Do(ui.render)
}

// render brings every widget in line with the controller state
func (ui *RootUI) render() {
	state := ui.controller.State()
	v := viewFor(state, ui.localization)

	if v.SubmitEnabled {
		ui.cloneBtn.Enable()
	} else {
		ui.cloneBtn.Disable()
	}

	if v.ErrorText != "" {
		ui.errorLabel.SetText(v.ErrorText)
		ui.errorContainer.Show()
	} else {
		ui.errorContainer.Hide()
	}

	if v.Busy != ui.lastPhase.IsBusy() {
		if v.Busy {
			ui.showNotification(ui.localization.GetText(KeyCloning), true)
		} else {
			ui.hideNotification()
		}
	}
	ui.lastPhase = state.Phase

	if v.ExportEnabled {
		ui.copyBtn.Enable()
		ui.downloadBtn.Enable()
		ui.browserBtn.Enable()
	} else {
		ui.copyBtn.Disable()
		ui.downloadBtn.Disable()
		ui.browserBtn.Disable()
	}

	if state.Sequence != ui.lastSequence || v.OriginalURL != ui.lastOriginal || v.Source != ui.lastArtifact {
		ui.renderOriginal(v.OriginalURL)
		ui.renderArtifact(v.Source)
		ui.lastSequence = state.Sequence
		ui.lastOriginal = v.OriginalURL
		ui.lastArtifact = v.Source
	}
}

func (ui *RootUI) renderOriginal(raw string) {
	u, err := url.Parse(raw)
	if raw == "" || err != nil {
		ui.originalLink.Hide()
		ui.originalHint.SetText(ui.localization.GetText(KeyNothingYet))
		ui.originalHint.Show()
		return
	}
	ui.originalLink.SetText(raw)
	ui.originalLink.SetURL(u)
	ui.originalLink.Show()
	ui.originalHint.Hide()
}

func (ui *RootUI) renderArtifact(artifact string) {
	ui.sourceGrid.SetText(artifact)

	if artifact == "" {
		ui.generatedText.ParseMarkdown(ui.localization.GetText(KeyNothingYet))
		return
	}

	summary, err := preview.Summarize(artifact)
	if err != nil {
		ui.log.WithError(err).Warn("Failed to build preview")
		ui.generatedText.ParseMarkdown(ui.localization.GetText(KeyPreviewFailed))
		return
	}
	ui.generatedText.ParseMarkdown(summary.Markdown())
}

// currentArtifact returns the artifact of a successful submission
func (ui *RootUI) currentArtifact() (string, bool) {
	state := ui.controller.State()
	return state.Artifact, state.HasArtifact()
}

// onCopyClick copies the artifact text to the clipboard
func (ui *RootUI) onCopyClick() {
	artifact, ok := ui.currentArtifact()
	if !ok {
		return
	}

	if err := ui.actions.Copy(artifact); err != nil {
		// Not fatal: the artifact is still available for download
		ui.showNotice(ui.localization.GetText(KeyClipboardUnavailable))
		return
	}
	ui.showNotice(ui.localization.GetText(KeyCopied))
}

// onDownloadClick asks where to save the artifact
func (ui *RootUI) onDownloadClick() {
	artifact, ok := ui.currentArtifact()
	if !ok {
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.log.WithError(err).Error("Save dialog failed")
			dialog.ShowError(err, ui.window)
			return
		}
		// Dismissed
		if writer == nil {
			return
		}

		uri := writer.URI()
		if err := ui.actions.Save(writer, artifact); err != nil {
			dialog.ShowError(errors.New(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window)
			return
		}

		ui.showNotice(ui.localization.GetText(KeySavedTo) + " " + uri.Name())
		if uri.Scheme() == "file" {
			ui.revealExport(uri.Path())
		}
	}, ui.window)

	resource := export.NewResource(artifact)
	saveDialog.SetFileName(resource.Name)
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{export.FileExtension}))
	if location, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetExportDirectory())); err == nil {
		saveDialog.SetLocation(location)
	}
	saveDialog.Show()
}

// onQuickExport writes the artifact into the export directory without asking
func (ui *RootUI) onQuickExport() {
	artifact, ok := ui.currentArtifact()
	if !ok {
		ui.showNotice(ui.localization.GetText(KeyNothingYet))
		return
	}

	path, err := ui.actions.Download(artifact)
	if err != nil {
		ui.log.WithError(err).Error("Quick export failed")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window)
		return
	}

	ui.showNotice(ui.localization.GetText(KeySavedTo) + " " + path)
	ui.revealExport(path)
}

// onOpenInBrowser exports the artifact and opens the file with the default
// application, which renders the page the way the preview tabs cannot
func (ui *RootUI) onOpenInBrowser() {
	artifact, ok := ui.currentArtifact()
	if !ok {
		return
	}

	path, err := ui.actions.Download(artifact)
	if err != nil {
		ui.log.WithError(err).Error("Export for browser failed")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window)
		return
	}

	if err := ui.openFile(path, export.NewResource(artifact).MIMEType); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("Failed to open exported file")
		ui.showNotice(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	ui.log.WithField("path", path).Info("Opened exported file")
}

// revealExport shows an exported file in the file manager when enabled
func (ui *RootUI) revealExport(path string) {
	if !ui.settings.GetRevealAfterExport() {
		return
	}
	if err := ui.revealFile(path); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("Failed to reveal exported file")
		ui.showNotice(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// checkHealth probes the service once and reports the result in the
// notification panel
func (ui *RootUI) checkHealth() {
	if ui.health == nil {
		return
	}
	checker := ui.health

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HealthCheckTimeout)
		defer cancel()

		err := checker.Health(ctx)
		if err != nil {
			ui.log.WithError(err).Warn("Cloning service health check failed")
		}

		fyne.Do(func() {
			// A running clone owns the panel
			if ui.controller.State().Phase.IsBusy() {
				return
			}
			if err != nil {
				ui.showNotice(ui.localization.GetText(KeyServiceOffline))
				return
			}
			ui.showNotice(ui.localization.GetText(KeyServiceOnline))
		})
	}()
}

// showNotification displays a message in the notification panel under the URL input.
// Call on the UI thread.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.noticeMu.Lock()
	ui.noticeToken++
	ui.noticeMu.Unlock()

	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showNotice shows a message that hides itself after NoticeAutoHide unless
// something else replaced it meanwhile
func (ui *RootUI) showNotice(message string) {
	ui.showNotification(message, false)

	ui.noticeMu.Lock()
	token := ui.noticeToken
	ui.noticeMu.Unlock()

	time.AfterFunc(NoticeAutoHide, func() {
		fyne.Do(func() {
			ui.noticeMu.Lock()
			current := ui.noticeToken
			ui.noticeMu.Unlock()
			if current == token && !ui.controller.State().Phase.IsBusy() {
				ui.hideNotification()
			}
		})
	})
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.actions.SetExportDirectory(ui.settings.GetExportDirectory())
	logging.SetLevel(ui.logger, ui.settings.GetLogLevel())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	client, err := clone.NewClient(
		ui.settings.GetServiceEndpoint(),
		clone.WithLogger(logging.Component(ui.logger, "clone")),
	)
	if err != nil {
		ui.log.WithError(err).Error("Failed to rebuild clone client")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyInvalidEndpoint)+": "+err.Error()), ui.window)
		return
	}
	ui.controller.SetClient(client)
	ui.health = client
	ui.log.WithField("endpoint", client.Endpoint()).Info("Cloning service endpoint updated")

	ui.checkHealth()
}

// Start runs the startup health probe
func (ui *RootUI) Start() {
	ui.checkHealth()
}
