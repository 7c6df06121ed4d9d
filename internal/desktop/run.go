// Package desktop assembles the application: settings, logging, the clone
// client and controller, export actions and the main window.
package desktop

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/site-cloner/internal/clone"
	"github.com/ytget/site-cloner/internal/config"
	"github.com/ytget/site-cloner/internal/controller"
	"github.com/ytget/site-cloner/internal/export"
	"github.com/ytget/site-cloner/internal/logging"
	"github.com/ytget/site-cloner/internal/platform"
	"github.com/ytget/site-cloner/internal/ui"
)

const (
	AppID   = "com.ytget.site-cloner"
	AppName = "Site Cloner"
)

// Run builds the application and blocks until the window is closed
func Run(version string) {
	fyneApp := app.NewWithID(AppID)
	settings := config.NewSettings(fyneApp)

	logger, closeLog := logging.New(logging.Options{
		Level: settings.GetLogLevel(),
		Dir:   logDir(fyneApp),
	})
	defer closeLog()

	log := logging.Component(logger, "main")
	log.WithField("version", version).Infof("%s starting", AppName)

	services, err := newServices(fyneApp, settings, logger)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize services")
	}
	defer services.Controller.Close()

	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	root := ui.NewRootUI(window, fyneApp, services)
	root.Start()

	window.ShowAndRun()
	log.Info("Window closed, shutting down")
}

// newServices wires the clone client, controller and export actions from settings
func newServices(fyneApp fyne.App, settings *config.Settings, logger *logrus.Logger) (ui.Services, error) {
	log := logging.Component(logger, "main")

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		log.WithError(err).WithField("dir", exportDir).Warn("Failed to ensure export directory")
	}

	clientLog := logging.Component(logger, "clone")
	client, err := clone.NewClient(settings.GetServiceEndpoint(), clone.WithLogger(clientLog))
	if err != nil {
		log.WithError(err).Warn("Stored service endpoint is invalid, using the default")
		settings.SetServiceEndpoint(clone.DefaultEndpoint)
		client, err = clone.NewClient(clone.DefaultEndpoint, clone.WithLogger(clientLog))
		if err != nil {
			return ui.Services{}, fmt.Errorf("create clone client: %w", err)
		}
	}
	log.WithField("endpoint", client.Endpoint()).Info("Using cloning service")

	return ui.Services{
		Controller: controller.New(client, logging.Component(logger, "controller")),
		Actions:    export.NewActions(fyneApp.Clipboard(), exportDir, logging.Component(logger, "export")),
		Health:     client,
		Logger:     logger,
	}, nil
}

// logDir is the app storage root; empty keeps logs on stderr only
func logDir(fyneApp fyne.App) string {
	root := fyneApp.Storage().RootURI()
	if root == nil || root.Scheme() != "file" {
		return ""
	}
	return root.Path()
}
