package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Export constants
const (
	FileName      = "cloned-website.html"
	FileExtension = ".html"
	MIMEType      = "text/html"

	tempPattern     = ".cloned-website-*.html"
	filePermissions = 0644
)

var (
	// ErrNoArtifact is returned when an action is invoked before anything was cloned
	ErrNoArtifact = errors.New("no artifact to export")

	// ErrClipboardUnavailable is returned when the clipboard cannot be written
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// Clipboard is the part of fyne.Clipboard the actions need
type Clipboard interface {
	SetContent(content string)
}

// Resource is the downloadable form of an artifact
type Resource struct {
	Name     string
	MIMEType string
	Content  []byte
}

// NewResource wraps artifact text as cloned-website.html
func NewResource(artifact string) Resource {
	return Resource{
		Name:     FileName,
		MIMEType: MIMEType,
		Content:  []byte(artifact),
	}
}

// Actions exports artifacts to disk and to the clipboard
type Actions struct {
	clipboard Clipboard
	exportDir string
	log       *logrus.Entry
}

// NewActions creates export actions. clipboard may be nil when the platform
// has none; Copy then reports ErrClipboardUnavailable.
func NewActions(clipboard Clipboard, exportDir string, log *logrus.Entry) *Actions {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Actions{
		clipboard: clipboard,
		exportDir: exportDir,
		log:       log,
	}
}

// SetExportDirectory changes where Download writes
func (a *Actions) SetExportDirectory(dir string) {
	a.exportDir = dir
}

// ExportDirectory returns where Download writes
func (a *Actions) ExportDirectory() string {
	return a.exportDir
}

// Save writes the artifact to w and closes w on every path. A nil writer
// means the save dialog was dismissed and nothing happens.
func (a *Actions) Save(w io.WriteCloser, artifact string) (err error) {
	if w == nil {
		return nil
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", FileName, closeErr)
		}
	}()

	if artifact == "" {
		return ErrNoArtifact
	}

	resource := NewResource(artifact)
	if _, err := w.Write(resource.Content); err != nil {
		return fmt.Errorf("failed to write %s: %w", resource.Name, err)
	}

	a.log.WithField("bytes", len(resource.Content)).Info("Artifact saved")
	return nil
}

// Download writes the artifact to cloned-website.html in the export
// directory and returns the final path. Content goes to a temp file first;
// the temp file is removed on every path that does not rename it into place.
func (a *Actions) Download(artifact string) (path string, err error) {
	if artifact == "" {
		return "", ErrNoArtifact
	}
	if a.exportDir == "" {
		return "", errors.New("export directory is not configured")
	}

	if err := os.MkdirAll(a.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(a.exportDir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		// tmp may already be closed
		_ = tmp.Close()
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	resource := NewResource(artifact)
	if _, err := tmp.Write(resource.Content); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", resource.Name, err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", resource.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", resource.Name, err)
	}

	path = filepath.Join(a.exportDir, resource.Name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", resource.Name, err)
	}
	renamed = true

	a.log.WithFields(logrus.Fields{"path": path, "bytes": len(resource.Content)}).Info("Artifact downloaded")
	return path, nil
}

// Copy places the full artifact text on the clipboard. Failures are returned
// as ErrClipboardUnavailable and never panic.
func (a *Actions) Copy(artifact string) (err error) {
	if artifact == "" {
		return ErrNoArtifact
	}
	if a.clipboard == nil {
		return ErrClipboardUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			a.log.WithField("panic", r).Warn("Clipboard write failed")
			err = fmt.Errorf("%w: %v", ErrClipboardUnavailable, r)
		}
	}()

	a.clipboard.SetContent(artifact)
	a.log.WithField("bytes", len(artifact)).Info("Artifact copied to clipboard")
	return nil
}
