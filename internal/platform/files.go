package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidAM       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Android locations
const (
	AndroidDownloadsDir = "/sdcard/Download"
	AndroidViewAction   = "android.intent.action.VIEW"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNoFileManager is returned when nothing on the system can show a directory
var ErrNoFileManager = errors.New("no suitable file manager found")

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath reports whether an executable is installed; replaced in tests
var lookPath = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return openInManagerLinux(absPath)
	case OSAndroid:
		return commandRunner(AndroidAM, "start", "-a", AndroidViewAction, "-d", "file://"+filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInManagerLinux opens the directory containing the file.
// File selection is not standardized on Linux.
func openInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if lookPath(fm) {
			return commandRunner(fm, dir)
		}
	}

	return ErrNoFileManager
}

// OpenFileWithDefaultApp opens the file with the default system application,
// which for an exported page is the browser. mimeType is only used on Android,
// where the view intent needs it.
func OpenFileWithDefaultApp(filePath, mimeType string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux:
		return commandRunner(XDGOpenCommand, absPath)
	case OSAndroid:
		return commandRunner(AndroidAM, "start", "-a", AndroidViewAction, "-d", "file://"+absPath, "-t", mimeType)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// Fyne Android apps run as libdist.so
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" || filepath.Base(os.Args[0]) == "libdist.so" {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}
