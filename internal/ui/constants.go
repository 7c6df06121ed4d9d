package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
)

// Window sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 720

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// Notification behavior
const (
	NoticeAutoHide = 5 * time.Second
)

// Health probe
const (
	HealthCheckTimeout = 3 * time.Second
)

// Tab indexes of the preview tabs
const (
	TabOriginal = iota
	TabGenerated
	TabSource
)
