package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSidebar  = "☰"
	IconCopy     = "📋"
	IconExternal = "🌐"
	IconSource   = "</>"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	LinkCountFormat   = "%d links"
	TitleBarSeparator = " · "
)

// Layout sizing
const (
	LinkRowMinWidth  float32 = 200
	LinkRowMinHeight float32 = 44

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 420
)

// Window title truncation
const (
	MaxTitleLength = 80
)
