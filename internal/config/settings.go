package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyHomeAddress       = "home_address"
	KeyRequestTimeout    = "request_timeout_seconds"
	KeyShowLoadingStatus = "show_loading_status"
	KeySidebarWidth      = "sidebar_width"
	KeyMaxBodySizeMB     = "max_body_size_mb"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultHomeAddress       = "https://go.dev/"
	DefaultRequestTimeoutSec = 20
	DefaultShowLoadingStatus = true
	DefaultSidebarWidth      = 260
	DefaultMaxBodySizeMB     = 10
	DefaultLanguage          = "system"
)

// Clamping bounds
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 300
	MinSidebarWidth      = 120
	MaxSidebarWidth      = 600
	MinMaxBodySizeMB     = 1
	MaxMaxBodySizeMB     = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHomeAddress returns the address loaded at startup
func (s *Settings) GetHomeAddress() string {
	addr := s.app.Preferences().String(KeyHomeAddress)
	if addr == "" {
		s.SetHomeAddress(DefaultHomeAddress)
		return DefaultHomeAddress
	}
	return addr
}

// SetHomeAddress sets the startup address
func (s *Settings) SetHomeAddress(addr string) {
	if addr == "" {
		addr = DefaultHomeAddress
	}
	s.app.Preferences().SetString(KeyHomeAddress, addr)
}

// GetRequestTimeout returns the per-fetch deadline
func (s *Settings) GetRequestTimeout() time.Duration {
	secs := s.app.Preferences().Int(KeyRequestTimeout)
	if secs <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec * time.Second
	}
	return time.Duration(secs) * time.Second
}

// SetRequestTimeoutSeconds sets the per-fetch deadline in seconds
func (s *Settings) SetRequestTimeoutSeconds(secs int) {
	if secs < MinRequestTimeoutSec {
		secs = MinRequestTimeoutSec
	}
	if secs > MaxRequestTimeoutSec {
		secs = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, secs)
}

// GetShowLoadingStatus returns whether fetch start pushes a loading status
func (s *Settings) GetShowLoadingStatus() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowLoadingStatus, DefaultShowLoadingStatus)
}

// SetShowLoadingStatus sets whether fetch start pushes a loading status
func (s *Settings) SetShowLoadingStatus(show bool) {
	s.app.Preferences().SetBool(KeyShowLoadingStatus, show)
}

// GetSidebarWidth returns the link sidebar width in pixels
func (s *Settings) GetSidebarWidth() float32 {
	width := s.app.Preferences().Int(KeySidebarWidth)
	if width <= 0 {
		s.SetSidebarWidth(DefaultSidebarWidth)
		return DefaultSidebarWidth
	}
	return float32(width)
}

// SetSidebarWidth sets the link sidebar width in pixels
func (s *Settings) SetSidebarWidth(width int) {
	if width < MinSidebarWidth {
		width = MinSidebarWidth
	}
	if width > MaxSidebarWidth {
		width = MaxSidebarWidth
	}
	s.app.Preferences().SetInt(KeySidebarWidth, width)
}

// GetMaxBodySize returns the response body cap in bytes
func (s *Settings) GetMaxBodySize() int64 {
	mb := s.app.Preferences().Int(KeyMaxBodySizeMB)
	if mb <= 0 {
		s.SetMaxBodySizeMB(DefaultMaxBodySizeMB)
		return DefaultMaxBodySizeMB * 1024 * 1024
	}
	return int64(mb) * 1024 * 1024
}

// SetMaxBodySizeMB sets the response body cap in megabytes
func (s *Settings) SetMaxBodySizeMB(mb int) {
	if mb < MinMaxBodySizeMB {
		mb = MinMaxBodySizeMB
	}
	if mb > MaxMaxBodySizeMB {
		mb = MaxMaxBodySizeMB
	}
	s.app.Preferences().SetInt(KeyMaxBodySizeMB, mb)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
