package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestHomeAddress(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	addr := settings.GetHomeAddress()
	if addr != DefaultHomeAddress {
		t.Errorf("Expected default home address %s, got %s", DefaultHomeAddress, addr)
	}

	// Test setting custom value
	settings.SetHomeAddress("https://example.com/")
	if settings.GetHomeAddress() != "https://example.com/" {
		t.Errorf("Expected home address https://example.com/, got %s", settings.GetHomeAddress())
	}

	// Empty value falls back to default
	settings.SetHomeAddress("")
	if settings.GetHomeAddress() != DefaultHomeAddress {
		t.Error("Empty home address should fall back to default")
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetRequestTimeout()
	if timeout != DefaultRequestTimeoutSec*time.Second {
		t.Errorf("Expected default timeout %ds, got %v", DefaultRequestTimeoutSec, timeout)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSeconds(5)
	if settings.GetRequestTimeout() != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", settings.GetRequestTimeout())
	}

	// Test boundary values
	settings.SetRequestTimeoutSeconds(0) // Should be clamped to minimum
	if settings.GetRequestTimeout() != MinRequestTimeoutSec*time.Second {
		t.Error("Timeout should be clamped to minimum")
	}

	settings.SetRequestTimeoutSeconds(10000) // Should be clamped to maximum
	if settings.GetRequestTimeout() != MaxRequestTimeoutSec*time.Second {
		t.Error("Timeout should be clamped to maximum")
	}
}

func TestShowLoadingStatus(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowLoadingStatus() != DefaultShowLoadingStatus {
		t.Errorf("Expected default show loading status %v", DefaultShowLoadingStatus)
	}

	settings.SetShowLoadingStatus(false)
	if settings.GetShowLoadingStatus() {
		t.Error("Expected show loading status false after set")
	}
}

func TestSidebarWidth(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSidebarWidth() != DefaultSidebarWidth {
		t.Errorf("Expected default sidebar width %d, got %f", DefaultSidebarWidth, settings.GetSidebarWidth())
	}

	settings.SetSidebarWidth(300)
	if settings.GetSidebarWidth() != 300 {
		t.Errorf("Expected sidebar width 300, got %f", settings.GetSidebarWidth())
	}

	settings.SetSidebarWidth(10) // Should be clamped to minimum
	if settings.GetSidebarWidth() != MinSidebarWidth {
		t.Error("Sidebar width should be clamped to minimum")
	}
}

func TestMaxBodySize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMaxBodySize() != DefaultMaxBodySizeMB*1024*1024 {
		t.Errorf("Expected default max body size %d MB, got %d bytes", DefaultMaxBodySizeMB, settings.GetMaxBodySize())
	}

	settings.SetMaxBodySizeMB(2)
	if settings.GetMaxBodySize() != 2*1024*1024 {
		t.Errorf("Expected max body size 2MB, got %d", settings.GetMaxBodySize())
	}

	settings.SetMaxBodySizeMB(0) // Should be clamped to minimum
	if settings.GetMaxBodySize() != MinMaxBodySizeMB*1024*1024 {
		t.Error("Max body size should be clamped to minimum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
}
