package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// OpenInSystemBrowser hands a URL to the operating system default browser
func OpenInSystemBrowser(pageURL string) error {
	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openURLMacOS(pageURL)
	case OSWindows:
		return openURLWindows(pageURL)
	case OSLinux:
		return openURLLinux(pageURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURLMacOS opens the URL with the default browser on macOS
func openURLMacOS(pageURL string) error {
	cmd := exec.Command(OpenCommand, pageURL)
	return cmd.Run()
}

// openURLWindows opens the URL with the default browser on Windows
func openURLWindows(pageURL string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", pageURL)
	return cmd.Run()
}

// openURLLinux opens the URL with the default browser on Linux
func openURLLinux(pageURL string) error {
	cmd := exec.Command(XDGOpenCommand, pageURL)
	return cmd.Run()
}
