package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pagepeek/pagepeek/internal/browse"
	"github.com/pagepeek/pagepeek/internal/config"
	"github.com/pagepeek/pagepeek/internal/fetch"
	"github.com/pagepeek/pagepeek/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pagepeek.pagepeek"
	AppName = "PagePeek"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("PagePeek v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	client := fetch.NewClient(
		fetch.WithMaxBodySize(settings.GetMaxBodySize()),
	)

	browseSvc := browse.NewService(client, settings.GetHomeAddress(),
		browse.WithTimeout(settings.GetRequestTimeout()),
		browse.WithLoadingStatus(settings.GetShowLoadingStatus()),
	)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, browseSvc)

	// Load the home page on startup
	browseSvc.Fetch(settings.GetHomeAddress())

	// Show and run
	myWindow.ShowAndRun()
}
