package ui

import (
	"fmt"
	"image/color"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/pagepeek/pagepeek/internal/browse"
	"github.com/pagepeek/pagepeek/internal/config"
	"github.com/pagepeek/pagepeek/internal/platform"
)

// RootUI represents the main browser window: address bar on top, status
// strip underneath, the raw HTML view in the center, and the link sidebar
// on the right. Everything it shows comes from browse.State subscriptions.
type RootUI struct {
	window       fyne.Window
	service      *browse.Service
	settings     *config.Settings
	localization *Localization

	// Commands
	fetchCmd  *browse.FetchCommand
	toggleCmd *browse.ToggleHTMLCommand

	// Address bar
	urlEntry    *widget.Entry
	goBtn       *widget.Button
	sourceBtn   *widget.Button
	sidebarBtn  *widget.Button
	settingsBtn *widget.Button

	// Status strip
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite

	// Page info
	titleLabel     *widget.Label
	linkCountLabel *widget.Label

	// Content
	sourceLabel  *widget.Label
	sourceScroll *container.Scroll
	linkList     *widget.List
	sidebar      *fyne.Container

	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, service *browse.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		service:      service,
		settings:     settings,
		localization: localization,
	}

	// Commands bridge UI triggers to the orchestrator
	ui.fetchCmd = browse.NewFetchCommand(service, func() string {
		return ui.urlEntry.Text
	})
	ui.toggleCmd = browse.NewToggleHTMLCommand(service)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.setupMenus()
	ui.bindState()
	ui.setupKeyboardShortcuts()

	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Address entry; Enter triggers the fetch like the Go button does
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.SetText(ui.service.State().Address())
	ui.urlEntry.OnSubmitted = func(string) {
		ui.fetchCmd.Execute()
	}

	ui.goBtn = widget.NewButton(ui.localization.GetText(KeyGo), ui.fetchCmd.Execute)
	ui.goBtn.Importance = widget.HighImportance

	ui.sourceBtn = widget.NewButton(IconSource, ui.toggleCmd.Execute)
	ui.sourceBtn.Importance = widget.LowImportance

	ui.sidebarBtn = widget.NewButton(IconSidebar, ui.onToggleSidebar)
	ui.sidebarBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(ui.settingsBtn),
		container.NewHBox(ui.goBtn, ui.sourceBtn, ui.sidebarBtn),
		ui.urlEntry,
	)

	// Status strip with busy spinner
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	statusStrip := container.NewBorder(nil, nil, nil, ui.spinner, ui.statusLabel)

	// Page title and link count
	ui.titleLabel = widget.NewLabel(DashPlaceholder)
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.linkCountLabel = widget.NewLabel(ui.localization.GetText(KeyNoLinks))
	infoRow := container.NewBorder(nil, nil, nil, ui.linkCountLabel, ui.titleLabel)

	header := container.NewVBox(topPanel, statusStrip, infoRow, widget.NewSeparator())

	// Raw HTML source view
	ui.sourceLabel = widget.NewLabel("")
	ui.sourceLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.sourceLabel.Wrapping = fyne.TextWrapBreak
	ui.sourceScroll = container.NewScroll(ui.sourceLabel)

	// Link sidebar
	ui.linkList = widget.NewList(
		func() int {
			return ui.service.State().LinkCount()
		},
		func() fyne.CanvasObject { return ui.createLinkItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateLinkItem(id, obj) },
	)

	linksHeader := widget.NewLabel(ui.localization.GetText(KeyLinksHeader))
	linksHeader.TextStyle = fyne.TextStyle{Bold: true}

	// Transparent rectangle pins the sidebar to its configured width
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(ui.settings.GetSidebarWidth(), 1))

	ui.sidebar = container.NewBorder(
		container.NewVBox(linksHeader, sizer),
		nil, nil, nil,
		ui.linkList,
	)

	content := container.NewBorder(header, nil, nil, ui.sidebar, ui.sourceScroll)
	ui.window.SetContent(content)

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
}

// bindState subscribes the widgets to page state changes. Notifications can
// arrive from the fetch goroutine, so every widget touch goes through fyne.Do.
func (ui *RootUI) bindState() {
	state := ui.service.State()

	state.Subscribe(func(f browse.Field) {
		switch f {
		case browse.FieldAddress:
			fyne.Do(func() { ui.urlEntry.SetText(state.Address()) })
		case browse.FieldStatus:
			fyne.Do(func() { ui.statusLabel.SetText(state.Status()) })
		case browse.FieldBusy:
			busy := state.Busy()
			fyne.Do(func() {
				if busy {
					ui.spinner.Show()
				} else {
					ui.spinner.Hide()
				}
			})
		case browse.FieldPageTitle:
			title := state.PageTitle()
			fyne.Do(func() { ui.applyTitle(title) })
		case browse.FieldHTMLSource:
			source := state.HTMLSource()
			fyne.Do(func() { ui.sourceLabel.SetText(source) })
		case browse.FieldLinks:
			fyne.Do(func() { ui.linkList.Refresh() })
		case browse.FieldLinkCount:
			count := state.LinkCount()
			fyne.Do(func() { ui.applyLinkCount(count) })
		case browse.FieldShowHTML:
			show := state.ShowHTML()
			fyne.Do(func() {
				if show {
					ui.sourceScroll.Show()
				} else {
					ui.sourceScroll.Hide()
				}
			})
		}
	})

	// The Go button tracks fetch availability
	ui.fetchCmd.OnCanExecuteChanged(func() {
		enabled := ui.fetchCmd.CanExecute()
		fyne.Do(func() {
			if enabled {
				ui.goBtn.Enable()
			} else {
				ui.goBtn.Disable()
			}
		})
	})
}

// setupMenus creates the main window menu
func (ui *RootUI) setupMenus() {
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem(ui.localization.GetText(KeyToggleSource), ui.toggleCmd.Execute),
		fyne.NewMenuItem(ui.localization.GetText(KeyToggleSidebar), ui.onToggleSidebar),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(viewMenu))
}

// setupKeyboardShortcuts sets up keyboard shortcuts
func (ui *RootUI) setupKeyboardShortcuts() {
	// Ctrl+L: focus the address bar
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(_ fyne.Shortcut) {
		ui.window.Canvas().Focus(ui.urlEntry)
	})
}

// applyLinkCount updates the link counter next to the page title
func (ui *RootUI) applyLinkCount(count int) {
	if count == 0 {
		ui.linkCountLabel.SetText(ui.localization.GetText(KeyNoLinks))
		return
	}
	ui.linkCountLabel.SetText(fmt.Sprintf(LinkCountFormat, count))
}

// applyTitle updates the title label and window title together
func (ui *RootUI) applyTitle(title string) {
	display := title
	if display == "" {
		display = ui.localization.GetText(KeyUntitledPage)
	}
	display = truncateTitle(display, MaxTitleLength)

	ui.titleLabel.SetText(display)

	appTitle := ui.localization.GetText(KeyAppTitle)
	if title == "" {
		ui.window.SetTitle(appTitle)
	} else {
		ui.window.SetTitle(appTitle + TitleBarSeparator + display)
	}
}

// truncateTitle shortens a title to max runes, byte-safe for non-ASCII text
func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max-3]) + "..."
}

// createLinkItem creates a reusable sidebar row
func (ui *RootUI) createLinkItem() fyne.CanvasObject {
	row := NewLinkRow(ui.localization)
	row.SetCallbacks(ui.onFollowLink, ui.onOpenExternal, ui.onCopyLink)
	return row
}

// updateLinkItem rebinds a sidebar row to the link at the given position
func (ui *RootUI) updateLinkItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*LinkRow)
	if !ok {
		return
	}

	links := ui.service.State().Links()
	if id < 0 || id >= len(links) {
		return
	}
	row.SetLink(links[id])
}

// onFollowLink loads a sidebar link in the app itself
func (ui *RootUI) onFollowLink(href string) {
	target := ui.resolveLink(href)
	if target == "" {
		return
	}
	ui.urlEntry.SetText(target)
	ui.fetchCmd.Execute()
}

// onOpenExternal hands a sidebar link to the OS default browser
func (ui *RootUI) onOpenExternal(href string) {
	target := ui.resolveLink(href)
	if target == "" {
		return
	}
	if err := platform.OpenInSystemBrowser(target); err != nil {
		log.Printf("open in system browser failed: %v", err)
	}
}

// onCopyLink puts a sidebar link on the clipboard
func (ui *RootUI) onCopyLink(href string) {
	target := ui.resolveLink(href)
	if target == "" {
		target = href
	}
	ui.window.Clipboard().SetContent(target)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyLinkCopied)), ui.window.Canvas())
}

// resolveLink resolves a possibly relative href against the current address
func (ui *RootUI) resolveLink(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	base, err := url.Parse(ui.service.State().Address())
	if err != nil || base.Host == "" {
		return ref.String()
	}

	return base.ResolveReference(ref).String()
}

// onToggleSidebar flips the link panel between its fixed width and hidden
func (ui *RootUI) onToggleSidebar() {
	if ui.sidebar.Visible() {
		ui.sidebar.Hide()
	} else {
		ui.sidebar.Show()
	}
	ui.window.Content().Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// onSettingsSaved re-applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	log.Printf("settings saved, language=%s timeout=%s",
		ui.settings.GetLanguage(), ui.settings.GetRequestTimeout())
}
