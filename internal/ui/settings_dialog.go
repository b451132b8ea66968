package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pagepeek/pagepeek/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	homeAddressEntry  *widget.Entry
	timeoutEntry      *widget.Entry
	showLoadingCheck  *widget.Check
	sidebarWidthEntry *widget.Entry
	maxBodyEntry      *widget.Entry
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved fires after a
// confirmed save so the caller can re-apply settings to running services.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.homeAddressEntry = widget.NewEntry()
	sd.homeAddressEntry.SetPlaceHolder(config.DefaultHomeAddress)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-300")

	sd.showLoadingCheck = widget.NewCheck(sd.localization.GetText(KeyShowLoading), nil)

	sd.sidebarWidthEntry = widget.NewEntry()
	sd.sidebarWidthEntry.SetPlaceHolder("120-600")

	sd.maxBodyEntry = widget.NewEntry()
	sd.maxBodyEntry.SetPlaceHolder("1-100")

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyHomeAddress)+":"),
		sd.homeAddressEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		sd.showLoadingCheck,

		widget.NewLabel(sd.localization.GetText(KeySidebarWidth)+":"),
		sd.sidebarWidthEntry,

		widget.NewLabel(sd.localization.GetText(KeyMaxBodySize)+":"),
		sd.maxBodyEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.homeAddressEntry.SetText(sd.settings.GetHomeAddress())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.showLoadingCheck.SetChecked(sd.settings.GetShowLoadingStatus())
	sd.sidebarWidthEntry.SetText(strconv.Itoa(int(sd.settings.GetSidebarWidth())))
	sd.maxBodyEntry.SetText(strconv.FormatInt(sd.settings.GetMaxBodySize()/(1024*1024), 10))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.homeAddressEntry.Text != "" {
		sd.settings.SetHomeAddress(sd.homeAddressEntry.Text)
	}

	if secs, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeoutSeconds(secs)
	}

	sd.settings.SetShowLoadingStatus(sd.showLoadingCheck.Checked)

	if width, err := strconv.Atoi(sd.sidebarWidthEntry.Text); err == nil {
		sd.settings.SetSidebarWidth(width)
	}

	if mb, err := strconv.Atoi(sd.maxBodyEntry.Text); err == nil {
		sd.settings.SetMaxBodySizeMB(mb)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved), sd.window)
}
