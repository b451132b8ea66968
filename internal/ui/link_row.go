package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pagepeek/pagepeek/internal/model"
)

// LinkRow represents a compact row in the link sidebar: the anchor text on
// top, the href underneath, and actions to follow the link in-app, open it
// in the system browser, or copy it.
type LinkRow struct {
	widget.BaseWidget

	link         model.ParsedLink
	localization *Localization

	// UI components
	textLabel *widget.Label
	hrefLabel *widget.Label

	// Action buttons
	externalBtn *widget.Button
	copyBtn     *widget.Button

	// Callbacks
	onFollow   func(href string)
	onExternal func(href string)
	onCopy     func(href string)
}

// NewLinkRow creates a new link row widget
func NewLinkRow(localization *Localization) *LinkRow {
	lr := &LinkRow{
		localization: localization,
	}
	lr.ExtendBaseWidget(lr)
	lr.createUI()
	return lr
}

// SetCallbacks sets the action callbacks
func (lr *LinkRow) SetCallbacks(
	onFollow func(href string),
	onExternal func(href string),
	onCopy func(href string),
) {
	lr.onFollow = onFollow
	lr.onExternal = onExternal
	lr.onCopy = onCopy
}

// SetLink updates the row with new link data
func (lr *LinkRow) SetLink(link model.ParsedLink) {
	lr.link = link
	lr.textLabel.SetText(link.Text)
	lr.hrefLabel.SetText(link.Href)
	lr.Refresh()
}

// createUI creates the UI components
func (lr *LinkRow) createUI() {
	lr.textLabel = widget.NewLabel("")
	lr.textLabel.TextStyle = fyne.TextStyle{Bold: true}
	lr.textLabel.Truncation = fyne.TextTruncateEllipsis
	lr.textLabel.Alignment = fyne.TextAlignLeading

	lr.hrefLabel = widget.NewLabel("")
	lr.hrefLabel.TextStyle = fyne.TextStyle{Monospace: true}
	lr.hrefLabel.Truncation = fyne.TextTruncateEllipsis

	lr.externalBtn = widget.NewButton(IconExternal, func() {
		if lr.onExternal != nil {
			lr.onExternal(lr.link.Href)
		}
	})
	lr.externalBtn.Importance = widget.LowImportance

	lr.copyBtn = widget.NewButton(IconCopy, func() {
		if lr.onCopy != nil {
			lr.onCopy(lr.link.Href)
		}
	})
	lr.copyBtn.Importance = widget.LowImportance
}

// Tapped follows the link inside the app
func (lr *LinkRow) Tapped(_ *fyne.PointEvent) {
	if lr.onFollow != nil {
		lr.onFollow(lr.link.Href)
	}
}

// CreateRenderer builds the row layout
func (lr *LinkRow) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewVBox(lr.textLabel, lr.hrefLabel)
	actions := container.NewHBox(lr.externalBtn, lr.copyBtn)
	row := container.NewBorder(nil, nil, nil, actions, labels)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows tappable even for short labels
func (lr *LinkRow) MinSize() fyne.Size {
	min := lr.BaseWidget.MinSize()
	if min.Width < LinkRowMinWidth {
		min.Width = LinkRowMinWidth
	}
	if min.Height < LinkRowMinHeight {
		min.Height = LinkRowMinHeight
	}
	return min
}
