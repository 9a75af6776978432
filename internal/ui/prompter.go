package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Prompter shows the modal messages the task actions need.
type Prompter interface {
	Warn(title, message string)
	Inform(title, message string)
	Confirm(title, message string, onAnswer func(bool))
}

type dialogPrompter struct {
	window fyne.Window
}

func NewDialogPrompter(w fyne.Window) Prompter {
	return &dialogPrompter{window: w}
}

func (p *dialogPrompter) Warn(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.NewCustom(title, "OK", content, p.window).Show()
}

func (p *dialogPrompter) Inform(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}

func (p *dialogPrompter) Confirm(title, message string, onAnswer func(bool)) {
	dialog.ShowConfirm(title, message, onAnswer, p.window)
}
