package ui

import (
	"TaskTracker/internal/config"

	"fyne.io/fyne/v2"
	log "github.com/sirupsen/logrus"
)

type MainWindow struct {
	window        fyne.Window
	themer        *Themer
	tasks         *TaskView
	configManager *config.Manager
}

func NewMainWindow(app fyne.App, configManager *config.Manager, store TaskStore) *MainWindow {
	cfg := configManager.GetConfig()

	w := &MainWindow{
		window:        app.NewWindow(cfg.App.Name),
		configManager: configManager,
		themer:        NewThemer(app, DarkPalette, LightPalette, cfg.Theme.DarkMode),
	}
	w.tasks = NewTaskView(store, NewDialogPrompter(w.window), w.themer)
	w.tasks.OnThemeChanged = w.saveTheme
	w.setup()
	return w
}

func (w *MainWindow) setup() {
	w.themer.Apply()
	w.window.SetContent(w.tasks.Container())
	w.window.SetFixedSize(true)
}

func (w *MainWindow) saveTheme(darkMode bool) {
	theme := w.configManager.GetConfig().Theme
	theme.DarkMode = darkMode
	if err := w.configManager.UpdateThemeConfig(theme); err != nil {
		log.WithError(err).Warn("could not save theme setting")
	}
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
