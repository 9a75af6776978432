package main

import (
	"TaskTracker/internal/config"
	"TaskTracker/internal/storage"
	"TaskTracker/internal/ui"

	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal(err)
	}
	cfg := configManager.GetConfig()

	// Validate has already accepted the level.
	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetLevel(level)
	log.WithField("config", configManager.Path()).Debug("config loaded")

	db, err := storage.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer db.Close()

	myApp := app.NewWithID("io.tasktracker.desktop")

	mainWindow := ui.NewMainWindow(myApp, configManager, db)
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))
	mainWindow.Show()
}
