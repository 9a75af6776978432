package ui

import (
	"fmt"

	"TaskTracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// StatsView is the one-line summary under the task table.
type StatsView struct {
	container *fyne.Container
	summary   *canvas.Text
}

func NewStatsView(themer *Themer) *StatsView {
	sv := &StatsView{
		summary: themer.Text(canvas.NewText("", themer.Palette().Text)),
	}
	sv.summary.Alignment = fyne.TextAlignCenter
	sv.summary.TextStyle = fyne.TextStyle{Italic: true}
	sv.container = container.NewPadded(sv.summary)
	return sv
}

func (sv *StatsView) Update(stats *models.TaskStats) {
	sv.summary.Text = formatStats(stats)
	sv.summary.Refresh()
}

func (sv *StatsView) Text() string {
	return sv.summary.Text
}

func formatStats(stats *models.TaskStats) string {
	return fmt.Sprintf("%d tasks · %d done · %.0f%% complete",
		stats.Total, stats.Completed, stats.CompletionRate())
}
