package ui

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
	"time"

	"TaskTracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"
)

// TaskStore is the storage the task view reads from and writes to.
type TaskStore interface {
	ListTasks() ([]*models.Task, error)
	InsertTask(title, category, dueDate string) (int64, error)
	MarkDone(ids ...int64) error
	DeleteTask(ids ...int64) error
	DeleteAllTasks() error
	GetTaskStats() (*models.TaskStats, error)
}

const (
	colID = iota
	colTitle
	colCategory
	colDueDate
	colStatus
	columnCount
)

var columnTitles = [columnCount]string{"ID", "Title", "Category", "Due Date", "Status"}

const (
	lightModeLabel = "🌞 Light Mode"
	darkModeLabel  = "🌙 Dark Mode"
)

// TaskView is the input row, the action buttons and the task table.
type TaskView struct {
	store  TaskStore
	prompt Prompter
	themer *Themer

	tasks    []*models.Task
	selected map[int64]bool

	titleEntry    *widget.Entry
	categoryEntry *widget.Entry
	dueEntry      *widget.DateEntry

	addBtn       *widget.Button
	doneBtn      *widget.Button
	deleteBtn    *widget.Button
	deleteAllBtn *widget.Button
	themeBtn     *widget.Button

	table     *widget.Table
	stats     *StatsView
	container *fyne.Container

	// OnFatal handles storage failures; the default logs and exits.
	OnFatal func(error)
	// OnThemeChanged is called after the theme toggle with the new mode.
	OnThemeChanged func(darkMode bool)
}

func NewTaskView(store TaskStore, prompt Prompter, themer *Themer) *TaskView {
	v := &TaskView{
		store:    store,
		prompt:   prompt,
		themer:   themer,
		selected: make(map[int64]bool),
		OnFatal: func(err error) {
			log.WithError(err).Fatal("task store failure")
		},
	}
	v.setup()
	v.reload()
	return v
}

func (v *TaskView) setup() {
	v.titleEntry = widget.NewEntry()
	v.titleEntry.SetPlaceHolder("Add a new task...")
	v.titleEntry.OnSubmitted = func(string) { v.addTask() }

	v.categoryEntry = widget.NewEntry()
	v.categoryEntry.SetPlaceHolder("Category")

	v.dueEntry = widget.NewDateEntry()
	today := time.Now()
	v.dueEntry.SetDate(&today)

	inputRow := container.NewGridWithColumns(6,
		v.label("Title:"), v.titleEntry,
		v.label("Category:"), v.categoryEntry,
		v.label("Due Date:"), v.dueEntry,
	)

	v.addBtn = widget.NewButtonWithIcon("Add Task", theme.ContentAddIcon(), v.addTask)
	v.doneBtn = widget.NewButtonWithIcon("Mark Done", theme.ConfirmIcon(), v.markDone)
	v.deleteBtn = widget.NewButtonWithIcon("Delete Task", theme.CancelIcon(), v.deleteSelected)
	v.deleteAllBtn = widget.NewButtonWithIcon("Delete All", theme.DeleteIcon(), v.deleteAll)
	v.deleteAllBtn.Importance = widget.DangerImportance
	buttonRow := container.NewGridWithColumns(4, v.addBtn, v.doneBtn, v.deleteBtn, v.deleteAllBtn)

	v.themeBtn = widget.NewButton(themeButtonLabel(v.themer.DarkMode()), v.toggleTheme)

	v.table = widget.NewTable(
		func() (int, int) {
			return len(v.tasks) + 1, columnCount
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Alignment = fyne.TextAlignCenter
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		v.updateCell,
	)
	for col := 0; col < columnCount; col++ {
		width := float32(120)
		if col == colTitle {
			width = 220
		}
		v.table.SetColumnWidth(col, width)
	}
	v.table.OnSelected = func(id widget.TableCellID) {
		v.table.Unselect(id)
		if id.Row == 0 || id.Row > len(v.tasks) {
			return
		}
		v.toggleSelection(v.tasks[id.Row-1].ID)
	}

	v.stats = NewStatsView(v.themer)

	top := container.NewVBox(
		container.NewStack(v.themer.Background(canvas.NewRectangle(color.Transparent)), container.NewPadded(inputRow)),
		container.NewStack(v.themer.Background(canvas.NewRectangle(color.Transparent)), container.NewPadded(buttonRow)),
		container.NewCenter(v.themeBtn),
	)
	tableArea := container.NewStack(
		v.themer.Surface(canvas.NewRectangle(color.Transparent)),
		container.NewPadded(v.table),
	)
	v.container = container.NewBorder(top, v.stats.container, nil, nil, tableArea)
}

func (v *TaskView) label(text string) *canvas.Text {
	t := v.themer.Text(canvas.NewText(text, v.themer.Palette().Text))
	t.Alignment = fyne.TextAlignTrailing
	return t
}

func (v *TaskView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)
	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Importance = widget.MediumImportance
		label.SetText(columnTitles[id.Col])
		return
	}
	if id.Row > len(v.tasks) {
		label.SetText("")
		return
	}

	task := v.tasks[id.Row-1]
	label.TextStyle = fyne.TextStyle{}
	label.Importance = widget.MediumImportance
	if v.selected[task.ID] {
		label.Importance = widget.HighImportance
	}
	label.SetText(cellText(task, id.Col))
}

func cellText(task *models.Task, col int) string {
	switch col {
	case colID:
		return strconv.FormatInt(task.ID, 10)
	case colTitle:
		return task.Title
	case colCategory:
		return task.Category
	case colDueDate:
		return task.DueDate
	case colStatus:
		return task.StatusGlyph()
	}
	return ""
}

func themeButtonLabel(darkMode bool) string {
	if darkMode {
		return lightModeLabel
	}
	return darkModeLabel
}

func (v *TaskView) Container() *fyne.Container {
	return v.container
}

// reload refetches every task and drops selections whose rows are gone.
func (v *TaskView) reload() {
	tasks, err := v.store.ListTasks()
	if err != nil {
		v.OnFatal(err)
		return
	}
	v.tasks = tasks

	present := make(map[int64]bool, len(tasks))
	for _, task := range tasks {
		present[task.ID] = true
	}
	for id := range v.selected {
		if !present[id] {
			delete(v.selected, id)
		}
	}

	stats, err := v.store.GetTaskStats()
	if err != nil {
		v.OnFatal(err)
		return
	}
	v.stats.Update(stats)
	v.table.Refresh()
}

func (v *TaskView) toggleSelection(id int64) {
	if v.selected[id] {
		delete(v.selected, id)
	} else {
		v.selected[id] = true
	}
	v.table.Refresh()
}

// selectedIDs lists the selected tasks in table order.
func (v *TaskView) selectedIDs() []int64 {
	var ids []int64
	for _, task := range v.tasks {
		if v.selected[task.ID] {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

func (v *TaskView) addTask() {
	if _, err := models.NormalizeTitle(v.titleEntry.Text); errors.Is(err, models.ErrEmptyTitle) {
		v.prompt.Warn("Input Error", "Task Title cannot be empty.")
		return
	}

	var dueDate string
	if v.dueEntry.Date != nil {
		dueDate = v.dueEntry.Date.Format(models.DateLayout)
	}
	category := strings.TrimSpace(v.categoryEntry.Text)

	id, err := v.store.InsertTask(v.titleEntry.Text, category, dueDate)
	if err != nil {
		v.OnFatal(err)
		return
	}
	log.WithField("task_id", id).Info("task added")

	v.titleEntry.SetText("")
	v.reload()
}

func (v *TaskView) markDone() {
	ids := v.selectedIDs()
	if len(ids) == 0 {
		v.prompt.Inform("Info", "Select a task to mark done.")
		return
	}
	if err := v.store.MarkDone(ids...); err != nil {
		v.OnFatal(err)
		return
	}
	log.WithField("count", len(ids)).Info("tasks marked done")

	clear(v.selected)
	v.reload()
}

func (v *TaskView) deleteSelected() {
	ids := v.selectedIDs()
	if len(ids) == 0 {
		v.prompt.Inform("Error", "No Task Selected.")
		return
	}
	if err := v.store.DeleteTask(ids...); err != nil {
		v.OnFatal(err)
		return
	}
	log.WithField("count", len(ids)).Info("tasks deleted")

	clear(v.selected)
	v.reload()
}

func (v *TaskView) deleteAll() {
	v.prompt.Confirm("Delete All", "Are you sure?", func(ok bool) {
		if !ok {
			return
		}
		if err := v.store.DeleteAllTasks(); err != nil {
			v.OnFatal(err)
			return
		}
		clear(v.selected)
		v.reload()
	})
}

func (v *TaskView) toggleTheme() {
	darkMode := v.themer.Toggle()
	v.themeBtn.SetText(themeButtonLabel(darkMode))
	v.table.Refresh()
	if v.OnThemeChanged != nil {
		v.OnThemeChanged(darkMode)
	}
}
