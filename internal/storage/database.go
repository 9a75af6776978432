package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"TaskTracker/internal/config"
	"TaskTracker/internal/models"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type Database struct {
	db *sql.DB
}

// NewDatabase opens (creating if needed) the task store described by cfg and
// makes sure the schema exists.
func NewDatabase(cfg config.DatabaseConfig) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
	}
	// Keeps every statement on the one connection the single UI thread uses.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Path, err)
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}

	log.WithFields(log.Fields{"path": cfg.Path, "driver": cfg.Driver}).Info("task store ready")
	return database, nil
}

func (d *Database) initTables() error {
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            category TEXT,
            due_date TEXT,
            done INTEGER DEFAULT 0
        )
    `)
	if err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// ListTasks returns every task in insertion order.
func (d *Database) ListTasks() ([]*models.Task, error) {
	rows, err := d.db.Query(`
        SELECT id, title, category, due_date, done
        FROM tasks
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var (
			task     models.Task
			category sql.NullString
			dueDate  sql.NullString
		)
		if err := rows.Scan(&task.ID, &task.Title, &category, &dueDate, &task.Done); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.Category = category.String
		task.DueDate = dueDate.String
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// InsertTask stores a new pending task and returns its id. Empty category and
// due date are stored as NULL.
func (d *Database) InsertTask(title, category, dueDate string) (int64, error) {
	title, err := models.NormalizeTitle(title)
	if err != nil {
		return 0, err
	}

	result, err := d.db.Exec(
		"INSERT INTO tasks (title, category, due_date) VALUES (?, ?, ?)",
		title, nullable(category), nullable(dueDate),
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	log.WithField("task_id", id).Debug("task added")
	return id, nil
}

// MarkDone flags each task as done. Unknown ids are ignored.
func (d *Database) MarkDone(ids ...int64) error {
	for _, id := range ids {
		if _, err := d.db.Exec("UPDATE tasks SET done = 1 WHERE id = ?", id); err != nil {
			return fmt.Errorf("mark task %d done: %w", id, err)
		}
	}
	log.WithField("count", len(ids)).Debug("tasks marked done")
	return nil
}

// DeleteTask removes each task. Unknown ids are ignored.
func (d *Database) DeleteTask(ids ...int64) error {
	for _, id := range ids {
		if _, err := d.db.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
	}
	log.WithField("count", len(ids)).Debug("tasks deleted")
	return nil
}

func (d *Database) DeleteAllTasks() error {
	result, err := d.db.Exec("DELETE FROM tasks")
	if err != nil {
		return fmt.Errorf("delete all tasks: %w", err)
	}
	n, _ := result.RowsAffected()
	log.WithField("count", n).Info("all tasks deleted")
	return nil
}

func (d *Database) GetTaskStats() (*models.TaskStats, error) {
	stats := &models.TaskStats{}

	err := d.db.QueryRow(`
        SELECT
            COUNT(*) as total,
            COALESCE(SUM(CASE WHEN done = 1 THEN 1 ELSE 0 END), 0) as completed
        FROM tasks
    `).Scan(&stats.Total, &stats.Completed)
	if err != nil {
		return nil, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
