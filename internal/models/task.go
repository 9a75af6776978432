package models

import (
	"errors"
	"strings"
)

// DateLayout is the ISO-8601 form due dates are stored in.
const DateLayout = "2006-01-02"

const (
	GlyphDone    = "✅"
	GlyphPending = "❌"
)

var ErrEmptyTitle = errors.New("task title cannot be empty")

type Task struct {
	ID       int64
	Title    string
	Category string
	DueDate  string
	Done     bool
}

// StatusGlyph is what the status column shows for the task.
func (t *Task) StatusGlyph() string {
	if t.Done {
		return GlyphDone
	}
	return GlyphPending
}

// NormalizeTitle trims the title and rejects it if nothing is left.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}
