package model

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority канонизирует приоритет, ok=false для неизвестных значений
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, true
	}
	return "", false
}

// Rank is the sort weight: high < medium < low, anything else trails.
func (p Priority) Rank() int {
	switch Priority(strings.ToLower(string(p))) {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type ColorTag string

const (
	ColorRed    ColorTag = "red"
	ColorYellow ColorTag = "yellow"
	ColorGreen  ColorTag = "green"
	ColorGray   ColorTag = "gray"
)

// ColorFor is the only place a color tag is derived from a priority.
func ColorFor(p Priority) ColorTag {
	switch Priority(strings.ToLower(string(p))) {
	case PriorityHigh:
		return ColorRed
	case PriorityMedium:
		return ColorYellow
	case PriorityLow:
		return ColorGreen
	}
	return ColorGray
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Priority    Priority  `json:"priority"`
	ColorTag    ColorTag  `json:"color_tag"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SetPriority keeps ColorTag in step with Priority.
func (t *Task) SetPriority(p Priority) {
	t.Priority = p
	t.ColorTag = ColorFor(p)
}

// CreateTaskInput - payload формы создания задачи
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}

// TaskPatch - частичное обновление: nil или пустая строка означают "без изменений"
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

type TaskFilter struct {
	Completed *bool
}

func (f TaskFilter) Match(t Task) bool {
	return f.Completed == nil || *f.Completed == t.Completed
}
