package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTask = errors.New("model: invalid task")

// Task is a named timed activity. Accumulated is whole seconds of accrued
// time and only ever grows, one second per tick while the task is selected.
// ID is runtime identity; it is not written to the state file.
type Task struct {
	ID          string
	Name        string
	Accumulated uint64
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTask)
	}
	return nil
}

// FormatClock renders whole seconds as a zero-padded HH:MM:SS clock. The
// hours field is unbounded and simply widens past 99 hours.
func FormatClock(totalSeconds uint64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
