package store

import (
	"errors"
	"strings"

	"github.com/tasktick/tasktick/internal/model"
)

var (
	ErrEmptyName    = errors.New("store: task name must not be empty")
	ErrNoSelection  = errors.New("store: no task selected")
	ErrTaskNotFound = errors.New("store: task not found")
)

// Service owns the in-memory application state and exposes every mutation the
// UI and the timer perform. All methods are total over the state; the only
// errors are the validation sentinels above. Persistence is the caller's
// concern: the update layer writes the state after each successful mutation.
type Service struct {
	state model.AppState
	idgen func() string
}

// NewService wraps the given state. idgen supplies identifiers for new tasks
// (production callers pass uuid.NewString).
func NewService(state model.AppState, idgen func() string) *Service {
	return &Service{state: model.Normalize(state), idgen: idgen}
}

// State returns a copy of the current state.
func (s *Service) State() model.AppState {
	return s.state.Clone()
}

// Tasks returns a copy of the task list in creation order.
func (s *Service) Tasks() []model.Task {
	out := make([]model.Task, len(s.state.Tasks))
	copy(out, s.state.Tasks)
	return out
}

// SelectedTask resolves the current selection.
func (s *Service) SelectedTask() (model.Task, bool) {
	return s.state.SelectedTask()
}

// SelectedIndex returns the position of the selected task, or -1.
func (s *Service) SelectedIndex() int {
	if s.state.SelectedID == "" {
		return -1
	}
	return s.state.IndexOf(s.state.SelectedID)
}

// Draft returns the in-progress new-task name.
func (s *Service) Draft() string {
	return s.state.Draft
}

// SetDraft records the input field's current text. The draft reaches disk
// with the next persisted mutation; updating it is not itself a mutation.
func (s *Service) SetDraft(text string) {
	s.state.Draft = text
}

// AddTask appends a task with zero accrued time and clears the draft. A name
// that trims to empty is rejected and leaves the state untouched. The name is
// stored as given, untrimmed.
func (s *Service) AddTask(name string) (model.Task, error) {
	if strings.TrimSpace(name) == "" {
		return model.Task{}, ErrEmptyName
	}
	task := model.Task{ID: s.idgen(), Name: name}
	s.state.Tasks = append(s.state.Tasks, task)
	s.state.Draft = ""
	return task, nil
}

// RemoveSelected removes the selected task and clears the selection.
func (s *Service) RemoveSelected() (model.Task, error) {
	idx := s.SelectedIndex()
	if idx < 0 {
		return model.Task{}, ErrNoSelection
	}
	removed := s.state.Tasks[idx]
	s.state.Tasks = append(s.state.Tasks[:idx], s.state.Tasks[idx+1:]...)
	s.state.SelectedID = ""
	return removed, nil
}

// SelectByName selects the first task whose name equals name exactly and
// reports whether the name was handled. An unknown name leaves the selection
// unchanged.
func (s *Service) SelectByName(name string) bool {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].Name == name {
			s.state.SelectedID = s.state.Tasks[i].ID
			return true
		}
	}
	return false
}

// SelectByID selects the task with the given identifier.
func (s *Service) SelectByID(id string) bool {
	if s.state.IndexOf(id) < 0 {
		return false
	}
	s.state.SelectedID = id
	return true
}

// ClearSelection stops time accrual without removing any task.
func (s *Service) ClearSelection() {
	s.state.SelectedID = ""
}

// Rename changes the selected task's name, keeping its accrued time.
func (s *Service) Rename(name string) (model.Task, error) {
	if strings.TrimSpace(name) == "" {
		return model.Task{}, ErrEmptyName
	}
	idx := s.SelectedIndex()
	if idx < 0 {
		return model.Task{}, ErrNoSelection
	}
	s.state.Tasks[idx].Name = name
	return s.state.Tasks[idx], nil
}

// Tick adds one second to the selected task and reports whether anything was
// incremented. With no live selection it is a no-op; the timer re-arms either
// way.
func (s *Service) Tick() bool {
	idx := s.SelectedIndex()
	if idx < 0 {
		return false
	}
	s.state.Tasks[idx].Accumulated++
	return true
}
