package model

// AppState is the single authoritative application state: the ordered task
// list, the identifier of the task currently accruing time (empty for none),
// and the in-progress text of the "new task" input field. Selection is held
// by ID rather than index so removing an earlier task can never shift the
// selection onto a different task.
type AppState struct {
	Tasks      []Task
	SelectedID string
	Draft      string
}

// NewState returns an initialized empty state.
func NewState() AppState {
	return AppState{Tasks: []Task{}}
}

// SelectedTask resolves the current selection, reporting false when nothing
// is selected or the selected ID no longer names a task.
func (s AppState) SelectedTask() (Task, bool) {
	if s.SelectedID == "" {
		return Task{}, false
	}
	idx := s.IndexOf(s.SelectedID)
	if idx < 0 {
		return Task{}, false
	}
	return s.Tasks[idx], true
}

// IndexOf returns the position of the task with the given ID, or -1.
func (s AppState) IndexOf(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose task slice does not alias the receiver's.
func (s AppState) Clone() AppState {
	out := s
	out.Tasks = make([]Task, len(s.Tasks))
	copy(out.Tasks, s.Tasks)
	return out
}

// Normalize repairs an inconsistent state: nil task slice becomes empty and a
// selection that no longer resolves is dropped.
func Normalize(s AppState) AppState {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.SelectedID != "" && s.IndexOf(s.SelectedID) < 0 {
		s.SelectedID = ""
	}
	return s
}
