package storage

// stateDocument is the on-disk shape of the state file. Task IDs and every
// other runtime-only field stay out of it; selection is stored positionally.
type stateDocument struct {
	Tasks       []taskDocument `json:"tasks"`
	Selected    *int           `json:"selected"`
	NewTaskName string         `json:"new_task_name"`
}

type taskDocument struct {
	Name        string `json:"name"`
	Accumulated uint64 `json:"accumulated"`
}
