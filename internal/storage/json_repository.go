package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tasktick/tasktick/internal/model"
)

// JSONRepository keeps the state in a single JSON document at a fixed path,
// rewritten in full after every mutation.
type JSONRepository struct {
	path  string
	idgen func() string
}

// NewJSONRepository returns a repository backed by the file at path. idgen
// mints runtime identifiers for tasks as they come off disk.
func NewJSONRepository(path string, idgen func() string) *JSONRepository {
	return &JSONRepository{path: path, idgen: idgen}
}

// Path returns the backing file path.
func (r *JSONRepository) Path() string {
	return r.path
}

// Load reads the state document. A missing file or one that does not parse
// yields a fresh empty state rather than an error; no recovery of malformed
// content is attempted.
func (r *JSONRepository) Load(ctx context.Context) (model.AppState, error) {
	if err := ctx.Err(); err != nil {
		return model.AppState{}, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return model.NewState(), nil
	}
	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.NewState(), nil
	}
	return r.fromDocument(doc), nil
}

// Save serializes the state and overwrites the document. Failures are the
// caller's to report; they are never retried here.
func (r *JSONRepository) Save(ctx context.Context, state model.AppState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(toDocument(state), "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode state: %w", err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create state dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: write state: %w", err)
	}
	return nil
}

func toDocument(state model.AppState) stateDocument {
	doc := stateDocument{
		Tasks:       make([]taskDocument, len(state.Tasks)),
		NewTaskName: state.Draft,
	}
	for i, task := range state.Tasks {
		doc.Tasks[i] = taskDocument{Name: task.Name, Accumulated: task.Accumulated}
	}
	if state.SelectedID != "" {
		if idx := state.IndexOf(state.SelectedID); idx >= 0 {
			doc.Selected = &idx
		}
	}
	return doc
}

func (r *JSONRepository) fromDocument(doc stateDocument) model.AppState {
	state := model.NewState()
	state.Draft = doc.NewTaskName
	state.Tasks = make([]model.Task, len(doc.Tasks))
	for i, task := range doc.Tasks {
		state.Tasks[i] = model.Task{
			ID:          r.idgen(),
			Name:        task.Name,
			Accumulated: task.Accumulated,
		}
	}
	// A selection index outside the list (a stale pointer from an older
	// writer) degrades to no selection.
	if doc.Selected != nil && *doc.Selected >= 0 && *doc.Selected < len(state.Tasks) {
		state.SelectedID = state.Tasks[*doc.Selected].ID
	}
	return state
}
