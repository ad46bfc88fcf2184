package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tasktick/tasktick/internal/model"
)

func testIDGen() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestService() *Service {
	return NewService(model.NewState(), testIDGen())
}

func TestAddTask(t *testing.T) {
	svc := newTestService()
	svc.SetDraft("Write Report")

	task, err := svc.AddTask("Write Report")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if task.Accumulated != 0 {
		t.Fatalf("expected zero accrued time, got %d", task.Accumulated)
	}
	if task.ID == "" {
		t.Fatal("expected task id assigned")
	}
	if got := len(svc.Tasks()); got != 1 {
		t.Fatalf("expected 1 task, got %d", got)
	}
	if svc.Draft() != "" {
		t.Fatalf("expected draft cleared, got %q", svc.Draft())
	}
}

func TestAddTaskRejectsEmptyNames(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := svc.AddTask(name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("name %q: expected ErrEmptyName, got %v", name, err)
		}
	}
	if got := len(svc.Tasks()); got != 0 {
		t.Fatalf("expected no tasks, got %d", got)
	}
}

func TestAddTaskKeepsNameVerbatim(t *testing.T) {
	svc := newTestService()
	task, err := svc.AddTask("  padded  ")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if task.Name != "  padded  " {
		t.Fatalf("expected untrimmed name, got %q", task.Name)
	}
}

func TestRemoveSelected(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	svc.AddTask("b")
	if !svc.SelectByName("b") {
		t.Fatal("expected selection handled")
	}

	removed, err := svc.RemoveSelected()
	if err != nil {
		t.Fatalf("remove selected: %v", err)
	}
	if removed.Name != "b" {
		t.Fatalf("expected b removed, got %q", removed.Name)
	}
	if got := len(svc.Tasks()); got != 1 {
		t.Fatalf("expected 1 task, got %d", got)
	}
	if _, ok := svc.SelectedTask(); ok {
		t.Fatal("expected selection cleared")
	}
}

func TestRemoveSelectedWithoutSelection(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	if _, err := svc.RemoveSelected(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if got := len(svc.Tasks()); got != 1 {
		t.Fatalf("expected task count unchanged, got %d", got)
	}
}

func TestSelectByName(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	svc.AddTask("b")

	if !svc.SelectByName("b") {
		t.Fatal("expected handled")
	}
	if idx := svc.SelectedIndex(); idx != 1 {
		t.Fatalf("expected selection at index 1, got %d", idx)
	}

	if svc.SelectByName("missing") {
		t.Fatal("expected unhandled for unknown name")
	}
	if idx := svc.SelectedIndex(); idx != 1 {
		t.Fatalf("expected selection unchanged, got index %d", idx)
	}
}

func TestSelectByNameBindsFirstDuplicate(t *testing.T) {
	svc := newTestService()
	first, _ := svc.AddTask("dup")
	svc.AddTask("dup")

	if !svc.SelectByName("dup") {
		t.Fatal("expected handled")
	}
	selected, ok := svc.SelectedTask()
	if !ok || selected.ID != first.ID {
		t.Fatalf("expected first duplicate selected, got %+v", selected)
	}
}

func TestSelectionTracksTaskAcrossEarlierRemoval(t *testing.T) {
	state := model.AppState{Tasks: []model.Task{
		{ID: "t1", Name: "a"},
		{ID: "t2", Name: "b"},
		{ID: "t3", Name: "c"},
	}}
	svc := NewService(state, testIDGen())
	svc.SelectByName("a")
	svc.RemoveSelected()

	// Selecting by ID still resolves to the same task after the list shifted.
	if !svc.SelectByID("t3") {
		t.Fatal("expected t3 selectable")
	}
	svc.Tick()
	selected, ok := svc.SelectedTask()
	if !ok || selected.Name != "c" || selected.Accumulated != 1 {
		t.Fatalf("expected c with 1s accrued, got %+v", selected)
	}
	if idx := svc.SelectedIndex(); idx != 1 {
		t.Fatalf("expected selection at shifted index 1, got %d", idx)
	}
}

func TestTickIncrementsOnlySelected(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	svc.AddTask("b")
	svc.SelectByName("b")

	if !svc.Tick() {
		t.Fatal("expected tick to increment")
	}
	tasks := svc.Tasks()
	if tasks[0].Accumulated != 0 {
		t.Fatalf("expected a untouched, got %d", tasks[0].Accumulated)
	}
	if tasks[1].Accumulated != 1 {
		t.Fatalf("expected b at 1, got %d", tasks[1].Accumulated)
	}
}

func TestTickWithoutSelection(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	if svc.Tick() {
		t.Fatal("expected tick no-op without selection")
	}
	if got := svc.Tasks()[0].Accumulated; got != 0 {
		t.Fatalf("expected zero accrued time, got %d", got)
	}
}

func TestClearSelection(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	svc.SelectByName("a")
	svc.ClearSelection()
	if _, ok := svc.SelectedTask(); ok {
		t.Fatal("expected no selection")
	}
}

func TestRename(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	svc.SelectByName("a")
	svc.Tick()

	renamed, err := svc.Rename("alpha")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "alpha" || renamed.Accumulated != 1 {
		t.Fatalf("expected renamed task to keep accrued time, got %+v", renamed)
	}

	if _, err := svc.Rename("  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	svc.ClearSelection()
	if _, err := svc.Rename("beta"); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestNewServiceDropsUnresolvableSelection(t *testing.T) {
	state := model.AppState{
		Tasks:      []model.Task{{ID: "t1", Name: "a"}},
		SelectedID: "gone",
	}
	svc := NewService(state, testIDGen())
	if _, ok := svc.SelectedTask(); ok {
		t.Fatal("expected stale selection dropped")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	svc := newTestService()
	svc.AddTask("a")
	snapshot := svc.State()
	snapshot.Tasks[0].Name = "mutated"
	if svc.Tasks()[0].Name != "a" {
		t.Fatal("expected service state isolated from returned copy")
	}
}
