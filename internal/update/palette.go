package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasktick/tasktick/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")

		cmd, err := commands.Parse(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		result, err := commands.Execute(cmd, m.paletteHandlers())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		// Every successful palette command mutated state: status first,
		// then persist, so a write failure overrides the success text.
		m.Status = StatusBar{Text: result.Message}
		m.persist()
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// paletteHandlers binds the command grammar to the store. Selection by name
// is the palette's reason to exist: it is how a task is picked without a
// stable row reference.
func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		Select: func(args commands.SelectArgs) (commands.Result, error) {
			if !m.Service.SelectByName(args.Name) {
				return commands.Result{}, fmt.Errorf("no task named %q", args.Name)
			}
			return commands.Result{Message: fmt.Sprintf("timing %q", args.Name)}, nil
		},
		Add: func(args commands.AddArgs) (commands.Result, error) {
			task, err := m.Service.AddTask(args.Name)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added %q", task.Name)}, nil
		},
		Remove: func() (commands.Result, error) {
			removed, err := m.Service.RemoveSelected()
			if err != nil {
				return commands.Result{}, err
			}
			m.clampCursor()
			return commands.Result{Message: fmt.Sprintf("removed %q", removed.Name)}, nil
		},
		Rename: func(args commands.RenameArgs) (commands.Result, error) {
			task, err := m.Service.Rename(args.Name)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("renamed to %q", task.Name)}, nil
		},
		Clear: func() (commands.Result, error) {
			m.Service.ClearSelection()
			return commands.Result{Message: "clock stopped"}, nil
		},
	}
}
