package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasktick/tasktick/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.armTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		width := typed.Width - 4
		if width < 20 {
			width = 20
		}
		height := typed.Height - 8
		if height < 3 {
			height = 3
		}
		m.list.Width = width
		m.list.Height = height
		return m, nil

	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.HelpVisible {
			return m.handleHelpKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.InputFocused {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)

	case TickMsg:
		return m.onTick(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.Help, "esc", "q":
		m.HelpVisible = false
	}
	return m
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.draftInput.Value()
		task, err := m.Service.AddTask(name)
		if err != nil {
			// Empty name: leave the draft alone, nothing to do.
			return m, nil
		}
		m.draftInput.SetValue("")
		m.Cursor = len(m.Service.Tasks()) - 1
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", task.Name)}
		m.persist()
		return m, nil
	case "tab", "esc", "down":
		m.InputFocused = false
		m.draftInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	m.Service.SetDraft(m.draftInput.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Service.Tasks())-1 {
			m.Cursor++
		}
		return m, nil
	case "enter", " ":
		tasks := m.Service.Tasks()
		if m.Cursor < 0 || m.Cursor >= len(tasks) {
			return m, nil
		}
		picked := tasks[m.Cursor]
		m.Service.SelectByID(picked.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("timing %q", picked.Name)}
		m.persist()
		return m, nil
	case m.Keys.Remove:
		removed, err := m.Service.RemoveSelected()
		if err != nil {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		m.clampCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("removed %q", removed.Name)}
		m.persist()
		return m, nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = true
		return m, nil
	case "tab", "i":
		m.InputFocused = true
		return m, m.draftInput.Focus()
	case "esc":
		if _, ok := m.Service.SelectedTask(); ok {
			m.Service.ClearSelection()
			m.Status = StatusBar{Text: "clock stopped"}
			m.persist()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	tasks := m.Service.Tasks()
	selIdx := m.Service.SelectedIndex()
	rows := make([]views.TaskRowData, len(tasks))
	for i, task := range tasks {
		rows[i] = views.TaskRowData{
			Name:        task.Name,
			Accumulated: task.Accumulated,
			Selected:    i == selIdx,
			UnderCursor: !m.InputFocused && !m.Palette.Active && i == m.Cursor,
		}
	}
	m.list.SetContent(views.RenderTaskRows(rows))

	overlay := ""
	switch {
	case m.HelpVisible:
		overlay = views.RenderHelp()
	case m.Palette.Active:
		overlay = m.commandInput.View()
	}

	return views.RenderApp(views.AppData{
		Header:     "Task Tracker",
		InputView:  m.draftInput.View(),
		ListView:   m.list.View(),
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Overlay:    overlay,
		Footer: fmt.Sprintf("[enter] add/select  [%s] remove  [%s] palette  [%s] help  [%s] quit",
			m.Keys.Remove, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
