package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"

	"github.com/tasktick/tasktick/internal/config"
	"github.com/tasktick/tasktick/internal/storage"
	"github.com/tasktick/tasktick/internal/store"
)

type GlobalKeyMap struct {
	Quit    string
	Remove  string
	Palette string
	Help    string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type PaletteState struct {
	Active bool
}

// Model is the bubbletea model: the task store, its repository, and the UI
// chrome around them. All mutation funnels through Update on the program's
// event loop; the tick chain is the only non-keyboard source of change.
type Model struct {
	Service  *store.Service
	Repo     storage.Repository
	Logger   *log.Logger
	Keys     GlobalKeyMap
	Interval time.Duration

	Cursor       int
	InputFocused bool
	Palette      PaletteState
	HelpVisible  bool
	Status       StatusBar
	Quitting     bool

	// tickSeq guards against stale timer messages: only a TickMsg carrying
	// the current sequence is honored, and every honored tick bumps it.
	tickSeq int

	draftInput   textinput.Model
	commandInput textinput.Model
	list         viewport.Model
}

func NewModel(svc *store.Service, repo storage.Repository, logger *log.Logger, cfg config.Config) Model {
	draft := textinput.New()
	draft.Placeholder = "new task name"
	draft.CharLimit = 120
	draft.SetValue(svc.Draft())
	draft.Focus()

	command := textinput.New()
	command.Prompt = "/"
	command.Placeholder = "select <name>"
	command.CharLimit = 200

	list := viewport.New(72, 10)

	return Model{
		Service:  svc,
		Repo:     repo,
		Logger:   logger,
		Interval: time.Duration(cfg.Timer.IntervalSeconds) * time.Second,
		Keys: GlobalKeyMap{
			Quit:    cfg.Keys.Quit,
			Remove:  cfg.Keys.Remove,
			Palette: cfg.Keys.Palette,
			Help:    cfg.Keys.Help,
		},
		InputFocused: true,
		draftInput:   draft,
		commandInput: command,
		list:         list,
	}
}

// persist writes the current state through the repository. A failure is
// reported on the status bar and in the log, and the triggering operation is
// otherwise treated as successful; there are no retries. Callers set their
// success status before persisting so a write error wins.
func (m *Model) persist() {
	if err := m.Repo.Save(context.Background(), m.Service.State()); err != nil {
		if m.Logger != nil {
			m.Logger.Error("failed to save state", "err", err)
		}
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
	}
}

func (m *Model) clampCursor() {
	count := len(m.Service.Tasks())
	if count == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
