package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The timer is a self-perpetuating single-shot chain: Init arms the first
// tick and every honored tick arms the next. There is no cancellation path;
// the chain runs for the life of the program, whether or not a task is
// selected.
func (m Model) armTick() tea.Cmd {
	return tickCmd(m.Interval, m.tickSeq)
}

func tickCmd(interval time.Duration, seq int) tea.Cmd {
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return TickMsg{Seq: seq} })
}

func (m Model) onTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq {
		return m, nil
	}
	m.tickSeq++
	if m.Service.Tick() {
		m.persist()
	}
	return m, m.armTick()
}
