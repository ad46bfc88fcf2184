package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/tasktick/tasktick/internal/model"
)

type TaskRowData struct {
	Name        string
	Accumulated uint64
	Selected    bool
	UnderCursor bool
}

type AppData struct {
	Header     string
	InputView  string
	ListView   string
	StatusLine string
	IsError    bool
	Footer     string
	Overlay    string
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	clockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func RenderApp(data AppData) string {
	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		panelStyle.Render(data.InputView),
		panelStyle.Render(data.ListView),
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Overlay != "" {
		lines = append(lines, panelStyle.Render(data.Overlay))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderTaskRows builds the scrollable list body: cursor marker, a glyph on
// the task currently accruing time, the name, and its HH:MM:SS clock.
func RenderTaskRows(rows []TaskRowData) string {
	if len(rows) == 0 {
		return "no tasks yet; type a name and press enter"
	}
	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		if row.UnderCursor {
			cursor = "> "
		}
		marker := "  "
		if row.Selected {
			marker = "● "
		}
		name := row.Name
		clock := clockStyle.Render(model.FormatClock(row.Accumulated))
		line := cursor + marker + name + "  " + clock
		if row.Selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
