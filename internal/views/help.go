package views

const helpMarkdown = `# Task Tracker

One task accrues time at a time. Pick it, and its clock advances every second.

## Keys

- **enter** — add the typed task (input), or select the task under the cursor (list)
- **tab** — switch between the input field and the task list
- **up/down**, **k/j** — move the cursor
- **x** — remove the selected task
- **esc** — stop the running clock / close an overlay
- **/** — command palette: ` + "`select <name>`, `add <name>`, `rename <name>`, `remove`, `clear`" + `
- **?** — toggle this help
- **q**, **ctrl+c** — quit

State is saved to the tasks file after every change, so quitting loses nothing.
`

func RenderHelp() string {
	return RenderMarkdown(helpMarkdown)
}
