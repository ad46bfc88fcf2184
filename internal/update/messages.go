package update

// TickMsg is one firing of the one-second timer chain. Seq identifies the
// arming that produced it; a message whose Seq is not the model's current
// sequence is stale and ignored.
type TickMsg struct {
	Seq int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}
