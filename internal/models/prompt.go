package models

// Action is the kind of report the user asked for.
type Action string

const (
	ActionScore   Action = "score"
	ActionImprove Action = "improve"
)

func (a Action) Valid() bool {
	return a == ActionScore || a == ActionImprove
}

// PromptBundle is what the model receives. Position carries meaning for the
// model, so the segment order is fixed: persona, task, transcript.
type PromptBundle struct {
	Persona    string
	Task       string
	Transcript string
}

// Segments returns the three segments in model order.
func (b PromptBundle) Segments() []string {
	return []string{b.Persona, b.Task, b.Transcript}
}
