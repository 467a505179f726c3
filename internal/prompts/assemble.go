// Package prompts holds the fixed instruction texts and composes them with a
// transcript into what the model receives.
package prompts

import "github.com/crieya/projecteval/internal/models"

// Assemble composes the bundle. The transcript is copied in as-is.
func Assemble(persona, task string, transcript models.Transcript) models.PromptBundle {
	return models.PromptBundle{
		Persona:    persona,
		Task:       task,
		Transcript: string(transcript),
	}
}

// TaskFor returns the task instruction for action, or false for an unknown action.
func TaskFor(action models.Action) (string, bool) {
	switch action {
	case models.ActionScore:
		return ScoringTask, true
	case models.ActionImprove:
		return ImprovementTask, true
	}
	return "", false
}

// For builds the bundle for one of the two user actions.
func For(action models.Action, transcript models.Transcript) (models.PromptBundle, bool) {
	task, ok := TaskFor(action)
	if !ok {
		return models.PromptBundle{}, false
	}
	return Assemble(EvaluationPersona, task, transcript), true
}
