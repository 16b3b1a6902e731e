package ports

import "context"

// TextGenerator is the remote generative-text model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService produces narrative coaching feedback from recent workouts.
type AnalysisService interface {
	// Analyze builds a coaching prompt from the caller's last 30 days of
	// workouts and returns the generated text verbatim. With no qualifying
	// records it returns a fixed message without contacting the model.
	Analyze(ctx context.Context, token, userID string) (string, error)
}
