package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

type stubGenerator struct {
	generate func(prompt string) (string, error)
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return g.generate(prompt)
}

func TestAnalysisService_NoData_SkipsGenerator(t *testing.T) {
	repo := &stubWorkoutRepo{
		listSince: func(token, userID, since string) ([]domain.Workout, error) {
			assert.Equal(t, "2024-02-09", since, "window starts 30 days back")
			return nil, nil
		},
	}
	gen := &stubGenerator{
		generate: func(string) (string, error) {
			t.Fatalf("generator must not be called without data")
			return "", nil
		},
	}
	svc := NewAnalysisService(repo, gen, zerolog.Nop())
	svc.now = func() time.Time { return day(t, "2024-03-10") }

	text, err := svc.Analyze(context.Background(), "tok-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, NoDataMessage, text)
}

func TestAnalysisService_GeneratesFromWindow(t *testing.T) {
	w := workout("w1", "ex-a", "Bench Press", "2024-03-01", 62.5)
	w.Sets = 4
	w.Reps = 8

	repo := &stubWorkoutRepo{
		listSince: func(string, string, string) ([]domain.Workout, error) {
			return []domain.Workout{w}, nil
		},
	}
	var prompt string
	gen := &stubGenerator{
		generate: func(p string) (string, error) {
			prompt = p
			return "keep pushing", nil
		},
	}
	svc := NewAnalysisService(repo, gen, zerolog.Nop())
	svc.now = func() time.Time { return day(t, "2024-03-10") }

	text, err := svc.Analyze(context.Background(), "tok-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "keep pushing", text)

	assert.Contains(t, prompt, "personal fitness coach")
	assert.Contains(t, prompt, "- Date: 2024-03-01, Exercise: Bench Press, Sets: 4, Reps: 8, Weight: 62.5 kg")
}

func TestAnalysisService_GeneratorErrorPropagates(t *testing.T) {
	repo := &stubWorkoutRepo{
		listSince: func(string, string, string) ([]domain.Workout, error) {
			return []domain.Workout{workout("w1", "ex-a", "A", "2024-03-01", 60)}, nil
		},
	}
	gen := &stubGenerator{
		generate: func(string) (string, error) {
			return "", &domain.GenerationError{Message: "model returned status 503: overloaded"}
		},
	}
	svc := NewAnalysisService(repo, gen, zerolog.Nop())
	svc.now = func() time.Time { return day(t, "2024-03-10") }

	_, err := svc.Analyze(context.Background(), "tok-1", "user-1")
	var ge *domain.GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Contains(t, ge.Message, "overloaded")
}

func TestBuildPrompt_UnknownExerciseLabel(t *testing.T) {
	prompt := BuildPrompt([]domain.Workout{workout("w1", "ex-x", "", "2024-03-01", 40)})
	assert.Contains(t, prompt, "Exercise: unknown")
}
