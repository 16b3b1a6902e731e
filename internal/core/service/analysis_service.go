package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
	"github.com/fittrack/fittrack-api/internal/observability"
)

// analysisWindowDays is how far back workouts feed the coaching prompt.
const analysisWindowDays = 30

// NoDataMessage is returned when the trailing window holds no workouts. The
// generative model is not contacted in that case.
const NoDataMessage = "You don't have enough workout data yet. Start training regularly and your AI analysis will appear here!"

// coachPersona is the fixed instruction prepended to every analysis prompt.
const coachPersona = "You are a personal fitness coach. Analyze the user's workout data and describe, in English, their strengths, their areas for improvement, and concrete suggestions for the coming week. Use at most 300 words and keep the tone warm and motivating."

// AnalysisService turns recent workouts into narrative coaching feedback via
// the generative-text upstream.
type AnalysisService struct {
	repo ports.WorkoutRepository
	gen  ports.TextGenerator
	now  func() time.Time
	log  zerolog.Logger
}

func NewAnalysisService(repo ports.WorkoutRepository, gen ports.TextGenerator, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{repo: repo, gen: gen, now: time.Now, log: log}
}

func (s *AnalysisService) Analyze(ctx context.Context, token, userID string) (string, error) {
	since := s.now().AddDate(0, 0, -analysisWindowDays).Format(domain.DateLayout)
	workouts, err := s.repo.ListByUserSince(ctx, token, userID, since)
	if err != nil {
		observability.AnalysesTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if len(workouts) == 0 {
		observability.AnalysesTotal.WithLabelValues("no_data").Inc()
		s.log.Debug().Str("user_id", userID).Msg("no workouts in analysis window")
		return NoDataMessage, nil
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(workouts))
	if err != nil {
		observability.AnalysesTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("user_id", userID).Msg("analysis generation failed")
		return "", err
	}

	observability.AnalysesTotal.WithLabelValues("generated").Inc()
	return text, nil
}

// BuildPrompt flattens the workouts into the coaching prompt: the persona
// instruction followed by one line per record.
func BuildPrompt(workouts []domain.Workout) string {
	var b strings.Builder
	b.WriteString(coachPersona)
	b.WriteString("\n\nThe user's workout data from the last 30 days:\n")
	for _, w := range workouts {
		fmt.Fprintf(&b, "- Date: %s, Exercise: %s, Sets: %d, Reps: %d, Weight: %g kg\n",
			w.WorkoutDate, w.ExerciseName(unknownExercise), w.Sets, w.Reps, w.WeightKg)
	}
	return b.String()
}
