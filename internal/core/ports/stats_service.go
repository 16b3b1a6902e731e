package ports

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// ProgressPoint is one logged weight in an exercise's progress series.
type ProgressPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

// Stats is the summary derived from all of a user's workout records.
type Stats struct {
	TotalWorkouts    int    `json:"total_workouts"`
	TotalExercises   int    `json:"total_exercises"`
	ThisWeekWorkouts int    `json:"this_week_workouts"`
	MostUsedExercise string `json:"most_used_exercise"`
	// RecentWorkouts holds the 5 newest records, ordered like History.
	RecentWorkouts []domain.Workout `json:"recent_workouts"`
	// ProgressByExercise maps exercise name to its date-ascending weight
	// series. Records without a resolvable name group under "unknown".
	ProgressByExercise map[string][]ProgressPoint `json:"progress_by_exercise"`
}

// StatsService computes summary statistics over the caller's workouts.
type StatsService interface {
	Stats(ctx context.Context, token, userID string) (*Stats, error)
}
