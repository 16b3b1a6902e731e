package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// unknownExercise labels progress entries whose record did not resolve to a
// catalog exercise.
const unknownExercise = "unknown"

// recentWorkoutsLimit caps the recent_workouts list.
const recentWorkoutsLimit = 5

// StatsService derives summary statistics from the caller's workout records.
type StatsService struct {
	repo ports.WorkoutRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewStatsService(repo ports.WorkoutRepository, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, now: time.Now, log: log}
}

func (s *StatsService) Stats(ctx context.Context, token, userID string) (*ports.Stats, error) {
	workouts, err := s.repo.ListByUser(ctx, token, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to load workouts for stats")
		return nil, err
	}
	return Aggregate(workouts, s.now()), nil
}

// Aggregate computes the full statistics summary over a list of workout
// records. It is a pure function; now anchors the trailing-week window.
func Aggregate(workouts []domain.Workout, now time.Time) *ports.Stats {
	stats := &ports.Stats{
		TotalWorkouts:      len(workouts),
		ProgressByExercise: make(map[string][]ports.ProgressPoint),
	}

	exerciseIDs := make(map[string]struct{})
	nameCounts := make(map[string]int)
	weekStart := now.AddDate(0, 0, -6)

	for _, w := range workouts {
		exerciseIDs[w.ExerciseID] = struct{}{}

		if d, err := time.Parse(domain.DateLayout, w.WorkoutDate); err == nil {
			if inTrailingWeek(d, weekStart, now) {
				stats.ThisWeekWorkouts++
			}
		}

		if w.Exercise != nil && w.Exercise.Name != "" {
			nameCounts[w.Exercise.Name]++
		}

		name := w.ExerciseName(unknownExercise)
		stats.ProgressByExercise[name] = append(stats.ProgressByExercise[name], ports.ProgressPoint{
			Date:     w.WorkoutDate,
			WeightKg: w.WeightKg,
		})
	}

	stats.TotalExercises = len(exerciseIDs)
	stats.MostUsedExercise = mostUsed(nameCounts)

	for name := range stats.ProgressByExercise {
		series := stats.ProgressByExercise[name]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date < series[j].Date
		})
	}

	recent := make([]domain.Workout, len(workouts))
	copy(recent, workouts)
	sortNewestFirst(recent)
	if len(recent) > recentWorkoutsLimit {
		recent = recent[:recentWorkoutsLimit]
	}
	stats.RecentWorkouts = recent

	return stats
}

// inTrailingWeek reports whether day falls within the 7 calendar days ending
// at now, inclusive on both ends. Comparisons are date-only.
func inTrailingWeek(day, weekStart, now time.Time) bool {
	d := truncateToDate(day)
	return !d.Before(truncateToDate(weekStart)) && !d.After(truncateToDate(now))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mostUsed picks the exercise name with the highest occurrence count. Ties go
// to the lexicographically smaller name so the result is deterministic.
func mostUsed(counts map[string]int) string {
	best := ""
	bestCount := 0
	for name, count := range counts {
		if count > bestCount || (count == bestCount && bestCount > 0 && name < best) {
			best = name
			bestCount = count
		}
	}
	return best
}
