package domain

// DateLayout is the calendar-date format used for workout dates on the wire.
const DateLayout = "2006-01-02"

// Exercise is a read-only catalog entity owned by the remote store.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

// ExerciseRef is the exercise projection embedded in workout rows when the
// store join `exercises(name, muscle_group)` is requested.
type ExerciseRef struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
}

// Workout is a single logged set. Dates stay in their wire form: WorkoutDate
// is a calendar date (DateLayout) and CreatedAt a server-assigned RFC 3339
// timestamp, both of which order chronologically when compared as strings.
type Workout struct {
	ID          string       `json:"id,omitempty"`
	UserID      string       `json:"user_id"`
	ExerciseID  string       `json:"exercise_id"`
	Sets        int          `json:"sets"`
	Reps        int          `json:"reps"`
	WeightKg    float64      `json:"weight_kg"`
	WorkoutDate string       `json:"workout_date"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	Exercise    *ExerciseRef `json:"exercises,omitempty"`
}

// ExerciseName returns the joined exercise name, or fallback when the record
// did not resolve to a catalog entry.
func (w *Workout) ExerciseName(fallback string) string {
	if w.Exercise == nil || w.Exercise.Name == "" {
		return fallback
	}
	return w.Exercise.Name
}
