package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
)

type stubWorkoutService struct {
	create   func(ctx context.Context, input ports.CreateWorkoutInput) ([]domain.Workout, error)
	list     func(ctx context.Context, token, userID string) ([]domain.Workout, error)
	history  func(ctx context.Context, token, userID string) ([]domain.Workout, error)
	deleteFn func(ctx context.Context, token, workoutID, userID string) error
}

func (s *stubWorkoutService) Create(ctx context.Context, input ports.CreateWorkoutInput) ([]domain.Workout, error) {
	return s.create(ctx, input)
}

func (s *stubWorkoutService) List(ctx context.Context, token, userID string) ([]domain.Workout, error) {
	return s.list(ctx, token, userID)
}

func (s *stubWorkoutService) History(ctx context.Context, token, userID string) ([]domain.Workout, error) {
	return s.history(ctx, token, userID)
}

func (s *stubWorkoutService) Delete(ctx context.Context, token, workoutID, userID string) error {
	return s.deleteFn(ctx, token, workoutID, userID)
}

func TestWorkoutHandler_Create(t *testing.T) {
	var got ports.CreateWorkoutInput
	svc := &stubWorkoutService{create: func(_ context.Context, input ports.CreateWorkoutInput) ([]domain.Workout, error) {
		got = input
		return []domain.Workout{{ID: "w-1", UserID: input.UserID, ExerciseID: input.ExerciseID}}, nil
	}}

	c, rec := newJSONContext(t, http.MethodPost, "/api/workouts",
		`{"exercise_id":"ex-a","sets":3,"reps":10,"weight_kg":62.5,"workout_date":"2024-03-01","notes":"felt strong"}`)
	asCaller(c, "user-1", "caller-token")
	require.NoError(t, NewWorkoutHandler(svc).Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", got.UserID, "the caller identity comes from the token, not the payload")
	assert.Equal(t, "caller-token", got.Token)
	assert.Equal(t, "ex-a", got.ExerciseID)
	assert.Equal(t, 62.5, got.WeightKg)
	assert.Equal(t, "felt strong", got.Notes)

	var inserted []domain.Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inserted))
	require.Len(t, inserted, 1)
	assert.Equal(t, "w-1", inserted[0].ID)
}

func TestWorkoutHandler_Create_Validation(t *testing.T) {
	svc := &stubWorkoutService{create: func(context.Context, ports.CreateWorkoutInput) ([]domain.Workout, error) {
		t.Fatal("service must not run on an invalid payload")
		return nil, nil
	}}

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing exercise", body: `{"workout_date":"2024-03-01"}`, want: "exerciseid is required"},
		{name: "negative reps", body: `{"exercise_id":"ex-a","reps":-1,"workout_date":"2024-03-01"}`, want: "reps must be 0 or greater"},
		{name: "bad date", body: `{"exercise_id":"ex-a","workout_date":"01/03/2024"}`, want: "workoutdate must be a date in the form 2006-01-02"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/api/workouts", tc.body)
			asCaller(c, "user-1", "caller-token")
			err := NewWorkoutHandler(svc).Create(c)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, tc.want)
		})
	}
}

func TestWorkoutHandler_Create_MissingCaller(t *testing.T) {
	svc := &stubWorkoutService{create: func(context.Context, ports.CreateWorkoutInput) ([]domain.Workout, error) {
		t.Fatal("service must not run without an authenticated caller")
		return nil, nil
	}}

	c, _ := newJSONContext(t, http.MethodPost, "/api/workouts",
		`{"exercise_id":"ex-a","workout_date":"2024-03-01"}`)
	err := NewWorkoutHandler(svc).Create(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestWorkoutHandler_History(t *testing.T) {
	svc := &stubWorkoutService{history: func(_ context.Context, token, userID string) ([]domain.Workout, error) {
		assert.Equal(t, "caller-token", token)
		assert.Equal(t, "user-1", userID)
		return []domain.Workout{{ID: "w-2"}, {ID: "w-1"}}, nil
	}}

	c, rec := newJSONContext(t, http.MethodGet, "/api/workouts/history", "")
	asCaller(c, "user-1", "caller-token")
	require.NoError(t, NewWorkoutHandler(svc).History(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []domain.Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "w-2", rows[0].ID)
}

func TestWorkoutHandler_Delete(t *testing.T) {
	var gotWorkout, gotUser string
	svc := &stubWorkoutService{deleteFn: func(_ context.Context, token, workoutID, userID string) error {
		gotWorkout, gotUser = workoutID, userID
		return nil
	}}

	c, rec := newJSONContext(t, http.MethodDelete, "/api/workouts/w-9", "")
	c.SetParamNames("id")
	c.SetParamValues("w-9")
	asCaller(c, "user-1", "caller-token")
	require.NoError(t, NewWorkoutHandler(svc).Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "w-9", gotWorkout)
	assert.Equal(t, "user-1", gotUser)
}

func TestWorkoutHandler_Delete_ServiceError(t *testing.T) {
	svc := &stubWorkoutService{deleteFn: func(context.Context, string, string, string) error {
		return &domain.StoreError{StatusCode: http.StatusForbidden, Body: "permission denied"}
	}}

	c, _ := newJSONContext(t, http.MethodDelete, "/api/workouts/w-9", "")
	c.SetParamNames("id")
	c.SetParamValues("w-9")
	asCaller(c, "user-1", "caller-token")

	var se *domain.StoreError
	require.ErrorAs(t, NewWorkoutHandler(svc).Delete(c), &se)
	assert.Equal(t, "permission denied", se.Body)
}
