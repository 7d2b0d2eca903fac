package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"exercise-tracker/internal/domain"
	tracker_errors "exercise-tracker/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestServices(t *testing.T) (*UserService, *ExerciseService) {
	t.Helper()
	users := newMemUserRepo()
	return NewUserService(users), NewExerciseService(users, newMemExerciseRepo())
}

func mustCreateUser(t *testing.T, svc *UserService, username string) domain.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), username)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return u
}

func TestLogExercise(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	logged, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), LogExerciseInput{
		Description: "running",
		Duration:    30,
		Date:        "2020-06-01",
	})
	if err != nil {
		t.Fatalf("LogExercise failed: %v", err)
	}

	if logged.User.ID != u.ID || logged.User.Username != "alice" {
		t.Errorf("Unexpected user in response: %+v", logged.User)
	}
	if logged.Exercise.Description != "running" || logged.Exercise.Duration != 30 {
		t.Errorf("Unexpected exercise in response: %+v", logged.Exercise)
	}
	want := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	if !logged.Exercise.Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, logged.Exercise.Date)
	}
	if logged.Exercise.CreatedBy != u.ID {
		t.Errorf("Expected createdBy %s, got %s", u.ID.Hex(), logged.Exercise.CreatedBy.Hex())
	}
}

func TestLogExercise_Validation(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	cases := []struct {
		name  string
		input LogExerciseInput
	}{
		{"missing description", LogExerciseInput{Duration: 30}},
		{"missing duration", LogExerciseInput{Description: "running"}},
		{"negative duration", LogExerciseInput{Description: "running", Duration: -5}},
		{"bad date", LogExerciseInput{Description: "running", Duration: 30, Date: "junk"}},
	}
	for _, tc := range cases {
		if _, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), tc.input); !errors.Is(err, tracker_errors.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestLogExercise_UnknownUser(t *testing.T) {
	_, exSvc := newTestServices(t)

	input := LogExerciseInput{Description: "running", Duration: 30}
	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		if _, err := exSvc.LogExercise(context.Background(), id, input); !errors.Is(err, tracker_errors.ErrNotFound) {
			t.Errorf("id %q: expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestLogExercise_DefaultDateIsPerRequest(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	first := time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	times := []time.Time{first, second}
	exSvc.now = func() time.Time {
		next := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return next
	}

	input := LogExerciseInput{Description: "running", Duration: 30}
	one, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), input)
	if err != nil {
		t.Fatalf("LogExercise failed: %v", err)
	}
	two, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), input)
	if err != nil {
		t.Fatalf("LogExercise failed: %v", err)
	}

	if !one.Exercise.Date.Equal(first) {
		t.Errorf("First default date: expected %v, got %v", first, one.Exercise.Date)
	}
	if !two.Exercise.Date.Equal(second) {
		t.Errorf("Second default date: expected %v, got %v", second, two.Exercise.Date)
	}
}

func TestFetchLog_RoundTrip(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	if _, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), LogExerciseInput{
		Description: "running", Duration: 30, Date: "2020-06-01",
	}); err != nil {
		t.Fatalf("LogExercise failed: %v", err)
	}

	log, err := exSvc.FetchLog(context.Background(), u.ID.Hex(), LogQuery{})
	if err != nil {
		t.Fatalf("FetchLog failed: %v", err)
	}
	if len(log.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(log.Entries))
	}
	e := log.Entries[0]
	if e.Description != "running" || e.Duration != 30 {
		t.Errorf("Unexpected entry: %+v", e)
	}
	if !e.Date.Equal(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected entry date: %v", e.Date)
	}
}

func TestFetchLog_DateInterval(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	for _, date := range []string{"2020-01-01", "2020-06-01", "2020-12-01"} {
		if _, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), LogExerciseInput{
			Description: "running", Duration: 30, Date: date,
		}); err != nil {
			t.Fatalf("LogExercise(%s) failed: %v", date, err)
		}
	}

	log, err := exSvc.FetchLog(context.Background(), u.ID.Hex(), LogQuery{From: "2020-03-01", To: "2020-09-01"})
	if err != nil {
		t.Fatalf("FetchLog failed: %v", err)
	}
	if len(log.Entries) != 1 {
		t.Fatalf("Expected 1 entry inside [from, to], got %d", len(log.Entries))
	}
	if !log.Entries[0].Date.Equal(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected the 2020-06-01 entry, got %v", log.Entries[0].Date)
	}
}

func TestFetchLog_Limit(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	for i := 0; i < 3; i++ {
		if _, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), LogExerciseInput{
			Description: "running", Duration: 30, Date: "2020-06-01",
		}); err != nil {
			t.Fatalf("LogExercise failed: %v", err)
		}
	}

	log, err := exSvc.FetchLog(context.Background(), u.ID.Hex(), LogQuery{Limit: 1})
	if err != nil {
		t.Fatalf("FetchLog failed: %v", err)
	}
	if len(log.Entries) != 1 {
		t.Errorf("Expected limit to cap entries at 1, got %d", len(log.Entries))
	}
}

func TestFetchLog_DuplicatesPreserved(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	input := LogExerciseInput{Description: "running", Duration: 30, Date: "2020-06-01"}
	for i := 0; i < 2; i++ {
		if _, err := exSvc.LogExercise(context.Background(), u.ID.Hex(), input); err != nil {
			t.Fatalf("LogExercise failed: %v", err)
		}
	}

	log, err := exSvc.FetchLog(context.Background(), u.ID.Hex(), LogQuery{})
	if err != nil {
		t.Fatalf("FetchLog failed: %v", err)
	}
	if len(log.Entries) != 2 {
		t.Errorf("Expected 2 entries for duplicate logging, got %d", len(log.Entries))
	}
}

func TestFetchLog_UnknownUser(t *testing.T) {
	_, exSvc := newTestServices(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		if _, err := exSvc.FetchLog(context.Background(), id, LogQuery{}); !errors.Is(err, tracker_errors.ErrNotFound) {
			t.Errorf("id %q: expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestFetchLog_BadBounds(t *testing.T) {
	userSvc, exSvc := newTestServices(t)
	u := mustCreateUser(t, userSvc, "alice")

	if _, err := exSvc.FetchLog(context.Background(), u.ID.Hex(), LogQuery{From: "last tuesday"}); !errors.Is(err, tracker_errors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad from bound, got %v", err)
	}
}
