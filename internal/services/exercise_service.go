package services

import (
	"context"
	"strings"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	tracker_errors "exercise-tracker/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayouts are accepted for the optional exercise date and the from/to
// log-query bounds.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type LogExerciseInput struct {
	Description string
	Duration    float64
	Date        string
}

// LoggedExercise pairs the created exercise with the owning user as returned
// by the append step (id and username only).
type LoggedExercise struct {
	User     domain.User
	Exercise domain.Exercise
}

type LogQuery struct {
	From  string
	To    string
	Limit int64
}

// UserLog is a user's filtered exercise history.
type UserLog struct {
	User    domain.User
	Entries []domain.Exercise
}

type ExerciseService struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	now       func() time.Time
}

func NewExerciseService(users repository.UserRepository, exercises repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises, now: time.Now}
}

// LogExercise creates an exercise owned by userID and appends its id to the
// user's log. The two writes are sequential, not atomic: a crash between them
// leaves an orphaned exercise. The date defaults to the time of this call
// when the input carries none.
func (s *ExerciseService) LogExercise(ctx context.Context, userID string, input LogExerciseInput) (LoggedExercise, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return LoggedExercise{}, tracker_errors.ErrNotFound
	}

	if strings.TrimSpace(input.Description) == "" {
		return LoggedExercise{}, tracker_errors.Invalid("please provide exercise description")
	}
	if input.Duration <= 0 {
		return LoggedExercise{}, tracker_errors.Invalid("please provide duration")
	}

	date := s.now().UTC()
	if input.Date != "" {
		date, err = parseDate(input.Date)
		if err != nil {
			return LoggedExercise{}, err
		}
	}

	exercise := domain.Exercise{
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
		CreatedBy:   oid,
	}
	if err := s.exercises.Create(ctx, &exercise); err != nil {
		return LoggedExercise{}, err
	}

	u, err := s.users.AppendExercise(ctx, oid, exercise.ID)
	if err != nil {
		return LoggedExercise{}, err
	}

	return LoggedExercise{User: u, Exercise: exercise}, nil
}

// FetchLog resolves the user's exercise references, filtered by the closed
// [from, to] date interval and capped at limit, both pushed down to the store
// query.
func (s *ExerciseService) FetchLog(ctx context.Context, userID string, query LogQuery) (UserLog, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return UserLog{}, tracker_errors.ErrNotFound
	}

	filter := repository.LogFilter{Limit: query.Limit}
	if query.From != "" {
		from, err := parseDate(query.From)
		if err != nil {
			return UserLog{}, err
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := parseDate(query.To)
		if err != nil {
			return UserLog{}, err
		}
		filter.To = &to
	}

	u, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return UserLog{}, err
	}

	entries, err := s.exercises.FindByIDs(ctx, u.Log, filter)
	if err != nil {
		return UserLog{}, err
	}

	return UserLog{User: u, Entries: entries}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, tracker_errors.Invalid("unrecognized date %q, want YYYY-MM-DD or RFC 3339", value)
}
