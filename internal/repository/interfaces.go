package repository

import (
	"context"
	"time"

	"exercise-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogFilter narrows a batch exercise fetch. From/To form a closed date
// interval when both are set; Limit caps the number of returned records at
// the query level.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	// AppendExercise pushes exerciseID onto the user's log and returns the
	// updated user projected to id and username.
	AppendExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (domain.User, error)
}

type ExerciseRepository interface {
	Create(ctx context.Context, e *domain.Exercise) error
	// FindByIDs resolves exercise references to records, applying the filter
	// at the store. Records come back without ids.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error)
}
