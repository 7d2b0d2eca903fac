package services

import (
	"context"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	tracker_errors "exercise-tracker/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories mirroring the store semantics the Mongo
// implementations rely on: insertion order, inclusive date bounds, limit
// applied to the filtered query.

type memUserRepo struct {
	users map[primitive.ObjectID]*domain.User
	order []primitive.ObjectID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = primitive.NewObjectID()
	stored := *u
	stored.Log = append([]primitive.ObjectID{}, u.Log...)
	r.users[u.ID] = &stored
	r.order = append(r.order, u.ID)
	return nil
}

func (r *memUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, id := range r.order {
		out = append(out, *r.users[id])
	}
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, tracker_errors.ErrNotFound
	}
	return *u, nil
}

func (r *memUserRepo) AppendExercise(_ context.Context, userID, exerciseID primitive.ObjectID) (domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return domain.User{}, tracker_errors.ErrNotFound
	}
	u.Log = append(u.Log, exerciseID)
	return domain.User{ID: u.ID, Username: u.Username}, nil
}

type memExerciseRepo struct {
	exercises map[primitive.ObjectID]domain.Exercise
	order     []primitive.ObjectID
}

func newMemExerciseRepo() *memExerciseRepo {
	return &memExerciseRepo{exercises: map[primitive.ObjectID]domain.Exercise{}}
}

func (r *memExerciseRepo) Create(_ context.Context, e *domain.Exercise) error {
	e.ID = primitive.NewObjectID()
	r.exercises[e.ID] = *e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *memExerciseRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}

	out := []domain.Exercise{}
	for _, id := range r.order {
		if !wanted[id] {
			continue
		}
		e := r.exercises[id]
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		e.ID = primitive.NilObjectID
		out = append(out, e)
		if filter.Limit > 0 && int64(len(out)) == filter.Limit {
			break
		}
	}
	return out, nil
}
