package services

import (
	"context"
	"strings"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	tracker_errors "exercise-tracker/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser validates the username and stores a new user with an empty
// exercise log.
func (s *UserService) CreateUser(ctx context.Context, username string) (domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return domain.User{}, tracker_errors.Invalid("please provide username")
	}

	u := domain.User{
		Username: username,
		Log:      []primitive.ObjectID{},
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}
