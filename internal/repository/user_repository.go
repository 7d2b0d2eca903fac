package repository

import (
	"context"
	"errors"

	"exercise-tracker/internal/domain"
	tracker_errors "exercise-tracker/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{col: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.Log == nil {
		u.Log = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, tracker_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) AppendExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (domain.User, error) {
	var u domain.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"log": exerciseID}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"username": 1}),
	).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, tracker_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
