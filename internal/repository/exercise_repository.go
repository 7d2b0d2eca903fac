package repository

import (
	"context"

	"exercise-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exercisesCollection = "exercises"

type MongoExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) ExerciseRepository {
	return &MongoExerciseRepository{col: db.Collection(exercisesCollection)}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoExerciseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return []domain.Exercise{}, nil
	}

	findOpts := options.Find().
		SetProjection(bson.M{"description": 1, "duration": 1, "date": 1, "_id": 0})
	if filter.Limit > 0 {
		findOpts.SetLimit(filter.Limit)
	}

	cursor, err := r.col.Find(ctx, buildLogFindFilter(ids, filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// buildLogFindFilter translates a reference list plus date bounds into the
// store query. From/To are inclusive.
func buildLogFindFilter(ids []primitive.ObjectID, filter LogFilter) bson.M {
	query := bson.M{"_id": bson.M{"$in": ids}}

	date := bson.M{}
	if filter.From != nil {
		date["$gte"] = *filter.From
	}
	if filter.To != nil {
		date["$lte"] = *filter.To
	}
	if len(date) > 0 {
		query["date"] = date
	}
	return query
}
