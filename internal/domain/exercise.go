package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity belonging to one user.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"` // minutes
	Date        time.Time          `bson:"date" json:"date"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
}
